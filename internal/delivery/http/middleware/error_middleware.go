package middleware

import (
	"errors"
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error recorded on the context.
// AppErrors keep their status and message; anything else is an unexpected 500
// whose text is passed through to the caller.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		reqID := c.GetString(response.RequestIDKey)

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.Internal(err)
		}

		if appErr.Code >= http.StatusInternalServerError {
			logger.Log.Error("Request failed",
				"request_id", reqID,
				"method", c.Request.Method,
				"path", c.FullPath(),
				"kind", appErr.Kind,
				"error", appErr.Message,
			)
		}

		response.Error(c, appErr.Code, appErr.Message, appErr.Details)
	}
}
