package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes the API JSON error body
type ErrorResponse struct {
	Success   bool     `json:"success"`
	Message   string   `json:"message"`
	Errors    []string `json:"errors,omitempty"`
	RequestID string   `json:"request_id,omitempty"`
}

// MessageResponse acknowledges operations that return no entity
type MessageResponse struct {
	Message string `json:"message"`
}

// JSON sends the payload as-is; the portfolio frontend consumes bare entities and arrays.
func JSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// Message sends a {"message": ...} acknowledgment
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, MessageResponse{Message: message})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, details []string) {
	reqID, _ := c.Get(RequestIDKey)
	idStr, _ := reqID.(string)

	c.JSON(code, ErrorResponse{
		Success:   false,
		Message:   message,
		Errors:    details,
		RequestID: idStr,
	})
}

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "RequestID"
