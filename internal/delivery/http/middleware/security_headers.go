package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// SecurityHeadersMiddleware adds baseline security headers to every response.
// The swagger UI is served under skipCSPPrefix and needs its own scripts and styles.
func SecurityHeadersMiddleware(skipCSPPrefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Permissions-Policy", "camera=(), microphone=(), geolocation=(), payment=()")

		if skipCSPPrefix == "" || !strings.HasPrefix(c.Request.URL.Path, skipCSPPrefix) {
			// JSON only; nothing here should ever render as a page
			c.Header("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		}

		c.Next()
	}
}
