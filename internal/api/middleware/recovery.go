package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// Recovery turns panics into 500 responses. The stack trace goes to the log,
// never to the caller; the response keeps the correlation ID when one exists.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					"error", r,
					"stack", string(debug.Stack()),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
				)

				body := gin.H{
					"error": gin.H{
						"code":    "INTERNAL_SERVER_ERROR",
						"message": "An internal server error occurred",
					},
				}
				if id := GetCorrelationID(c); id != "" {
					body["correlation_id"] = id
				}

				c.AbortWithStatusJSON(http.StatusInternalServerError, body)
			}
		}()

		c.Next()
	}
}
