package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// CorrelationIDHeader is the HTTP header carrying the request's correlation ID
	CorrelationIDHeader = "X-Correlation-ID"

	// CorrelationIDKey is the gin context key the correlation ID is stored under
	CorrelationIDKey = "correlation_id"
)

// CorrelationID tags every request with a correlation ID, reusing the one the
// caller sent or minting a fresh one. The ID is echoed in the response header.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(CorrelationIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Header(CorrelationIDHeader, id)
		c.Set(CorrelationIDKey, id)

		c.Next()
	}
}

// GetCorrelationID returns the request's correlation ID, or "" before the
// CorrelationID middleware has run
func GetCorrelationID(c *gin.Context) string {
	if v, exists := c.Get(CorrelationIDKey); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
