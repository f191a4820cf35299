package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-Id"

	// ContextKeyRequestID holds the request ID in the Gin context.
	ContextKeyRequestID = "request_id"
)

// RequestIDMiddleware reuses an incoming X-Request-Id or generates one, and
// echoes it on the response so server logs can be matched to client reports.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(ContextKeyRequestID, requestID)
		c.Header(requestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID returns the current request ID, or "-" outside the middleware.
func GetRequestID(c *gin.Context) string {
	if id := c.GetString(ContextKeyRequestID); id != "" {
		return id
	}
	return "-"
}
