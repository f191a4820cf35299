package demo

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BlockedMessage is returned for every write attempted in demo mode.
const BlockedMessage = "This action is disabled in demo mode"

// ContextKeyDemoMode stores the demo flag in the Gin context for templates.
const ContextKeyDemoMode = "demo_mode"

// Middleware blocks write operations in demo mode.
// Read-only operations (GET, HEAD, OPTIONS) are always allowed.
type Middleware struct {
	enabled bool
}

// NewMiddleware creates a demo mode middleware.
func NewMiddleware(enabled bool) *Middleware {
	return &Middleware{enabled: enabled}
}

// IsEnabled returns whether demo mode is active.
func (m *Middleware) IsEnabled() bool {
	return m != nil && m.enabled
}

// Handler returns a Gin middleware that blocks write operations.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.IsEnabled() {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":     BlockedMessage,
			"demo_mode": true,
		})
	}
}

// InjectContext adds the demo mode flag to the context for template rendering.
func (m *Middleware) InjectContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKeyDemoMode, m.IsEnabled())
		c.Next()
	}
}
