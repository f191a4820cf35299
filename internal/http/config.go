package http

import "github.com/mrlokans/booktodo/internal/demo"

// RouterConfig contains all dependencies needed to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	BookStore BookStore

	// Health checks; nil reports the database as not configured
	Database Pinger

	// Application info
	Version string

	// Demo mode (optional)
	DemoMiddleware *demo.Middleware
}
