package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply demo mode middleware if enabled
	if cfg.DemoMiddleware.IsEnabled() {
		router.Use(cfg.DemoMiddleware.InjectContext())
		router.Use(cfg.DemoMiddleware.Handler())
	}

	router.SetHTMLTemplate(loadTemplates())

	health := NewHealthController(cfg.Database, cfg.Version)
	booksController := NewBooksController(cfg.BookStore)
	uiController := NewUIController(cfg.BookStore)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Books API, served both bare and under /api for the page script
	for _, prefix := range []string{"", "/api"} {
		group := router.Group(prefix + "/books")
		group.GET("", booksController.ListBooks)
		group.POST("", booksController.AddBook)
		group.GET("/stats", booksController.GetBookStats)
		group.GET("/:id", booksController.GetBook)
		group.PATCH("/:id", booksController.ToggleBook)
		group.DELETE("/:id", booksController.DeleteBook)
	}

	// UI routes
	router.GET("/", uiController.BooksPage)

	return router
}
