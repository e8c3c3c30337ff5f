package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/perpustakaan/internal/web"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) (*gin.Engine, error) {
	if cfg.Catalog == nil {
		return nil, fmt.Errorf("router: catalog is required")
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())

	// Apply security headers to all responses
	router.Use(SecurityHeadersMiddleware())

	tmpl, err := web.Templates(cfg.TemplatesPath)
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	static, err := web.Static(cfg.StaticPath)
	if err != nil {
		return nil, err
	}
	staticFS := http.FS(static)
	router.StaticFS("/static", staticFS)

	health := NewHealthController(cfg.Catalog, cfg.Version)
	uiController := NewUIController(cfg.Catalog, cfg.Card)
	booksController := NewBooksController(cfg.Catalog)
	coversController := NewCoversController(cfg.Catalog, staticFS)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Books API endpoints
	router.GET("/api/books", booksController.GetAllBooks)
	router.GET("/api/books/:id", booksController.GetBook)
	router.GET("/api/books/:id/cover", coversController.GetCover)

	// UI routes
	router.GET("/", uiController.ListPage)
	router.GET("/list", uiController.ListPage)
	router.GET("/detail/:id", uiController.DetailPage)
	router.GET("/open", uiController.Open)

	return router, nil
}
