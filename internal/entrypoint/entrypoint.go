package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/perpustakaan/internal/catalog"
	"github.com/mrlokans/perpustakaan/internal/config"
	http_controllers "github.com/mrlokans/perpustakaan/internal/http"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// NewRouter builds the router for cfg over cat.
func NewRouter(cfg *config.Config, cat *catalog.Catalog, version string) (*gin.Engine, error) {
	// A nil *Catalog would reach the router as a non-nil interface.
	if cat == nil {
		return nil, fmt.Errorf("router: catalog is required")
	}
	if cfg.HTTP.Mode != "" {
		gin.SetMode(cfg.HTTP.Mode)
	}

	return http_controllers.NewRouter(http_controllers.RouterConfig{
		Catalog:       cat,
		Card:          cfg.Library.Card(),
		TemplatesPath: cfg.UI.TemplatesPath,
		StaticPath:    cfg.UI.StaticPath,
		Version:       version,
	})
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Perpustakaan v%s", version)

	cat := catalog.Default()
	log.Printf("Catalog loaded with %d books", cat.Len())

	if cfg.UI.TemplatesPath != "" {
		log.Printf("Using templates from %s", cfg.UI.TemplatesPath)
	}
	if cfg.UI.StaticPath != "" {
		log.Printf("Using static files from %s", cfg.UI.StaticPath)
	}

	router, err := NewRouter(cfg, cat, version)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	Serve(router, cfg, nil)
}
