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

	"github.com/mrlokans/booktodo/internal/config"
	"github.com/mrlokans/booktodo/internal/database"
	"github.com/mrlokans/booktodo/internal/database/books"
	"github.com/mrlokans/booktodo/internal/demo"
	http_controllers "github.com/mrlokans/booktodo/internal/http"
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
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for SIGINT/SIGTERM, then give in-flight requests `timeout` to finish.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Stop background jobs before the server so they don't race the database close
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Book Todo v%s", version)

	if cfg.HTTP.GinMode != "" {
		gin.SetMode(cfg.HTTP.GinMode)
	}

	db, err := database.NewDatabaseWithLogLevel(cfg.Database.Path, database.ParseLogLevel(cfg.Database.LogLevel))
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	repo := books.NewRepository(db.DB)

	if cfg.Database.SeedOnEmpty {
		if err := seedIfEmpty(context.Background(), repo); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	var demoMiddleware *demo.Middleware
	var resetter *demo.Resetter
	if cfg.Demo.Enabled {
		log.Printf("Demo mode enabled - write operations will be blocked")
		demoMiddleware = demo.NewMiddleware(true)

		if err := demo.ValidateSchedule(cfg.Demo.ResetSchedule); err != nil {
			log.Fatalf("Invalid demo reset schedule: %v", err)
		}
		resetter = demo.NewResetter(repo, books.DefaultCatalogue, cfg.Demo.ResetSchedule)
		if err := resetter.Start(context.Background()); err != nil {
			log.Fatalf("Failed to start demo reset scheduler: %v", err)
		}
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		BookStore:      repo,
		Database:       db,
		Version:        version,
		DemoMiddleware: demoMiddleware,
	})

	onShutdown := func(ctx context.Context) {
		if resetter != nil {
			resetter.Stop(ctx)
		}
	}

	Serve(router, cfg, onShutdown)
}

// emptyChecker is the part of the repository seedIfEmpty needs.
type emptyChecker interface {
	demo.Seeder
	IsEmpty(ctx context.Context) (bool, error)
}

func seedIfEmpty(ctx context.Context, repo emptyChecker) error {
	empty, err := repo.IsEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		log.Printf("Books table is not empty, skipping seed")
		return nil
	}

	created, err := repo.Seed(ctx, books.DefaultCatalogue)
	if err != nil {
		return err
	}
	log.Printf("Seeded %d books", created)
	return nil
}
