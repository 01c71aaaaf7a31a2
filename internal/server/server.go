package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/database"
	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/routes"
	"portfolio-backend/internal/storage"
)

// New wires config, storage backend, handlers and router into an
// http.Server. The returned cleanup releases the storage backend and must
// run after shutdown.
func New() (*http.Server, func(), error) {
	cfg := config.Load()

	var store storage.Storage
	switch cfg.StorageBackend {
	case "postgres":
		pool, err := database.Connect(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres backend: %w", err)
		}
		if err := database.RunMigrations(pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("postgres backend: %w", err)
		}
		store = storage.NewPostgresStorage(pool)
	case "memory":
		store = storage.NewMemoryStorage()
	default:
		return nil, nil, fmt.Errorf("unknown STORAGE_BACKEND %q (want 'memory' or 'postgres')", cfg.StorageBackend)
	}

	if cfg.SeedData {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := storage.Seed(ctx, store); err != nil {
			store.Close()
			return nil, nil, err
		}
	}

	router := NewRouter(store, cfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Printf("Using %s storage backend", cfg.StorageBackend)
	return srv, store.Close, nil
}

// NewRouter builds the gin engine for an already-constructed storage
// backend. Tests use it directly to skip config and lifecycle concerns.
func NewRouter(store storage.Storage, cfg config.Config) *gin.Engine {
	router := gin.Default()
	router.MaxMultipartMemory = handlers.MaxUploadSize

	// The frontend may be served from a different origin; keep the API
	// fully open to cross-origin callers.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"*"}
	router.Use(cors.New(corsConfig))

	h := routes.Handlers{
		Projects:     handlers.NewProjectHandler(store.Projects()),
		Experiences:  handlers.NewExperienceHandler(store.Experiences()),
		Contacts:     handlers.NewContactHandler(store.Contacts()),
		Testimonials: handlers.NewTestimonialHandler(store.Testimonials()),
		Upload:       handlers.NewUploadHandler(cfg.UploadDir),
	}
	routes.RegisterRoutes(router, h, cfg.AdminToken)

	router.Static("/uploads", cfg.UploadDir)

	// Production hosting: unknown non-API paths fall back to the built
	// frontend entry document.
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") || cfg.StaticDir == "" {
			c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
			return
		}
		c.File(filepath.Join(cfg.StaticDir, "index.html"))
	})

	return router
}
