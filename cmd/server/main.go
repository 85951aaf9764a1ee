package main

import (
	"log"
	"log/slog"
	"net/http"

	"github.com/anonto42/nano-midea/notifications/internal/render"
	"github.com/anonto42/nano-midea/notifications/internal/repositories"
	"github.com/anonto42/nano-midea/notifications/internal/router"
	"github.com/anonto42/nano-midea/notifications/internal/seed"
	"github.com/anonto42/nano-midea/notifications/pkg/config"
	"github.com/anonto42/nano-midea/notifications/pkg/logger"
	"github.com/anonto42/nano-midea/notifications/pkg/metrics"
	"github.com/anonto42/nano-midea/notifications/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(cfg.LogLevel)

	// Seed the panel once; it lives for the process
	notifications, err := seed.Load(cfg.SeedFile)
	if err != nil {
		log.Fatalf("Failed to load notifications: %v", err)
	}
	notificationRepo, err := repositories.NewMemoryNotificationRepository(notifications)
	if err != nil {
		log.Fatalf("Failed to initialize notifications: %v", err)
	}

	renderer, err := render.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}

	// Metrics on their own port
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		slog.Info("metrics server listening", "port", cfg.MetricsPort)
		if err := http.ListenAndServe(":"+cfg.MetricsPort, mux); err != nil {
			slog.Error("metrics server stopped", "error", err)
		}
	}()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Validator = validators.NewValidator()

	// Setup global middleware
	config.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, notificationRepo, cfg.AssetsDir)

	slog.Info("starting server", "port", cfg.Port, "env", cfg.Env, "notifications", len(notifications))
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
