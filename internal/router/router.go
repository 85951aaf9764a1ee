package router

import (
	"log"

	"github.com/anonto42/nano-midea/notifications/internal/handlers"
	"github.com/anonto42/nano-midea/notifications/internal/repositories"
	"github.com/labstack/echo/v4"
)

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, notificationRepo repositories.NotificationRepository, assetsDir string) {
	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// Avatar and other image assets, referenced by path from notifications
	e.Static("/public", assetsDir)
	log.Println("Static asset routes configured.")

	notificationHandler := handlers.NewNotificationHandler(notificationRepo)

	// Panel (HTML)
	notificationHandler.RegisterPanelRoutes(e)
	log.Println("Panel routes configured.")

	// JSON API
	api := e.Group("/api/v1")
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	log.Println("All routes configured.")
}
