package config

import (
	"github.com/anonto42/nano-midea/notifications/pkg/metrics"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func SetupMiddleware(e *echo.Echo) {
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(metrics.Middleware())
}
