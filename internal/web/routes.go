package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, handler *Handler) {
	app.Get("/", handler.Index)
	app.Post("/upload", handler.Upload)
	app.Post("/forecast", handler.ForecastForm)

	app.Get("/health", handler.HealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(handler.metrics.Handler()))

	api := app.Group("/api/v1")
	{
		api.Post("/forecast", handler.ForecastAPI)
	}
}
