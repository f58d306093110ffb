package http

import (
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, handler *Handler) {
	// Health check
	app.Get("/health", handler.HealthCheck)

	// API v1 routes
	api := app.Group("/api/v1")
	{
		// Widget state
		api.Get("/widget", handler.GetWidget)
		api.Put("/query", handler.SetQuery)

		// Lookups
		api.Post("/search", handler.Search)
		api.Delete("/search", handler.DismissSearch)

		// Theme preference
		api.Get("/theme", handler.GetTheme)
		api.Put("/theme", handler.SetTheme)
		api.Post("/theme/toggle", handler.ToggleTheme)
	}
}
