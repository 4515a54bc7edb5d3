package routes

import (
	"retail-intelligence/handlers"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes mounts the Lambda handlers on the local server.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/insight", handlers.Fiber(handlers.HandleInsightEvent))
	api.Get("/health", handlers.Fiber(handlers.HandleHealthEvent))
}
