package routes

import (
	"github.com/gofiber/fiber/v2"

	"catalog-service/interfaces/api/handlers"
)

// SetupRoutes registers every route group under /api/v1.
func SetupRoutes(app *fiber.App, h *handlers.Handlers) {
	setupHealthRoutes(app, h)

	api := app.Group("/api/v1")

	setupCategoryRoutes(api, h)
	setupProductTypeRoutes(api, h)
	setupAttributeRoutes(api, h)
	setupProductRoutes(api, h)
	setupLookupRoutes(api, h)
}
