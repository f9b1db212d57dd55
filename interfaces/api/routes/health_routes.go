package routes

import (
	"github.com/gofiber/fiber/v2"

	"catalog-service/interfaces/api/handlers"
)

func setupHealthRoutes(app *fiber.App, h *handlers.Handlers) {
	app.Get("/health", h.Health.Check)
}
