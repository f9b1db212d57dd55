package routes

import (
	"github.com/gofiber/fiber/v2"

	"catalog-service/interfaces/api/handlers"
)

func setupLookupRoutes(api fiber.Router, h *handlers.Handlers) {
	lookups := api.Group("/lookups")

	lookups.Get("/sizes", h.Lookup.Sizes)
	lookups.Get("/colors", h.Lookup.Colors)
	lookups.Get("/densities", h.Lookup.Densities)
}
