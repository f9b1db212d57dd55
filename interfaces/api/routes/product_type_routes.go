package routes

import (
	"github.com/gofiber/fiber/v2"

	"catalog-service/interfaces/api/handlers"
)

func setupProductTypeRoutes(api fiber.Router, h *handlers.Handlers) {
	productTypes := api.Group("/product-types")

	productTypes.Get("/", h.ProductType.List)
	productTypes.Post("/", h.ProductType.Create)
	productTypes.Get("/:id", h.ProductType.GetByID)
	productTypes.Get("/:id/schema", h.ProductType.Schema)
	productTypes.Put("/:id", h.ProductType.Update)
	productTypes.Delete("/:id", h.ProductType.Delete)
}
