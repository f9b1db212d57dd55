package routes

import (
	"github.com/gofiber/fiber/v2"

	"catalog-service/interfaces/api/handlers"
)

func setupProductRoutes(api fiber.Router, h *handlers.Handlers) {
	products := api.Group("/products")

	products.Get("/", h.Product.List)
	products.Post("/", h.Product.Create)
	products.Get("/slug/:slug", h.Product.GetBySlug)
	products.Get("/:id", h.Product.GetByID)
	products.Put("/:id", h.Product.Update)
	products.Delete("/:id", h.Product.Delete)
	products.Get("/:id/attributes", h.Attribute.ListProductValues)
	products.Put("/:id/attributes", h.Attribute.SetProductValue)
}
