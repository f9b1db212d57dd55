package routes

import (
	"github.com/gofiber/fiber/v2"

	"catalog-service/interfaces/api/handlers"
)

func setupCategoryRoutes(api fiber.Router, h *handlers.Handlers) {
	categories := api.Group("/categories")

	categories.Get("/", h.Category.List)
	categories.Get("/tree", h.Category.Tree)
	categories.Post("/", h.Category.Create)
	categories.Put("/reorder", h.Category.Reorder)
	categories.Post("/reindex", h.Category.Reindex)
	categories.Get("/slug/:slug", h.Category.GetBySlug)
	categories.Get("/:id", h.Category.GetByID)
	categories.Put("/:id", h.Category.Update)
	categories.Delete("/:id", h.Category.Delete)
}
