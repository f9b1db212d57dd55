package routes

import (
	"github.com/gofiber/fiber/v2"

	"catalog-service/interfaces/api/handlers"
)

func setupAttributeRoutes(api fiber.Router, h *handlers.Handlers) {
	groups := api.Group("/attribute-groups")
	groups.Post("/", h.Attribute.CreateGroup)
	groups.Put("/:id", h.Attribute.UpdateGroup)
	groups.Delete("/:id", h.Attribute.DeleteGroup)

	attributes := api.Group("/attributes")
	attributes.Post("/", h.Attribute.CreateAttribute)
	attributes.Get("/:id", h.Attribute.GetAttribute)
	attributes.Put("/:id", h.Attribute.UpdateAttribute)
	attributes.Delete("/:id", h.Attribute.DeleteAttribute)
	attributes.Get("/:id/options", h.Attribute.ListOptions)
	attributes.Post("/:id/options", h.Attribute.CreateOption)

	options := api.Group("/attribute-options")
	options.Put("/:id", h.Attribute.UpdateOption)
	options.Delete("/:id", h.Attribute.DeleteOption)
}
