package handlers

import (
	"github.com/gofiber/fiber/v2"

	"catalog-service/domain/services"
	"catalog-service/pkg/utils"
)

type LookupHandler struct {
	lookupService services.LookupService
}

func NewLookupHandler(lookupService services.LookupService) *LookupHandler {
	return &LookupHandler{lookupService: lookupService}
}

// GET /api/v1/lookups/sizes
func (h *LookupHandler) Sizes(c *fiber.Ctx) error {
	sizes, err := h.lookupService.ListSizes(c.UserContext())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, sizes)
}

// GET /api/v1/lookups/colors
func (h *LookupHandler) Colors(c *fiber.Ctx) error {
	colors, err := h.lookupService.ListColors(c.UserContext())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, colors)
}

// GET /api/v1/lookups/densities
func (h *LookupHandler) Densities(c *fiber.Ctx) error {
	densities, err := h.lookupService.ListDensities(c.UserContext())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, densities)
}
