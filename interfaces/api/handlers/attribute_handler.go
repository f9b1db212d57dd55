package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"catalog-service/domain/dto"
	"catalog-service/domain/services"
	"catalog-service/pkg/utils"
)

type AttributeHandler struct {
	attributeService services.AttributeService
}

func NewAttributeHandler(attributeService services.AttributeService) *AttributeHandler {
	return &AttributeHandler{attributeService: attributeService}
}

// POST /api/v1/attribute-groups
func (h *AttributeHandler) CreateGroup(c *fiber.Ctx) error {
	var req dto.CreateAttributeGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	group, err := h.attributeService.CreateGroup(c.UserContext(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.CreatedResponse(c, fiber.Map{
		"id":        group.ID,
		"name":      group.Name,
		"sortOrder": group.SortOrder,
	})
}

// PUT /api/v1/attribute-groups/:id
func (h *AttributeHandler) UpdateGroup(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid attribute group ID")
	}

	var req dto.UpdateAttributeGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	group, err := h.attributeService.UpdateGroup(c.UserContext(), id, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, fiber.Map{
		"id":        group.ID,
		"name":      group.Name,
		"sortOrder": group.SortOrder,
	})
}

// DELETE /api/v1/attribute-groups/:id
func (h *AttributeHandler) DeleteGroup(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid attribute group ID")
	}

	if err := h.attributeService.DeleteGroup(c.UserContext(), id); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.NoContentResponse(c)
}

// POST /api/v1/attributes
func (h *AttributeHandler) CreateAttribute(c *fiber.Ctx) error {
	var req dto.CreateAttributeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	attribute, err := h.attributeService.CreateAttribute(c.UserContext(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.CreatedResponse(c, dto.AttributeToResponse(attribute))
}

// GET /api/v1/attributes/:id
func (h *AttributeHandler) GetAttribute(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid attribute ID")
	}

	attribute, err := h.attributeService.GetAttribute(c.UserContext(), id)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.AttributeToResponse(attribute))
}

// PUT /api/v1/attributes/:id
func (h *AttributeHandler) UpdateAttribute(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid attribute ID")
	}

	var req dto.UpdateAttributeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	attribute, err := h.attributeService.UpdateAttribute(c.UserContext(), id, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.AttributeToResponse(attribute))
}

// DELETE /api/v1/attributes/:id
func (h *AttributeHandler) DeleteAttribute(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid attribute ID")
	}

	if err := h.attributeService.DeleteAttribute(c.UserContext(), id); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.NoContentResponse(c)
}

// GET /api/v1/attributes/:id/options
func (h *AttributeHandler) ListOptions(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid attribute ID")
	}

	options, err := h.attributeService.ListOptions(c.UserContext(), id)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.OptionsToResponses(options))
}

// POST /api/v1/attributes/:id/options
func (h *AttributeHandler) CreateOption(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid attribute ID")
	}

	var req dto.CreateAttributeOptionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	option, err := h.attributeService.CreateOption(c.UserContext(), id, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.CreatedResponse(c, dto.OptionToResponse(option))
}

// PUT /api/v1/attribute-options/:id
func (h *AttributeHandler) UpdateOption(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid option ID")
	}

	var req dto.UpdateAttributeOptionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	option, err := h.attributeService.UpdateOption(c.UserContext(), id, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.OptionToResponse(option))
}

// DELETE /api/v1/attribute-options/:id
func (h *AttributeHandler) DeleteOption(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid option ID")
	}

	if err := h.attributeService.DeleteOption(c.UserContext(), id); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.NoContentResponse(c)
}

// PUT /api/v1/products/:id/attributes
func (h *AttributeHandler) SetProductValue(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	var req dto.SetAttributeValueRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	if err := h.attributeService.SetValue(c.UserContext(), productID, &req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	values, err := h.attributeService.ValuesFor(c.UserContext(), productID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, values)
}

// GET /api/v1/products/:id/attributes
func (h *AttributeHandler) ListProductValues(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	values, err := h.attributeService.ValuesFor(c.UserContext(), productID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, values)
}
