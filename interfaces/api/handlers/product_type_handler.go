package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"catalog-service/domain/dto"
	"catalog-service/domain/services"
	"catalog-service/pkg/utils"
)

type ProductTypeHandler struct {
	productTypeService services.ProductTypeService
}

func NewProductTypeHandler(productTypeService services.ProductTypeService) *ProductTypeHandler {
	return &ProductTypeHandler{productTypeService: productTypeService}
}

// POST /api/v1/product-types
func (h *ProductTypeHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProductTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	productType, err := h.productTypeService.Create(c.UserContext(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.CreatedResponse(c, dto.ProductTypeToResponse(productType))
}

// GET /api/v1/product-types
func (h *ProductTypeHandler) List(c *fiber.Ctx) error {
	productTypes, err := h.productTypeService.List(c.UserContext())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.ProductTypeListResponse{
		ProductTypes: dto.ProductTypesToResponses(productTypes),
	})
}

// GET /api/v1/product-types/:id
func (h *ProductTypeHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid product type ID")
	}

	productType, err := h.productTypeService.GetByID(c.UserContext(), id)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.ProductTypeToResponse(productType))
}

// GET /api/v1/product-types/:id/schema
func (h *ProductTypeHandler) Schema(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid product type ID")
	}

	groups, err := h.productTypeService.ResolveSchema(c.UserContext(), id)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.GroupsToSchemaResponses(groups))
}

// PUT /api/v1/product-types/:id
func (h *ProductTypeHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid product type ID")
	}

	var req dto.UpdateProductTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	productType, err := h.productTypeService.Update(c.UserContext(), id, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.ProductTypeToResponse(productType))
}

// DELETE /api/v1/product-types/:id
func (h *ProductTypeHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid product type ID")
	}

	if err := h.productTypeService.Delete(c.UserContext(), id); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.NoContentResponse(c)
}
