package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"catalog-service/domain/dto"
	"catalog-service/domain/services"
	"catalog-service/pkg/utils"
)

// attrParamPrefix marks attribute filters in the listing query string, e.g.
// ?attr_size=m&attr_color=red.
const attrParamPrefix = "attr_"

// shorthandCodes are accepted without the attr_ prefix for the common cases.
var shorthandCodes = map[string]bool{
	"size":    true,
	"color":   true,
	"density": true,
}

type ProductHandler struct {
	productService services.ProductService
}

func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// POST /api/v1/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	product, err := h.productService.Create(c.UserContext(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.CreatedResponse(c, dto.ProductToResponse(product))
}

// GET /api/v1/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	req := dto.ListProductsRequest{
		MinPrice:   c.Query("min_price"),
		MaxPrice:   c.Query("max_price"),
		Category:   c.Query("category"),
		InStock:    c.QueryBool("in_stock", false),
		HasImages:  c.QueryBool("has_images", false),
		Search:     c.Query("search"),
		Ordering:   c.Query("ordering"),
		Page:       c.QueryInt("page", 0),
		PageSize:   c.QueryInt("page_size", 0),
		Attributes: parseAttributeParams(c.Queries()),
	}

	result, err := h.productService.List(c.UserContext(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.PaginatedSuccessResponse(c,
		dto.ProductsToResponses(result.Products),
		result.Total, result.Page, result.PageSize)
}

// GET /api/v1/products/:id
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	product, err := h.productService.GetByID(c.UserContext(), id)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.ProductToResponse(product))
}

// GET /api/v1/products/slug/:slug
func (h *ProductHandler) GetBySlug(c *fiber.Ctx) error {
	product, err := h.productService.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.ProductToResponse(product))
}

// PUT /api/v1/products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	var req dto.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	product, err := h.productService.Update(c.UserContext(), id, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.ProductToResponse(product))
}

// DELETE /api/v1/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	if err := h.productService.Delete(c.UserContext(), id); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.NoContentResponse(c)
}

func parseAttributeParams(query map[string]string) map[string]string {
	attrs := make(map[string]string)
	for key, value := range query {
		if value == "" {
			continue
		}
		if strings.HasPrefix(key, attrParamPrefix) {
			code := strings.TrimPrefix(key, attrParamPrefix)
			if code != "" {
				attrs[code] = value
			}
			continue
		}
		if shorthandCodes[key] {
			attrs[key] = value
		}
	}
	return attrs
}
