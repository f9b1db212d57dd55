package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"catalog-service/domain/dto"
	"catalog-service/domain/services"
	"catalog-service/pkg/utils"
)

type CategoryHandler struct {
	categoryService services.CategoryService
}

func NewCategoryHandler(categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// POST /api/v1/categories
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	category, err := h.categoryService.Create(c.UserContext(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.CreatedResponse(c, dto.CategoryToCategoryResponse(category))
}

// GET /api/v1/categories
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	// Read API hides inactive categories unless asked for them.
	activeOnly := c.QueryBool("active_only", true)

	categories, err := h.categoryService.List(c.UserContext(), activeOnly)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	counts, err := h.categoryService.GetProductCounts(c.UserContext())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	responses := dto.CategoriesToCategoryResponses(categories)
	for i := range responses {
		responses[i].ProductCount = counts[responses[i].ID]
	}
	return utils.SuccessResponse(c, dto.CategoryListResponse{Categories: responses})
}

// GET /api/v1/categories/tree
func (h *CategoryHandler) Tree(c *fiber.Ctx) error {
	roots, err := h.categoryService.ListTree(c.UserContext())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.CategoryListResponse{
		Categories: dto.CategoriesToTreeResponses(roots),
	})
}

// GET /api/v1/categories/:id
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	category, err := h.categoryService.GetByID(c.UserContext(), id)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.CategoryToCategoryResponse(category))
}

// GET /api/v1/categories/slug/:slug
func (h *CategoryHandler) GetBySlug(c *fiber.Ctx) error {
	category, err := h.categoryService.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.CategoryToCategoryResponse(category))
}

// PUT /api/v1/categories/:id
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	category, err := h.categoryService.Update(c.UserContext(), id, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.CategoryToCategoryResponse(category))
}

// DELETE /api/v1/categories/:id
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	if err := h.categoryService.Delete(c.UserContext(), id); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.NoContentResponse(c)
}

// PUT /api/v1/categories/reorder
func (h *CategoryHandler) Reorder(c *fiber.Ctx) error {
	var req dto.ReorderCategoriesRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	if err := h.categoryService.Reorder(c.UserContext(), &req); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, fiber.Map{"reordered": len(req.Categories)})
}

// POST /api/v1/categories/reindex
func (h *CategoryHandler) Reindex(c *fiber.Ctx) error {
	if err := h.categoryService.Reindex(c.UserContext()); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, fiber.Map{"status": "reindexed"})
}
