package dto

import (
	"time"

	"github.com/google/uuid"

	"catalog-service/domain/models"
)

// === Requests ===

type CreateProductTypeRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=100"`
	Slug      string `json:"slug" validate:"omitempty,min=1,max=100"`
	SortOrder int    `json:"sortOrder"`
}

type UpdateProductTypeRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=100"`
	Slug      *string `json:"slug" validate:"omitempty,min=1,max=100"`
	SortOrder *int    `json:"sortOrder"`
}

// === Responses ===

type ProductTypeResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
}

type ProductTypeListResponse struct {
	ProductTypes []ProductTypeResponse `json:"productTypes"`
}

// === Mappers ===

func ProductTypeToResponse(pt *models.ProductType) *ProductTypeResponse {
	if pt == nil {
		return nil
	}
	return &ProductTypeResponse{
		ID:        pt.ID,
		Name:      pt.Name,
		Slug:      pt.Slug,
		SortOrder: pt.SortOrder,
		CreatedAt: pt.CreatedAt,
	}
}

func ProductTypesToResponses(pts []*models.ProductType) []ProductTypeResponse {
	responses := make([]ProductTypeResponse, len(pts))
	for i, pt := range pts {
		responses[i] = *ProductTypeToResponse(pt)
	}
	return responses
}
