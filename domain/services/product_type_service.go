package services

import (
	"context"

	"github.com/google/uuid"

	"catalog-service/domain/dto"
	"catalog-service/domain/models"
)

type ProductTypeService interface {
	Create(ctx context.Context, req *dto.CreateProductTypeRequest) (*models.ProductType, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ProductType, error)
	GetBySlug(ctx context.Context, slug string) (*models.ProductType, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateProductTypeRequest) (*models.ProductType, error)
	// Delete is protected: it fails with a conflict while categories still
	// reference the product type.
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.ProductType, error)
	// ResolveSchema returns the product type's attribute groups with their
	// attributes, ordered by (group.order, attribute.order, attribute.name).
	ResolveSchema(ctx context.Context, productTypeID uuid.UUID) ([]*models.AttributeGroup, error)
}
