package repositories

import (
	"context"

	"github.com/google/uuid"

	"catalog-service/domain/models"
)

type ProductTypeRepository interface {
	Create(ctx context.Context, productType *models.ProductType) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ProductType, error)
	GetBySlug(ctx context.Context, slug string) (*models.ProductType, error)
	Update(ctx context.Context, productType *models.ProductType) error
	// Delete cascades to the product type's attribute groups, attributes,
	// options and values. Callers enforce the category-reference protection.
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.ProductType, error)
}
