package repositories

import (
	"context"

	"github.com/google/uuid"

	"catalog-service/domain/dto"
	"catalog-service/domain/models"
)

type ProductRepository interface {
	// Create persists the product, its images and the given attribute
	// assignments in one transaction. Assignment consistency is re-checked
	// inside the transaction; any failure rolls the whole write back.
	Create(ctx context.Context, product *models.Product, values []*models.AttributeValue) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	// Update saves product fields; when replaceValues is set the product's
	// attribute assignments are replaced with values atomically.
	Update(ctx context.Context, product *models.Product, values []*models.AttributeValue, replaceValues bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListWithFilters applies the AND-composed filter set, deduplicates by
	// product id, orders and paginates. Returns the page plus the distinct
	// total.
	ListWithFilters(ctx context.Context, filter *dto.ProductFilter) ([]*models.Product, int64, error)
	Count(ctx context.Context) (int64, error)
}
