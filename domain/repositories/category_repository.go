package repositories

import (
	"context"

	"github.com/google/uuid"

	"catalog-service/domain/models"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	// DeleteMany removes the given categories and cascades to their products
	// (attribute values and images included) in one transaction.
	DeleteMany(ctx context.Context, ids []uuid.UUID) error
	List(ctx context.Context, activeOnly bool) ([]*models.Category, error)
	ListTree(ctx context.Context) ([]*models.Category, error)
	GetMaxSortOrder(ctx context.Context, parentID *uuid.UUID) (int, error)
	UpdateMany(ctx context.Context, categories []*models.Category) error
	Count(ctx context.Context) (int64, error)
	CountByProductType(ctx context.Context, productTypeID uuid.UUID) (int64, error)
	GetProductCounts(ctx context.Context) (map[uuid.UUID]int64, error)
}
