package services

import (
	"context"

	"github.com/google/uuid"

	"catalog-service/domain/dto"
	"catalog-service/domain/models"
)

type CategoryService interface {
	Create(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	// Update also handles moves; moving a category under its own descendant
	// fails with a validation error.
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error)
	// Delete cascades to all descendants and the products in them.
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, activeOnly bool) ([]*models.Category, error)
	ListTree(ctx context.Context) ([]*models.Category, error)
	Reorder(ctx context.Context, req *dto.ReorderCategoriesRequest) error
	// Subtree resolves a slug to the category plus all descendants via the
	// interval index, without touching the database.
	Subtree(ctx context.Context, slug string) ([]uuid.UUID, error)
	// Reindex rebuilds the interval index from the category table and swaps
	// it in atomically. Safe to call concurrently with reads.
	Reindex(ctx context.Context) error
	GetProductCounts(ctx context.Context) (map[uuid.UUID]int64, error)
}
