package services

import (
	"context"

	"github.com/google/uuid"

	"catalog-service/domain/dto"
	"catalog-service/domain/models"
)

type ProductService interface {
	// Create validates every attribute assignment against the schema before
	// anything is written; a single bad assignment aborts the whole write.
	Create(ctx context.Context, req *dto.CreateProductRequest) (*models.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateProductRequest) (*models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// List runs the faceted catalog query: AND-composed filters, distinct by
	// product id, ordered and paginated. Pages past the end return an empty
	// result, not an error.
	List(ctx context.Context, req *dto.ListProductsRequest) (*dto.ListProductsResult, error)
}
