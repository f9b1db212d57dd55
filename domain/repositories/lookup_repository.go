package repositories

import (
	"context"

	"catalog-service/domain/models"
)

// LookupRepository serves the small reference vocabularies the editing UI
// offers when seeding option sets.
type LookupRepository interface {
	ListSizes(ctx context.Context) ([]*models.Size, error)
	ListColors(ctx context.Context) ([]*models.Color, error)
	ListDensities(ctx context.Context) ([]*models.Density, error)
}
