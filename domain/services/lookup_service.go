package services

import (
	"context"

	"catalog-service/domain/models"
)

type LookupService interface {
	ListSizes(ctx context.Context) ([]*models.Size, error)
	ListColors(ctx context.Context) ([]*models.Color, error)
	ListDensities(ctx context.Context) ([]*models.Density, error)
}
