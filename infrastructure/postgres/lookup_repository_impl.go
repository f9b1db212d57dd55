package postgres

import (
	"context"

	"gorm.io/gorm"

	"catalog-service/domain/models"
	"catalog-service/domain/repositories"
	"catalog-service/pkg/apperrors"
)

type lookupRepository struct {
	db *gorm.DB
}

func NewLookupRepository(db *gorm.DB) repositories.LookupRepository {
	return &lookupRepository{db: db}
}

func (r *lookupRepository) ListSizes(ctx context.Context) ([]*models.Size, error) {
	var sizes []*models.Size
	err := r.db.WithContext(ctx).Order("sort_order ASC, name ASC").Find(&sizes).Error
	if err != nil {
		return nil, apperrors.Wrap("failed to list sizes", err)
	}
	return sizes, nil
}

func (r *lookupRepository) ListColors(ctx context.Context) ([]*models.Color, error) {
	var colors []*models.Color
	err := r.db.WithContext(ctx).Order("sort_order ASC, name ASC").Find(&colors).Error
	if err != nil {
		return nil, apperrors.Wrap("failed to list colors", err)
	}
	return colors, nil
}

func (r *lookupRepository) ListDensities(ctx context.Context) ([]*models.Density, error) {
	var densities []*models.Density
	err := r.db.WithContext(ctx).Order("sort_order ASC, name ASC").Find(&densities).Error
	if err != nil {
		return nil, apperrors.Wrap("failed to list densities", err)
	}
	return densities, nil
}
