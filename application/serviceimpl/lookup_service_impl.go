package serviceimpl

import (
	"context"

	"catalog-service/domain/models"
	"catalog-service/domain/repositories"
	"catalog-service/domain/services"
)

type lookupService struct {
	lookupRepo repositories.LookupRepository
}

func NewLookupService(lookupRepo repositories.LookupRepository) services.LookupService {
	return &lookupService{lookupRepo: lookupRepo}
}

func (s *lookupService) ListSizes(ctx context.Context) ([]*models.Size, error) {
	return s.lookupRepo.ListSizes(ctx)
}

func (s *lookupService) ListColors(ctx context.Context) ([]*models.Color, error) {
	return s.lookupRepo.ListColors(ctx)
}

func (s *lookupService) ListDensities(ctx context.Context) ([]*models.Density, error) {
	return s.lookupRepo.ListDensities(ctx)
}
