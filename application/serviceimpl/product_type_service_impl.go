package serviceimpl

import (
	"context"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"catalog-service/domain/dto"
	"catalog-service/domain/models"
	"catalog-service/domain/repositories"
	"catalog-service/domain/services"
	"catalog-service/pkg/apperrors"
)

type productTypeService struct {
	productTypeRepo repositories.ProductTypeRepository
	categoryRepo    repositories.CategoryRepository
	attributeRepo   repositories.AttributeRepository
}

func NewProductTypeService(
	productTypeRepo repositories.ProductTypeRepository,
	categoryRepo repositories.CategoryRepository,
	attributeRepo repositories.AttributeRepository,
) services.ProductTypeService {
	return &productTypeService{
		productTypeRepo: productTypeRepo,
		categoryRepo:    categoryRepo,
		attributeRepo:   attributeRepo,
	}
}

func (s *productTypeService) Create(ctx context.Context, req *dto.CreateProductTypeRequest) (*models.ProductType, error) {
	typeSlug := req.Slug
	if typeSlug == "" {
		typeSlug = slug.Make(req.Name)
	}
	if err := s.ensureSlugFree(ctx, typeSlug, uuid.Nil); err != nil {
		return nil, err
	}

	productType := &models.ProductType{
		ID:        uuid.New(),
		Name:      req.Name,
		Slug:      typeSlug,
		SortOrder: req.SortOrder,
	}
	if err := s.productTypeRepo.Create(ctx, productType); err != nil {
		return nil, err
	}
	return productType, nil
}

func (s *productTypeService) GetByID(ctx context.Context, id uuid.UUID) (*models.ProductType, error) {
	return s.productTypeRepo.GetByID(ctx, id)
}

func (s *productTypeService) GetBySlug(ctx context.Context, slug string) (*models.ProductType, error) {
	return s.productTypeRepo.GetBySlug(ctx, slug)
}

func (s *productTypeService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateProductTypeRequest) (*models.ProductType, error) {
	productType, err := s.productTypeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		productType.Name = *req.Name
	}
	if req.Slug != nil && *req.Slug != productType.Slug {
		if err := s.ensureSlugFree(ctx, *req.Slug, id); err != nil {
			return nil, err
		}
		productType.Slug = *req.Slug
	}
	if req.SortOrder != nil {
		productType.SortOrder = *req.SortOrder
	}

	if err := s.productTypeRepo.Update(ctx, productType); err != nil {
		return nil, err
	}
	return productType, nil
}

func (s *productTypeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productTypeRepo.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.categoryRepo.CountByProductType(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.Conflict("product type is still referenced by categories")
	}

	return s.productTypeRepo.Delete(ctx, id)
}

func (s *productTypeService) List(ctx context.Context) ([]*models.ProductType, error) {
	return s.productTypeRepo.List(ctx)
}

func (s *productTypeService) ResolveSchema(ctx context.Context, productTypeID uuid.UUID) ([]*models.AttributeGroup, error) {
	if _, err := s.productTypeRepo.GetByID(ctx, productTypeID); err != nil {
		return nil, err
	}
	return s.attributeRepo.ListGroupsByProductType(ctx, productTypeID)
}

func (s *productTypeService) ensureSlugFree(ctx context.Context, typeSlug string, selfID uuid.UUID) error {
	existing, err := s.productTypeRepo.GetBySlug(ctx, typeSlug)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID == selfID {
		return nil
	}
	return apperrors.Conflict("product type slug already exists")
}
