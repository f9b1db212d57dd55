package serviceimpl

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"

	"catalog-service/domain/dto"
	"catalog-service/domain/models"
	"catalog-service/domain/ports"
	"catalog-service/domain/repositories"
	"catalog-service/domain/services"
	"catalog-service/pkg/apperrors"
	"catalog-service/pkg/config"
	"catalog-service/pkg/logger"
	"catalog-service/pkg/treeindex"
)

type productService struct {
	productRepo   repositories.ProductRepository
	categoryRepo  repositories.CategoryRepository
	attributeRepo repositories.AttributeRepository
	index         *treeindex.Store
	publisher     ports.EventPublisher
	cfg           *config.Config
}

func NewProductService(
	productRepo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
	attributeRepo repositories.AttributeRepository,
	index *treeindex.Store,
	publisher ports.EventPublisher,
	cfg *config.Config,
) services.ProductService {
	return &productService{
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		attributeRepo: attributeRepo,
		index:         index,
		publisher:     publisher,
		cfg:           cfg,
	}
}

func (s *productService) Create(ctx context.Context, req *dto.CreateProductRequest) (*models.Product, error) {
	category, err := s.categoryRepo.GetByID(ctx, req.CategoryID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.Validation("category_id", "category does not exist")
		}
		return nil, err
	}

	productSlug := req.Slug
	if productSlug == "" {
		productSlug = slug.Make(req.Name)
	}
	if err := s.ensureSlugFree(ctx, productSlug, uuid.Nil); err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	product := &models.Product{
		ID:          uuid.New(),
		Name:        req.Name,
		Slug:        productSlug,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		IsActive:    isActive,
		MainImage:   req.MainImage,
	}
	for _, image := range req.Images {
		product.Images = append(product.Images, models.ProductImage{
			ID:        uuid.New(),
			Image:     image.Image,
			SortOrder: image.SortOrder,
		})
	}

	// Every assignment is validated against the schema before anything is
	// written; one bad assignment aborts the whole create.
	values, err := s.buildAssignments(ctx, product.ID, req.Attributes)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Create(ctx, product, values); err != nil {
		return nil, err
	}

	s.warnMissingRequired(ctx, category, product, req.Attributes)
	s.publish(ctx, ports.EventProductCreated, product)
	return s.productRepo.GetByID(ctx, product.ID)
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *productService) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return s.productRepo.GetBySlug(ctx, slug)
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateProductRequest) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Slug != nil && *req.Slug != product.Slug {
		if err := s.ensureSlugFree(ctx, *req.Slug, id); err != nil {
			return nil, err
		}
		product.Slug = *req.Slug
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *req.CategoryID); err != nil {
			if apperrors.IsNotFound(err) {
				return nil, apperrors.Validation("category_id", "category does not exist")
			}
			return nil, err
		}
		product.CategoryID = *req.CategoryID
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.MainImage != nil {
		product.MainImage = req.MainImage
	}

	// Detach preloaded relations so Save does not upsert stale rows.
	product.Images = nil
	product.AttributeValues = nil
	product.Category = nil

	var values []*models.AttributeValue
	replaceValues := false
	if req.Attributes != nil {
		replaceValues = true
		values, err = s.buildAssignments(ctx, product.ID, *req.Attributes)
		if err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Update(ctx, product, values, replaceValues); err != nil {
		return nil, err
	}

	s.publish(ctx, ports.EventProductUpdated, product)
	return s.productRepo.GetByID(ctx, product.ID)
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, ports.EventProductDeleted, product)
	return nil
}

func (s *productService) List(ctx context.Context, req *dto.ListProductsRequest) (*dto.ListProductsResult, error) {
	filter := &dto.ProductFilter{
		InStock:    req.InStock,
		HasImages:  req.HasImages,
		ActiveOnly: true,
		Search:     req.Search,
		Ordering:   req.Ordering,
	}

	if req.MinPrice != "" {
		min, err := decimal.NewFromString(req.MinPrice)
		if err != nil {
			return nil, apperrors.Validation("min_price", "must be a decimal number")
		}
		filter.MinPrice = &min
	}
	if req.MaxPrice != "" {
		max, err := decimal.NewFromString(req.MaxPrice)
		if err != nil {
			return nil, apperrors.Validation("max_price", "must be a decimal number")
		}
		filter.MaxPrice = &max
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = s.cfg.Catalog.PageSize
	}
	if pageSize > s.cfg.Catalog.MaxPageSize {
		pageSize = s.cfg.Catalog.MaxPageSize
	}
	filter.Page = page
	filter.PageSize = pageSize

	if req.Category != "" {
		// The category filter covers the whole subtree. An unknown slug
		// matches nothing rather than erroring.
		ids, ok := s.index.Current().Subtree(req.Category)
		if !ok {
			return &dto.ListProductsResult{
				Products: []*models.Product{},
				Page:     page,
				PageSize: pageSize,
			}, nil
		}
		filter.CategoryIDs = ids
	}

	// Deterministic filter order keeps the generated SQL stable.
	codes := make([]string, 0, len(req.Attributes))
	for code := range req.Attributes {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		filter.Attributes = append(filter.Attributes, dto.AttributeFilter{
			Code:  code,
			Value: req.Attributes[code],
		})
	}

	products, total, err := s.productRepo.ListWithFilters(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.ListProductsResult{
		Products: products,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *productService) buildAssignments(ctx context.Context, productID uuid.UUID, assignments map[string]dto.AttributeAssignmentInput) ([]*models.AttributeValue, error) {
	if len(assignments) == 0 {
		return nil, nil
	}

	codes := make([]string, 0, len(assignments))
	for code := range assignments {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	var values []*models.AttributeValue
	for _, code := range codes {
		attribute, err := s.attributeRepo.GetAttributeByCode(ctx, code)
		if err != nil {
			if apperrors.IsNotFound(err) {
				return nil, apperrors.Validation(code, "unknown attribute code")
			}
			return nil, err
		}

		rows, err := buildAssignment(attribute, productID, assignments[code])
		if err != nil {
			return nil, err
		}

		// Friendly pre-check; the repository re-checks inside the write
		// transaction.
		for _, row := range rows {
			if row.OptionID == nil {
				continue
			}
			option, err := s.attributeRepo.GetOptionByID(ctx, *row.OptionID)
			if err != nil {
				if apperrors.IsNotFound(err) {
					return nil, apperrors.Validation(code, "option does not exist")
				}
				return nil, err
			}
			if option.AttributeID != attribute.ID {
				return nil, apperrors.Validation(code, "option does not belong to the attribute")
			}
		}
		values = append(values, rows...)
	}
	return values, nil
}

// warnMissingRequired flags required attributes the write did not cover.
// A gap is an editorial problem, not a write failure.
func (s *productService) warnMissingRequired(ctx context.Context, category *models.Category, product *models.Product, assignments map[string]dto.AttributeAssignmentInput) {
	if category == nil || category.ProductTypeID == nil {
		return
	}
	groups, err := s.attributeRepo.ListGroupsByProductType(ctx, *category.ProductTypeID)
	if err != nil {
		return
	}
	for _, group := range groups {
		for _, attribute := range group.Attributes {
			if !attribute.Required {
				continue
			}
			if _, ok := assignments[attribute.Code]; !ok {
				logger.WarnContext(ctx, "Required attribute not assigned",
					"product_id", product.ID, "attribute_code", attribute.Code)
			}
		}
	}
}

func (s *productService) ensureSlugFree(ctx context.Context, productSlug string, selfID uuid.UUID) error {
	existing, err := s.productRepo.GetBySlug(ctx, productSlug)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID == selfID {
		return nil
	}
	return apperrors.Conflict("product slug already exists")
}

func (s *productService) publish(ctx context.Context, eventType string, product *models.Product) {
	_ = s.publisher.Publish(ctx, ports.CatalogEvent{
		Type:       eventType,
		EntityID:   product.ID.String(),
		Slug:       product.Slug,
		OccurredAt: time.Now().UTC(),
	})
}
