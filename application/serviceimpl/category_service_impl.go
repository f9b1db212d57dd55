package serviceimpl

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"catalog-service/domain/dto"
	"catalog-service/domain/models"
	"catalog-service/domain/ports"
	"catalog-service/domain/repositories"
	"catalog-service/domain/services"
	"catalog-service/infrastructure/redis"
	"catalog-service/pkg/apperrors"
	"catalog-service/pkg/config"
	"catalog-service/pkg/logger"
	"catalog-service/pkg/treeindex"
)

const categoryTreeCacheKey = "catalog:categories:tree"

type categoryService struct {
	categoryRepo repositories.CategoryRepository
	index        *treeindex.Store
	cache        *redis.Client
	publisher    ports.EventPublisher
	cfg          *config.Config
}

func NewCategoryService(
	categoryRepo repositories.CategoryRepository,
	index *treeindex.Store,
	cache *redis.Client,
	publisher ports.EventPublisher,
	cfg *config.Config,
) services.CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		index:        index,
		cache:        cache,
		publisher:    publisher,
		cfg:          cfg,
	}
}

func (s *categoryService) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error) {
	categorySlug := req.Slug
	if categorySlug == "" {
		categorySlug = slug.Make(req.Name)
	}
	if err := s.ensureSlugFree(ctx, categorySlug, uuid.Nil); err != nil {
		return nil, err
	}

	if req.ParentID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *req.ParentID); err != nil {
			if apperrors.IsNotFound(err) {
				return nil, apperrors.Validation("parent_id", "parent category does not exist")
			}
			return nil, err
		}
	}

	maxOrder, err := s.categoryRepo.GetMaxSortOrder(ctx, req.ParentID)
	if err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	category := &models.Category{
		ID:            uuid.New(),
		Name:          req.Name,
		Slug:          categorySlug,
		SortOrder:     maxOrder + 1,
		IsActive:      isActive,
		ParentID:      req.ParentID,
		ProductTypeID: req.ProductTypeID,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	s.afterStructuralChange(ctx, category)
	return category, nil
}

func (s *categoryService) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

func (s *categoryService) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return s.categoryRepo.GetBySlug(ctx, slug)
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Slug != nil && *req.Slug != category.Slug {
		if err := s.ensureSlugFree(ctx, *req.Slug, id); err != nil {
			return nil, err
		}
		category.Slug = *req.Slug
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if req.ProductTypeID != nil {
		category.ProductTypeID = req.ProductTypeID
	}

	switch {
	case req.MakeRoot:
		category.ParentID = nil
	case req.ParentID != nil:
		if err := s.validateMove(ctx, id, *req.ParentID); err != nil {
			return nil, err
		}
		category.ParentID = req.ParentID
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	s.afterStructuralChange(ctx, category)
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// The whole subtree goes: descendants from the index, the category
	// itself as a fallback if a reindex has not caught up yet.
	ids, ok := s.index.Current().SubtreeByID(id)
	if !ok {
		ids = []uuid.UUID{id}
	}
	if err := s.categoryRepo.DeleteMany(ctx, ids); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Category subtree deleted",
		"category_id", id, "slug", category.Slug, "removed", len(ids))

	s.afterStructuralChange(ctx, category)
	return nil
}

func (s *categoryService) List(ctx context.Context, activeOnly bool) ([]*models.Category, error) {
	return s.categoryRepo.List(ctx, activeOnly)
}

func (s *categoryService) ListTree(ctx context.Context) ([]*models.Category, error) {
	var cached []*models.Category
	if err := s.cache.GetJSON(ctx, categoryTreeCacheKey, &cached); err == nil {
		return cached, nil
	}

	roots, err := s.categoryRepo.ListTree(ctx)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(s.cfg.Catalog.CacheTTL) * time.Second
	if err := s.cache.SetJSON(ctx, categoryTreeCacheKey, roots, ttl); err != nil {
		logger.WarnContext(ctx, "Failed to cache category tree", "error", err)
	}
	return roots, nil
}

func (s *categoryService) Reorder(ctx context.Context, req *dto.ReorderCategoriesRequest) error {
	categories, err := s.categoryRepo.List(ctx, false)
	if err != nil {
		return err
	}
	byID := make(map[uuid.UUID]*models.Category, len(categories))
	for _, category := range categories {
		byID[category.ID] = category
	}

	updated := make([]*models.Category, 0, len(req.Categories))
	for _, item := range req.Categories {
		category, ok := byID[item.ID]
		if !ok {
			return apperrors.NotFound("category not found")
		}
		if item.ParentID != nil {
			if *item.ParentID == item.ID {
				return apperrors.Validation("parent_id", "category cannot be its own parent")
			}
			if _, ok := byID[*item.ParentID]; !ok {
				return apperrors.Validation("parent_id", "parent category does not exist")
			}
		}
		category.ParentID = item.ParentID
		category.SortOrder = item.SortOrder
		updated = append(updated, category)
	}

	// Per-item checks cannot see moves that only cycle in combination, so the
	// batch is validated as a whole: build a candidate index over the proposed
	// parents and reject the request if any category falls out of the forest.
	nodes := make([]treeindex.Node, len(categories))
	for i, category := range categories {
		nodes[i] = treeindex.Node{
			ID:        category.ID,
			Slug:      category.Slug,
			Name:      category.Name,
			ParentID:  category.ParentID,
			SortOrder: category.SortOrder,
		}
	}
	if treeindex.Build(nodes).Len() != len(nodes) {
		return apperrors.Validation("parent_id", "reorder would create a category cycle")
	}

	if err := s.categoryRepo.UpdateMany(ctx, updated); err != nil {
		return err
	}

	s.afterStructuralChange(ctx, nil)
	return nil
}

func (s *categoryService) Subtree(ctx context.Context, categorySlug string) ([]uuid.UUID, error) {
	ids, ok := s.index.Current().Subtree(categorySlug)
	if !ok {
		return nil, apperrors.NotFound("category not found")
	}
	return ids, nil
}

func (s *categoryService) Reindex(ctx context.Context) error {
	categories, err := s.categoryRepo.List(ctx, false)
	if err != nil {
		return err
	}

	nodes := make([]treeindex.Node, len(categories))
	for i, c := range categories {
		nodes[i] = treeindex.Node{
			ID:        c.ID,
			Slug:      c.Slug,
			Name:      c.Name,
			ParentID:  c.ParentID,
			SortOrder: c.SortOrder,
		}
	}

	s.index.Swap(treeindex.Build(nodes))
	logger.InfoContext(ctx, "Category index rebuilt", "categories", len(nodes))
	return nil
}

func (s *categoryService) GetProductCounts(ctx context.Context) (map[uuid.UUID]int64, error) {
	return s.categoryRepo.GetProductCounts(ctx)
}

// validateMove rejects a parent change that would detach the subtree into
// itself. The check runs against the current index snapshot.
func (s *categoryService) validateMove(ctx context.Context, id, newParentID uuid.UUID) error {
	if newParentID == id {
		return apperrors.Validation("parent_id", "category cannot be its own parent")
	}
	if s.index.Current().IsDescendant(newParentID, id) {
		return apperrors.Validation("parent_id", "category cannot be moved under its own descendant")
	}
	if _, err := s.categoryRepo.GetByID(ctx, newParentID); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.Validation("parent_id", "parent category does not exist")
		}
		return err
	}
	return nil
}

func (s *categoryService) ensureSlugFree(ctx context.Context, categorySlug string, selfID uuid.UUID) error {
	existing, err := s.categoryRepo.GetBySlug(ctx, categorySlug)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID == selfID {
		return nil
	}
	return apperrors.Conflict("category slug already exists")
}

// afterStructuralChange refreshes the index, drops the cached tree and
// emits a change event. None of these may fail the committed write.
func (s *categoryService) afterStructuralChange(ctx context.Context, category *models.Category) {
	if err := s.Reindex(ctx); err != nil {
		logger.ErrorContext(ctx, "Failed to rebuild category index", "error", err)
	}
	if err := s.cache.Delete(ctx, categoryTreeCacheKey); err != nil {
		logger.WarnContext(ctx, "Failed to invalidate category tree cache", "error", err)
	}

	event := ports.CatalogEvent{
		Type:       ports.EventCategoryChanged,
		OccurredAt: time.Now().UTC(),
	}
	if category != nil {
		event.EntityID = category.ID.String()
		event.Slug = category.Slug
	}
	_ = s.publisher.Publish(ctx, event)
}
