package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"catalog-service/domain/models"
	"catalog-service/domain/repositories"
	"catalog-service/pkg/apperrors"
)

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) repositories.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return apperrors.Wrap("failed to create category", err)
	}
	return nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).
		Preload("ProductType").
		First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("category not found")
		}
		return nil, apperrors.Wrap("failed to get category", err)
	}
	return &category, nil
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).
		Preload("ProductType").
		First(&category, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("category not found")
		}
		return nil, apperrors.Wrap("failed to get category", err)
	}
	return &category, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		return apperrors.Wrap("failed to update category", err)
	}
	return nil
}

func (r *categoryRepository) DeleteMany(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var productIDs []uuid.UUID
		if err := tx.Model(&models.Product{}).
			Where("category_id IN ?", ids).
			Pluck("id", &productIDs).Error; err != nil {
			return err
		}
		if len(productIDs) > 0 {
			if err := tx.Where("product_id IN ?", productIDs).
				Delete(&models.AttributeValue{}).Error; err != nil {
				return err
			}
			if err := tx.Where("product_id IN ?", productIDs).
				Delete(&models.ProductImage{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", productIDs).
				Delete(&models.Product{}).Error; err != nil {
				return err
			}
		}
		return tx.Where("id IN ?", ids).Delete(&models.Category{}).Error
	})
	if err != nil {
		return apperrors.Wrap("failed to delete categories", err)
	}
	return nil
}

func (r *categoryRepository) List(ctx context.Context, activeOnly bool) ([]*models.Category, error) {
	var categories []*models.Category
	query := r.db.WithContext(ctx).Model(&models.Category{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("sort_order ASC, name ASC").Find(&categories).Error
	if err != nil {
		return nil, apperrors.Wrap("failed to list categories", err)
	}
	return categories, nil
}

func (r *categoryRepository) ListTree(ctx context.Context) ([]*models.Category, error) {
	// The tree is a read-facing view; inactive branches stay hidden. One flat
	// query, assembled in memory, so depth is unbounded.
	var categories []*models.Category
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, apperrors.Wrap("failed to list category tree", err)
	}

	byID := make(map[uuid.UUID]*models.Category, len(categories))
	childIDs := make(map[uuid.UUID][]uuid.UUID, len(categories))
	var roots []*models.Category
	for _, category := range categories {
		byID[category.ID] = category
	}
	// The global ordering keeps sibling groups sorted.
	for _, category := range categories {
		if category.ParentID == nil {
			roots = append(roots, category)
			continue
		}
		if _, ok := byID[*category.ParentID]; !ok {
			// Parent inactive or gone; the branch stays hidden with it.
			continue
		}
		childIDs[*category.ParentID] = append(childIDs[*category.ParentID], category.ID)
	}

	// Children are attached bottom-up so each subtree is complete before it
	// is copied into its parent.
	var attach func(category *models.Category)
	attach = func(category *models.Category) {
		for _, childID := range childIDs[category.ID] {
			child := byID[childID]
			attach(child)
			category.Children = append(category.Children, *child)
		}
	}
	for _, root := range roots {
		attach(root)
	}
	return roots, nil
}

func (r *categoryRepository) GetMaxSortOrder(ctx context.Context, parentID *uuid.UUID) (int, error) {
	var max int
	query := r.db.WithContext(ctx).Model(&models.Category{}).
		Select("COALESCE(MAX(sort_order), -1)")
	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", *parentID)
	}
	if err := query.Scan(&max).Error; err != nil {
		return 0, apperrors.Wrap("failed to get max sort order", err)
	}
	return max, nil
}

func (r *categoryRepository) UpdateMany(ctx context.Context, categories []*models.Category) error {
	if len(categories) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, category := range categories {
			if err := tx.Save(category).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return apperrors.Wrap("failed to update categories", err)
	}
	return nil
}

func (r *categoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Category{}).Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap("failed to count categories", err)
	}
	return count, nil
}

func (r *categoryRepository) CountByProductType(ctx context.Context, productTypeID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Category{}).
		Where("product_type_id = ?", productTypeID).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap("failed to count categories by product type", err)
	}
	return count, nil
}

func (r *categoryRepository) GetProductCounts(ctx context.Context) (map[uuid.UUID]int64, error) {
	type row struct {
		CategoryID uuid.UUID
		Count      int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&models.Product{}).
		Select("category_id, COUNT(*) as count").
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap("failed to get product counts", err)
	}
	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.CategoryID] = row.Count
	}
	return counts, nil
}
