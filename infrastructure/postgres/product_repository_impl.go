package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"catalog-service/domain/dto"
	"catalog-service/domain/models"
	"catalog-service/domain/repositories"
	"catalog-service/pkg/apperrors"
)

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repositories.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *models.Product, values []*models.AttributeValue) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return err
		}
		for _, value := range values {
			value.ProductID = product.ID
			if err := checkOptionOwnership(tx, value); err != nil {
				return err
			}
			if err := tx.Create(value).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if apperrors.IsValidation(err) {
			return err
		}
		return apperrors.Wrap("failed to create product", err)
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("AttributeValues.Attribute").
		Preload("AttributeValues.Option").
		First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("product not found")
		}
		return nil, apperrors.Wrap("failed to get product", err)
	}
	return &product, nil
}

func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("AttributeValues.Attribute").
		Preload("AttributeValues.Option").
		First(&product, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("product not found")
		}
		return nil, apperrors.Wrap("failed to get product", err)
	}
	return &product, nil
}

func (r *productRepository) Update(ctx context.Context, product *models.Product, values []*models.AttributeValue, replaceValues bool) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(product).Error; err != nil {
			return err
		}
		if !replaceValues {
			return nil
		}
		if err := tx.Where("product_id = ?", product.ID).
			Delete(&models.AttributeValue{}).Error; err != nil {
			return err
		}
		for _, value := range values {
			value.ProductID = product.ID
			if err := checkOptionOwnership(tx, value); err != nil {
				return err
			}
			if err := tx.Create(value).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if apperrors.IsValidation(err) {
			return err
		}
		return apperrors.Wrap("failed to update product", err)
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).
			Delete(&models.AttributeValue{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).
			Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, "id = ?", id).Error
	})
	if err != nil {
		return apperrors.Wrap("failed to delete product", err)
	}
	return nil
}

func (r *productRepository) ListWithFilters(ctx context.Context, filter *dto.ProductFilter) ([]*models.Product, int64, error) {
	base := r.applyFilters(r.db.WithContext(ctx).Model(&models.Product{}), filter)

	// Attribute joins can match a product more than once, so the count and
	// the page are both taken over distinct product rows.
	var total int64
	if err := base.Session(&gorm.Session{}).
		Distinct("products.id").
		Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap("failed to count products", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 12
	}

	var products []*models.Product
	err := base.Session(&gorm.Session{}).
		Distinct("products.*").
		Order(orderClause(filter.Ordering)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("AttributeValues.Attribute").
		Preload("AttributeValues.Option").
		Find(&products).Error
	if err != nil {
		return nil, 0, apperrors.Wrap("failed to list products", err)
	}
	return products, total, nil
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap("failed to count products", err)
	}
	return count, nil
}

// applyFilters composes every predicate with AND. Each attribute filter gets
// its own join triple so two filters on different attributes narrow instead
// of contradicting each other.
func (r *productRepository) applyFilters(query *gorm.DB, filter *dto.ProductFilter) *gorm.DB {
	if filter.ActiveOnly {
		query = query.Where("products.is_active = ?", true)
	}
	if filter.MinPrice != nil {
		query = query.Where("products.price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("products.price <= ?", *filter.MaxPrice)
	}
	if filter.CategoryIDs != nil {
		query = query.Where("products.category_id IN ?", filter.CategoryIDs)
	}
	if filter.InStock {
		query = query.Where("products.stock > ?", 0)
	}
	if filter.HasImages {
		query = query.Where(
			"EXISTS (SELECT 1 FROM product_images WHERE product_images.product_id = products.id)")
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(products.name) LIKE ? OR LOWER(products.description) LIKE ?",
			pattern, pattern,
		)
	}
	for i, attr := range filter.Attributes {
		av := fmt.Sprintf("av%d", i)
		pa := fmt.Sprintf("pa%d", i)
		ao := fmt.Sprintf("ao%d", i)
		query = query.
			Joins(fmt.Sprintf(
				"JOIN attribute_values %s ON %s.product_id = products.id", av, av)).
			Joins(fmt.Sprintf(
				"JOIN product_attributes %s ON %s.id = %s.attribute_id", pa, pa, av)).
			Joins(fmt.Sprintf(
				"JOIN attribute_options %s ON %s.id = %s.option_id", ao, ao, av)).
			Where(fmt.Sprintf("%s.code = ? AND %s.value = ?", pa, ao),
				attr.Code, attr.Value)
	}
	return query
}

// orderClause maps the public ordering token to SQL. Unknown tokens fall back
// to newest-first; product id breaks ties so pagination stays stable.
func orderClause(ordering string) string {
	desc := false
	field := ordering
	if strings.HasPrefix(field, "-") {
		desc = true
		field = field[1:]
	}
	column := ""
	switch field {
	case "price":
		column = "products.price"
	case "name":
		column = "products.name"
	case "created_at":
		column = "products.created_at"
	}
	if column == "" {
		return "products.created_at DESC, products.id ASC"
	}
	if desc {
		return column + " DESC, products.id ASC"
	}
	return column + " ASC, products.id ASC"
}

// checkOptionOwnership validates one assignment against the option table
// inside the caller's transaction.
func checkOptionOwnership(tx *gorm.DB, value *models.AttributeValue) error {
	if value.OptionID == nil {
		return nil
	}
	var option models.AttributeOption
	if err := tx.First(&option, "id = ?", *value.OptionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.Validation("option", "option does not exist")
		}
		return err
	}
	if option.AttributeID != value.AttributeID {
		return apperrors.Validation("option", "option does not belong to the attribute")
	}
	return nil
}
