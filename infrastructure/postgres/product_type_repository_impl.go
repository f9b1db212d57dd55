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

type productTypeRepository struct {
	db *gorm.DB
}

func NewProductTypeRepository(db *gorm.DB) repositories.ProductTypeRepository {
	return &productTypeRepository{db: db}
}

func (r *productTypeRepository) Create(ctx context.Context, productType *models.ProductType) error {
	if err := r.db.WithContext(ctx).Create(productType).Error; err != nil {
		return apperrors.Wrap("failed to create product type", err)
	}
	return nil
}

func (r *productTypeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ProductType, error) {
	var productType models.ProductType
	err := r.db.WithContext(ctx).First(&productType, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("product type not found")
		}
		return nil, apperrors.Wrap("failed to get product type", err)
	}
	return &productType, nil
}

func (r *productTypeRepository) GetBySlug(ctx context.Context, slug string) (*models.ProductType, error) {
	var productType models.ProductType
	err := r.db.WithContext(ctx).First(&productType, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("product type not found")
		}
		return nil, apperrors.Wrap("failed to get product type", err)
	}
	return &productType, nil
}

func (r *productTypeRepository) Update(ctx context.Context, productType *models.ProductType) error {
	if err := r.db.WithContext(ctx).Save(productType).Error; err != nil {
		return apperrors.Wrap("failed to update product type", err)
	}
	return nil
}

func (r *productTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var groupIDs []uuid.UUID
		if err := tx.Model(&models.AttributeGroup{}).
			Where("product_type_id = ?", id).
			Pluck("id", &groupIDs).Error; err != nil {
			return err
		}
		if len(groupIDs) > 0 {
			var attributeIDs []uuid.UUID
			if err := tx.Model(&models.ProductAttribute{}).
				Where("attribute_group_id IN ?", groupIDs).
				Pluck("id", &attributeIDs).Error; err != nil {
				return err
			}
			if len(attributeIDs) > 0 {
				if err := tx.Where("attribute_id IN ?", attributeIDs).
					Delete(&models.AttributeValue{}).Error; err != nil {
					return err
				}
				if err := tx.Where("attribute_id IN ?", attributeIDs).
					Delete(&models.AttributeOption{}).Error; err != nil {
					return err
				}
				if err := tx.Where("id IN ?", attributeIDs).
					Delete(&models.ProductAttribute{}).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("id IN ?", groupIDs).
				Delete(&models.AttributeGroup{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.ProductType{}, "id = ?", id).Error
	})
	if err != nil {
		return apperrors.Wrap("failed to delete product type", err)
	}
	return nil
}

func (r *productTypeRepository) List(ctx context.Context) ([]*models.ProductType, error) {
	var productTypes []*models.ProductType
	err := r.db.WithContext(ctx).
		Order("sort_order ASC, name ASC").
		Find(&productTypes).Error
	if err != nil {
		return nil, apperrors.Wrap("failed to list product types", err)
	}
	return productTypes, nil
}
