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

type attributeRepository struct {
	db *gorm.DB
}

func NewAttributeRepository(db *gorm.DB) repositories.AttributeRepository {
	return &attributeRepository{db: db}
}

// Groups

func (r *attributeRepository) CreateGroup(ctx context.Context, group *models.AttributeGroup) error {
	if err := r.db.WithContext(ctx).Create(group).Error; err != nil {
		return apperrors.Wrap("failed to create attribute group", err)
	}
	return nil
}

func (r *attributeRepository) GetGroupByID(ctx context.Context, id uuid.UUID) (*models.AttributeGroup, error) {
	var group models.AttributeGroup
	err := r.db.WithContext(ctx).First(&group, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("attribute group not found")
		}
		return nil, apperrors.Wrap("failed to get attribute group", err)
	}
	return &group, nil
}

func (r *attributeRepository) UpdateGroup(ctx context.Context, group *models.AttributeGroup) error {
	if err := r.db.WithContext(ctx).Save(group).Error; err != nil {
		return apperrors.Wrap("failed to update attribute group", err)
	}
	return nil
}

func (r *attributeRepository) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var attributeIDs []uuid.UUID
		if err := tx.Model(&models.ProductAttribute{}).
			Where("attribute_group_id = ?", id).
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
		return tx.Delete(&models.AttributeGroup{}, "id = ?", id).Error
	})
	if err != nil {
		return apperrors.Wrap("failed to delete attribute group", err)
	}
	return nil
}

func (r *attributeRepository) ListGroupsByProductType(ctx context.Context, productTypeID uuid.UUID) ([]*models.AttributeGroup, error) {
	var groups []*models.AttributeGroup
	err := r.db.WithContext(ctx).
		Preload("Attributes", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, name ASC")
		}).
		Where("product_type_id = ?", productTypeID).
		Order("sort_order ASC, name ASC").
		Find(&groups).Error
	if err != nil {
		return nil, apperrors.Wrap("failed to list attribute groups", err)
	}
	return groups, nil
}

// Attributes

func (r *attributeRepository) CreateAttribute(ctx context.Context, attribute *models.ProductAttribute) error {
	if err := r.db.WithContext(ctx).Create(attribute).Error; err != nil {
		return apperrors.Wrap("failed to create attribute", err)
	}
	return nil
}

func (r *attributeRepository) GetAttributeByID(ctx context.Context, id uuid.UUID) (*models.ProductAttribute, error) {
	var attribute models.ProductAttribute
	err := r.db.WithContext(ctx).First(&attribute, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("attribute not found")
		}
		return nil, apperrors.Wrap("failed to get attribute", err)
	}
	return &attribute, nil
}

func (r *attributeRepository) GetAttributeByCode(ctx context.Context, code string) (*models.ProductAttribute, error) {
	var attribute models.ProductAttribute
	err := r.db.WithContext(ctx).First(&attribute, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("attribute not found")
		}
		return nil, apperrors.Wrap("failed to get attribute", err)
	}
	return &attribute, nil
}

func (r *attributeRepository) UpdateAttribute(ctx context.Context, attribute *models.ProductAttribute) error {
	if err := r.db.WithContext(ctx).Save(attribute).Error; err != nil {
		return apperrors.Wrap("failed to update attribute", err)
	}
	return nil
}

func (r *attributeRepository) DeleteAttribute(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("attribute_id = ?", id).
			Delete(&models.AttributeValue{}).Error; err != nil {
			return err
		}
		if err := tx.Where("attribute_id = ?", id).
			Delete(&models.AttributeOption{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ProductAttribute{}, "id = ?", id).Error
	})
	if err != nil {
		return apperrors.Wrap("failed to delete attribute", err)
	}
	return nil
}

// Options

func (r *attributeRepository) CreateOption(ctx context.Context, option *models.AttributeOption) error {
	if err := r.db.WithContext(ctx).Create(option).Error; err != nil {
		return apperrors.Wrap("failed to create attribute option", err)
	}
	return nil
}

func (r *attributeRepository) GetOptionByID(ctx context.Context, id uuid.UUID) (*models.AttributeOption, error) {
	var option models.AttributeOption
	err := r.db.WithContext(ctx).First(&option, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("attribute option not found")
		}
		return nil, apperrors.Wrap("failed to get attribute option", err)
	}
	return &option, nil
}

func (r *attributeRepository) UpdateOption(ctx context.Context, option *models.AttributeOption) error {
	if err := r.db.WithContext(ctx).Save(option).Error; err != nil {
		return apperrors.Wrap("failed to update attribute option", err)
	}
	return nil
}

func (r *attributeRepository) DeleteOption(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("option_id = ?", id).
			Delete(&models.AttributeValue{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.AttributeOption{}, "id = ?", id).Error
	})
	if err != nil {
		return apperrors.Wrap("failed to delete attribute option", err)
	}
	return nil
}

func (r *attributeRepository) ListOptions(ctx context.Context, attributeID uuid.UUID) ([]*models.AttributeOption, error) {
	var options []*models.AttributeOption
	err := r.db.WithContext(ctx).
		Where("attribute_id = ?", attributeID).
		Order("sort_order ASC, value ASC").
		Find(&options).Error
	if err != nil {
		return nil, apperrors.Wrap("failed to list attribute options", err)
	}
	return options, nil
}

// Values

func (r *attributeRepository) UpsertValue(ctx context.Context, value *models.AttributeValue, multiValued bool) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if value.OptionID != nil {
			// Re-check option ownership inside the transaction so a
			// concurrent option move cannot slip a mismatch through.
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
		}

		if multiValued {
			if value.OptionID != nil {
				var count int64
				if err := tx.Model(&models.AttributeValue{}).
					Where("product_id = ? AND attribute_id = ? AND option_id = ?",
						value.ProductID, value.AttributeID, *value.OptionID).
					Count(&count).Error; err != nil {
					return err
				}
				if count > 0 {
					return nil
				}
			}
			return tx.Create(value).Error
		}

		var existing models.AttributeValue
		err := tx.Where("product_id = ? AND attribute_id = ?",
			value.ProductID, value.AttributeID).
			First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tx.Create(value).Error
			}
			return err
		}
		existing.OptionID = value.OptionID
		existing.RawValue = value.RawValue
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		value.ID = existing.ID
		return nil
	})
	if err != nil {
		if apperrors.IsValidation(err) {
			return err
		}
		return apperrors.Wrap("failed to upsert attribute value", err)
	}
	return nil
}

func (r *attributeRepository) ListValues(ctx context.Context, productID uuid.UUID) ([]*models.AttributeValue, error) {
	var values []*models.AttributeValue
	err := r.db.WithContext(ctx).
		Preload("Attribute").
		Preload("Option").
		Where("product_id = ?", productID).
		Find(&values).Error
	if err != nil {
		return nil, apperrors.Wrap("failed to list attribute values", err)
	}
	return values, nil
}
