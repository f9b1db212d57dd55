package services

import (
	"context"

	"github.com/google/uuid"

	"catalog-service/domain/dto"
	"catalog-service/domain/models"
)

type AttributeService interface {
	// Groups
	CreateGroup(ctx context.Context, req *dto.CreateAttributeGroupRequest) (*models.AttributeGroup, error)
	UpdateGroup(ctx context.Context, id uuid.UUID, req *dto.UpdateAttributeGroupRequest) (*models.AttributeGroup, error)
	DeleteGroup(ctx context.Context, id uuid.UUID) error

	// Attributes. Code defaults to the slugified name; a collision fails
	// with a conflict instead of overwriting.
	CreateAttribute(ctx context.Context, req *dto.CreateAttributeRequest) (*models.ProductAttribute, error)
	UpdateAttribute(ctx context.Context, id uuid.UUID, req *dto.UpdateAttributeRequest) (*models.ProductAttribute, error)
	DeleteAttribute(ctx context.Context, id uuid.UUID) error
	GetAttribute(ctx context.Context, id uuid.UUID) (*models.ProductAttribute, error)

	// Options. (attribute, value) is unique; a duplicate value fails with a
	// conflict.
	CreateOption(ctx context.Context, attributeID uuid.UUID, req *dto.CreateAttributeOptionRequest) (*models.AttributeOption, error)
	UpdateOption(ctx context.Context, id uuid.UUID, req *dto.UpdateAttributeOptionRequest) (*models.AttributeOption, error)
	DeleteOption(ctx context.Context, id uuid.UUID) error
	// ListOptions returns an empty list for an unknown attribute, never an
	// error.
	ListOptions(ctx context.Context, attributeID uuid.UUID) ([]*models.AttributeOption, error)

	// Values
	// SetValue upserts one assignment after validating it against the
	// schema; a mismatched option fails with a validation error and leaves
	// prior state unchanged.
	SetValue(ctx context.Context, productID uuid.UUID, req *dto.SetAttributeValueRequest) error
	// ValuesFor maps attribute name to the resolved value view; attributes
	// without an assigned value are omitted.
	ValuesFor(ctx context.Context, productID uuid.UUID) (map[string]dto.AttributeValueView, error)
}
