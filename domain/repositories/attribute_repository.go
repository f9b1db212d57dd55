package repositories

import (
	"context"

	"github.com/google/uuid"

	"catalog-service/domain/models"
)

type AttributeRepository interface {
	// Groups
	CreateGroup(ctx context.Context, group *models.AttributeGroup) error
	GetGroupByID(ctx context.Context, id uuid.UUID) (*models.AttributeGroup, error)
	UpdateGroup(ctx context.Context, group *models.AttributeGroup) error
	DeleteGroup(ctx context.Context, id uuid.UUID) error
	// ListGroupsByProductType preloads attributes ordered by
	// (group.sort_order, attribute.sort_order, attribute.name).
	ListGroupsByProductType(ctx context.Context, productTypeID uuid.UUID) ([]*models.AttributeGroup, error)

	// Attributes
	CreateAttribute(ctx context.Context, attribute *models.ProductAttribute) error
	GetAttributeByID(ctx context.Context, id uuid.UUID) (*models.ProductAttribute, error)
	GetAttributeByCode(ctx context.Context, code string) (*models.ProductAttribute, error)
	UpdateAttribute(ctx context.Context, attribute *models.ProductAttribute) error
	DeleteAttribute(ctx context.Context, id uuid.UUID) error

	// Options
	CreateOption(ctx context.Context, option *models.AttributeOption) error
	GetOptionByID(ctx context.Context, id uuid.UUID) (*models.AttributeOption, error)
	UpdateOption(ctx context.Context, option *models.AttributeOption) error
	DeleteOption(ctx context.Context, id uuid.UUID) error
	ListOptions(ctx context.Context, attributeID uuid.UUID) ([]*models.AttributeOption, error)

	// Values
	// UpsertValue writes one assignment inside a transaction. The
	// option/attribute consistency check runs inside the same transaction;
	// single-valued attributes keep at most one row per (product, attribute).
	UpsertValue(ctx context.Context, value *models.AttributeValue, multiValued bool) error
	ListValues(ctx context.Context, productID uuid.UUID) ([]*models.AttributeValue, error)
}
