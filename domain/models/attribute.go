package models

import (
	"github.com/google/uuid"
)

// AttributeType tags how a ProductAttribute is valued. Choice-like types
// carry an option set; text and number store a raw value instead.
type AttributeType string

const (
	AttributeTypeText     AttributeType = "text"
	AttributeTypeNumber   AttributeType = "number"
	AttributeTypeChoice   AttributeType = "choice"
	AttributeTypeMultiple AttributeType = "multiple"
	AttributeTypeColor    AttributeType = "color"
)

// IsChoiceLike reports whether values must reference an AttributeOption.
func (t AttributeType) IsChoiceLike() bool {
	return t == AttributeTypeChoice || t == AttributeTypeMultiple || t == AttributeTypeColor
}

// IsMultiValued reports whether a product may hold several values for the
// attribute at once.
func (t AttributeType) IsMultiValued() bool {
	return t == AttributeTypeMultiple
}

func (t AttributeType) Valid() bool {
	switch t {
	case AttributeTypeText, AttributeTypeNumber, AttributeTypeChoice,
		AttributeTypeMultiple, AttributeTypeColor:
		return true
	}
	return false
}

// AttributeGroup is a named bucket of attributes owned by one ProductType
// (e.g. "Physical characteristics").
type AttributeGroup struct {
	ID            uuid.UUID `gorm:"primaryKey;type:uuid"`
	Name          string    `gorm:"size:100;not null"`
	ProductTypeID uuid.UUID `gorm:"type:uuid;index;not null"`
	SortOrder     int       `gorm:"default:0"`

	ProductType *ProductType       `gorm:"foreignKey:ProductTypeID"`
	Attributes  []ProductAttribute `gorm:"foreignKey:AttributeGroupID"`
}

func (AttributeGroup) TableName() string {
	return "attribute_groups"
}

// ProductAttribute defines one typed attribute. Code is the external
// identifier used in API filter parameters and is unique process-wide.
type ProductAttribute struct {
	ID               uuid.UUID     `gorm:"primaryKey;type:uuid"`
	Name             string        `gorm:"size:100;not null"`
	Code             string        `gorm:"size:100;uniqueIndex;not null"`
	Type             AttributeType `gorm:"size:10;not null"`
	AttributeGroupID uuid.UUID     `gorm:"type:uuid;index;not null"`
	Required         bool          `gorm:"default:false"`
	SortOrder        int           `gorm:"default:0"`

	AttributeGroup *AttributeGroup   `gorm:"foreignKey:AttributeGroupID"`
	Options        []AttributeOption `gorm:"foreignKey:AttributeID"`
}

func (ProductAttribute) TableName() string {
	return "product_attributes"
}

// AttributeOption is one legal value of a choice-like attribute.
// (attribute_id, value) is unique.
type AttributeOption struct {
	ID           uuid.UUID `gorm:"primaryKey;type:uuid"`
	AttributeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attribute_value"`
	Value        string    `gorm:"size:100;not null;uniqueIndex:idx_attribute_value"`
	DisplayValue string    `gorm:"size:100;not null"`
	SortOrder    int       `gorm:"default:0"`

	Attribute *ProductAttribute `gorm:"foreignKey:AttributeID"`
}

func (AttributeOption) TableName() string {
	return "attribute_options"
}

// AttributeValue assigns one attribute value to one product. For choice-like
// attributes OptionID is set and must belong to the attribute; for text and
// number attributes RawValue holds the literal. The option/attribute
// consistency is enforced at write time, not by the schema.
type AttributeValue struct {
	ID          uuid.UUID  `gorm:"primaryKey;type:uuid"`
	ProductID   uuid.UUID  `gorm:"type:uuid;index;not null"`
	AttributeID uuid.UUID  `gorm:"type:uuid;index;not null"`
	OptionID    *uuid.UUID `gorm:"type:uuid;index"`
	RawValue    *string    `gorm:"size:255"`

	Product   *Product          `gorm:"foreignKey:ProductID"`
	Attribute *ProductAttribute `gorm:"foreignKey:AttributeID"`
	Option    *AttributeOption  `gorm:"foreignKey:OptionID"`
}

func (AttributeValue) TableName() string {
	return "attribute_values"
}
