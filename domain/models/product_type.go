package models

import (
	"time"

	"github.com/google/uuid"
)

// ProductType groups attribute schemas by kind of product
// (e.g. clothing, electronics).
type ProductType struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid"`
	Name      string    `gorm:"size:100;not null"`
	Slug      string    `gorm:"size:100;uniqueIndex;not null"`
	SortOrder int       `gorm:"default:0"`
	CreatedAt time.Time

	AttributeGroups []AttributeGroup `gorm:"foreignKey:ProductTypeID"`
}

func (ProductType) TableName() string {
	return "product_types"
}
