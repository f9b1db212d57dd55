package models

import (
	"time"

	"github.com/google/uuid"
)

// Category forms a forest via ParentID. Sibling order is (sort_order, name);
// the taxonomy index derives its intervals from that ordering.
type Category struct {
	ID            uuid.UUID  `gorm:"primaryKey;type:uuid"`
	Name          string     `gorm:"size:100;not null"`
	Slug          string     `gorm:"size:100;uniqueIndex;not null"`
	SortOrder     int        `gorm:"default:0"`
	// No column default, see Product.IsActive.
	IsActive      bool       `gorm:"not null"`
	ParentID      *uuid.UUID `gorm:"type:uuid;index"`
	ProductTypeID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt     time.Time

	// Relations
	Parent      *Category    `gorm:"foreignKey:ParentID"`
	Children    []Category   `gorm:"foreignKey:ParentID"`
	ProductType *ProductType `gorm:"foreignKey:ProductTypeID"`
}

func (Category) TableName() string {
	return "categories"
}
