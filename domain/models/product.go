package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uuid.UUID       `gorm:"primaryKey;type:uuid"`
	Name        string          `gorm:"size:255;not null"`
	Slug        string          `gorm:"size:255;uniqueIndex;not null"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
	// No column default: gorm skips zero-valued fields that carry one, which
	// would turn an explicit false back into true on insert. The service sets
	// the value on every create.
	IsActive    bool            `gorm:"not null"`
	MainImage   *string         `gorm:"size:500"` // opaque blob path, storage out of scope
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relations
	Category        *Category        `gorm:"foreignKey:CategoryID"`
	Images          []ProductImage   `gorm:"foreignKey:ProductID"`
	AttributeValues []AttributeValue `gorm:"foreignKey:ProductID"`
}

func (Product) TableName() string {
	return "products"
}

type ProductImage struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid"`
	ProductID uuid.UUID `gorm:"type:uuid;index;not null"`
	Image     string    `gorm:"size:500;not null"`
	SortOrder int       `gorm:"default:0"`
}

func (ProductImage) TableName() string {
	return "product_images"
}
