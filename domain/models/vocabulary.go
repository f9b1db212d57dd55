package models

import "github.com/google/uuid"

// Lookup vocabularies used by the editing UI when seeding option sets.
// AttributeOption is the value vocabulary the filter engine actually consumes.

type Size struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid"`
	Name        string    `gorm:"size:10;uniqueIndex;not null"` // XS, S, M, L...
	DisplayName string    `gorm:"size:50;not null"`
	SortOrder   int       `gorm:"default:0"`
	Description string    `gorm:"type:text"`
}

func (Size) TableName() string {
	return "sizes"
}

type Color struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid"`
	Name        string    `gorm:"size:50;uniqueIndex;not null"`
	DisplayName string    `gorm:"size:50;not null"`
	HexCode     string    `gorm:"size:7"`
	SortOrder   int       `gorm:"default:0"`
}

func (Color) TableName() string {
	return "colors"
}

// Density is a fabric weight lookup (g/m²).
type Density struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid"`
	Value       int       `gorm:"uniqueIndex;not null"`
	Description string    `gorm:"size:100"`
	SortOrder   int       `gorm:"default:0"`
}

func (Density) TableName() string {
	return "densities"
}
