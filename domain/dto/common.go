package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AttributeFilter is one attribute-equality predicate: the attribute's code
// and the option value that must be assigned.
type AttributeFilter struct {
	Code  string
	Value string
}

// ProductFilter is the repository-level filter set. All predicates compose
// with AND. CategoryIDs is the already-resolved subtree id set; nil means no
// category predicate.
type ProductFilter struct {
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	CategoryIDs []uuid.UUID
	InStock     bool
	HasImages   bool
	ActiveOnly  bool
	Search      string
	Attributes  []AttributeFilter
	Ordering    string // price | name | created_at, '-' prefix for descending
	Page        int
	PageSize    int
}
