package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"catalog-service/domain/models"
)

// === Requests ===

// AttributeAssignmentInput is one attribute assignment inside a product
// write, keyed by attribute code in the request map.
type AttributeAssignmentInput struct {
	OptionID  *uuid.UUID  `json:"optionId"`
	OptionIDs []uuid.UUID `json:"optionIds"`
	RawValue  *string     `json:"rawValue"`
}

type ProductImageInput struct {
	Image     string `json:"image" validate:"required,max=500"`
	SortOrder int    `json:"sortOrder"`
}

type CreateProductRequest struct {
	Name        string                              `json:"name" validate:"required,min=1,max=255"`
	Slug        string                              `json:"slug" validate:"omitempty,min=1,max=255"`
	CategoryID  uuid.UUID                           `json:"categoryId" validate:"required"`
	Description string                              `json:"description"`
	Price       decimal.Decimal                     `json:"price" validate:"required"`
	Stock       int                                 `json:"stock" validate:"gte=0"`
	IsActive    *bool                               `json:"isActive"`
	MainImage   *string                             `json:"mainImage"`
	Images      []ProductImageInput                 `json:"images" validate:"dive"`
	Attributes  map[string]AttributeAssignmentInput `json:"attributes"`
}

type UpdateProductRequest struct {
	Name        *string                              `json:"name" validate:"omitempty,min=1,max=255"`
	Slug        *string                              `json:"slug" validate:"omitempty,min=1,max=255"`
	CategoryID  *uuid.UUID                           `json:"categoryId"`
	Description *string                              `json:"description"`
	Price       *decimal.Decimal                     `json:"price"`
	Stock       *int                                 `json:"stock" validate:"omitempty,gte=0"`
	IsActive    *bool                                `json:"isActive"`
	MainImage   *string                              `json:"mainImage"`
	// Nil leaves assignments untouched; a non-nil map replaces them all.
	Attributes *map[string]AttributeAssignmentInput `json:"attributes"`
}

// ListProductsRequest carries the raw query parameters of a catalog listing.
type ListProductsRequest struct {
	MinPrice   string            `json:"minPrice"`
	MaxPrice   string            `json:"maxPrice"`
	Category   string            `json:"category"` // slug, resolved to its subtree
	InStock    bool              `json:"inStock"`
	HasImages  bool              `json:"hasImages"`
	Search     string            `json:"search"`
	Attributes map[string]string `json:"attributes"` // code -> option value
	Ordering   string            `json:"ordering"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
}

// ListProductsResult is the normalized page the service hands back.
type ListProductsResult struct {
	Products []*models.Product
	Total    int64
	Page     int
	PageSize int
}

// === Responses ===

type ProductCategoryRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

type ProductImageResponse struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	SortOrder int       `json:"order"`
}

type ProductResponse struct {
	ID          uuid.UUID                     `json:"id"`
	Name        string                        `json:"name"`
	Slug        string                        `json:"slug"`
	Category    *ProductCategoryRef           `json:"category"`
	Price       decimal.Decimal               `json:"price"`
	Stock       int                           `json:"stock"`
	IsActive    bool                          `json:"is_active"`
	Description string                        `json:"description"`
	Images      []ProductImageResponse        `json:"images"`
	Attributes  map[string]AttributeValueView `json:"attributes"`
	CreatedAt   time.Time                     `json:"created_at"`
}

// === Mappers ===

// ProductToResponse flattens a product with preloaded relations into the
// API view. Attribute rows without a resolvable value are omitted.
func ProductToResponse(product *models.Product) *ProductResponse {
	if product == nil {
		return nil
	}

	resp := &ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Slug:        product.Slug,
		Price:       product.Price,
		Stock:       product.Stock,
		IsActive:    product.IsActive,
		Description: product.Description,
		Images:      make([]ProductImageResponse, len(product.Images)),
		Attributes:  make(map[string]AttributeValueView),
		CreatedAt:   product.CreatedAt,
	}

	if product.Category != nil {
		resp.Category = &ProductCategoryRef{
			ID:   product.Category.ID,
			Name: product.Category.Name,
			Slug: product.Category.Slug,
		}
	}

	for i, image := range product.Images {
		resp.Images[i] = ProductImageResponse{
			ID:        image.ID,
			URL:       image.Image,
			SortOrder: image.SortOrder,
		}
	}

	for _, value := range product.AttributeValues {
		if value.Attribute == nil {
			continue
		}
		view, ok := AttributeValueToView(&value)
		if !ok {
			continue
		}
		resp.Attributes[value.Attribute.Name] = view
	}

	return resp
}

// AttributeValueToView resolves one AttributeValue row for presentation.
func AttributeValueToView(value *models.AttributeValue) (AttributeValueView, bool) {
	if value.Option != nil {
		return AttributeValueView{
			ID:           value.Option.ID,
			Value:        value.Option.Value,
			DisplayValue: value.Option.DisplayValue,
		}, true
	}
	if value.RawValue != nil {
		return AttributeValueView{
			Value:        *value.RawValue,
			DisplayValue: *value.RawValue,
		}, true
	}
	return AttributeValueView{}, false
}

func ProductsToResponses(products []*models.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i, product := range products {
		responses[i] = *ProductToResponse(product)
	}
	return responses
}
