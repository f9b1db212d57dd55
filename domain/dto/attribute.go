package dto

import (
	"github.com/google/uuid"

	"catalog-service/domain/models"
)

// === Requests ===

type CreateAttributeGroupRequest struct {
	Name          string    `json:"name" validate:"required,min=1,max=100"`
	ProductTypeID uuid.UUID `json:"productTypeId" validate:"required"`
	SortOrder     int       `json:"sortOrder"`
}

type UpdateAttributeGroupRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=100"`
	SortOrder *int    `json:"sortOrder"`
}

type CreateAttributeRequest struct {
	Name             string    `json:"name" validate:"required,min=1,max=100"`
	Code             string    `json:"code" validate:"omitempty,min=1,max=100"`
	Type             string    `json:"type" validate:"required,oneof=text number choice multiple color"`
	AttributeGroupID uuid.UUID `json:"attributeGroupId" validate:"required"`
	Required         bool      `json:"required"`
	SortOrder        int       `json:"sortOrder"`
}

type UpdateAttributeRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=100"`
	Required  *bool   `json:"required"`
	SortOrder *int    `json:"sortOrder"`
}

type CreateAttributeOptionRequest struct {
	Value        string `json:"value" validate:"required,min=1,max=100"`
	DisplayValue string `json:"displayValue" validate:"omitempty,max=100"`
	SortOrder    int    `json:"sortOrder"`
}

type UpdateAttributeOptionRequest struct {
	DisplayValue *string `json:"displayValue" validate:"omitempty,max=100"`
	SortOrder    *int    `json:"sortOrder"`
}

// SetAttributeValueRequest assigns one attribute value to a product.
// Choice-like attributes take OptionID (or OptionIDs for the multiple type);
// text and number attributes take RawValue.
type SetAttributeValueRequest struct {
	AttributeID uuid.UUID   `json:"attributeId" validate:"required"`
	OptionID    *uuid.UUID  `json:"optionId"`
	OptionIDs   []uuid.UUID `json:"optionIds"`
	RawValue    *string     `json:"rawValue"`
}

// === Responses ===

type AttributeOptionResponse struct {
	ID           uuid.UUID `json:"id"`
	Value        string    `json:"value"`
	DisplayValue string    `json:"displayValue"`
	SortOrder    int       `json:"order"`
}

type AttributeResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Type      string    `json:"type"`
	Required  bool      `json:"required"`
	SortOrder int       `json:"sortOrder"`
}

type AttributeGroupResponse struct {
	ID         uuid.UUID           `json:"id"`
	Name       string              `json:"name"`
	SortOrder  int                 `json:"sortOrder"`
	Attributes []AttributeResponse `json:"attributes"`
}

// AttributeValueView is one resolved product attribute for presentation:
// the option id (zero for raw values), the raw value and its display form.
type AttributeValueView struct {
	ID           uuid.UUID `json:"id"`
	Value        string    `json:"value"`
	DisplayValue string    `json:"display_value"`
}

// === Mappers ===

func OptionToResponse(option *models.AttributeOption) *AttributeOptionResponse {
	if option == nil {
		return nil
	}
	return &AttributeOptionResponse{
		ID:           option.ID,
		Value:        option.Value,
		DisplayValue: option.DisplayValue,
		SortOrder:    option.SortOrder,
	}
}

func OptionsToResponses(options []*models.AttributeOption) []AttributeOptionResponse {
	responses := make([]AttributeOptionResponse, len(options))
	for i, option := range options {
		responses[i] = *OptionToResponse(option)
	}
	return responses
}

func AttributeToResponse(attr *models.ProductAttribute) *AttributeResponse {
	if attr == nil {
		return nil
	}
	return &AttributeResponse{
		ID:        attr.ID,
		Name:      attr.Name,
		Code:      attr.Code,
		Type:      string(attr.Type),
		Required:  attr.Required,
		SortOrder: attr.SortOrder,
	}
}

func GroupsToSchemaResponses(groups []*models.AttributeGroup) []AttributeGroupResponse {
	responses := make([]AttributeGroupResponse, len(groups))
	for i, group := range groups {
		attrs := make([]AttributeResponse, len(group.Attributes))
		for j := range group.Attributes {
			attrs[j] = *AttributeToResponse(&group.Attributes[j])
		}
		responses[i] = AttributeGroupResponse{
			ID:         group.ID,
			Name:       group.Name,
			SortOrder:  group.SortOrder,
			Attributes: attrs,
		}
	}
	return responses
}
