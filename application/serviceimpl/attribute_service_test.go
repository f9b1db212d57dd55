package serviceimpl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-service/domain/dto"
	"catalog-service/pkg/apperrors"
)

func TestAttributeAutoCodeAndConflict(t *testing.T) {
	env := newTestEnv(t)
	productType := env.createProductType(t, "Clothing")
	group := env.createGroup(t, productType.ID, "General")

	attribute := env.createAttribute(t, group.ID, "Sleeve Length", "choice")
	assert.Equal(t, "sleeve-length", attribute.Code)

	_, err := env.Attributes.CreateAttribute(context.Background(), &dto.CreateAttributeRequest{
		Name:             "Different Name",
		Code:             "sleeve-length",
		Type:             "text",
		AttributeGroupID: group.ID,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestOptionsOrderedAndEmptyForUnknown(t *testing.T) {
	env := newTestEnv(t)
	productType := env.createProductType(t, "Clothing")
	group := env.createGroup(t, productType.ID, "General")
	attribute := env.createAttribute(t, group.ID, "Size", "choice")

	for i, v := range []string{"l", "m", "s"} {
		_, err := env.Attributes.CreateOption(context.Background(), attribute.ID, &dto.CreateAttributeOptionRequest{
			Value:     v,
			SortOrder: 3 - i,
		})
		require.NoError(t, err)
	}

	options, err := env.Attributes.ListOptions(context.Background(), attribute.ID)
	require.NoError(t, err)
	require.Len(t, options, 3)
	assert.Equal(t, "s", options[0].Value)
	assert.Equal(t, "l", options[2].Value)

	// Unknown attribute yields an empty list, not an error.
	options, err = env.Attributes.ListOptions(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, options)
}

func TestOptionDuplicateValueConflicts(t *testing.T) {
	env := newTestEnv(t)
	productType := env.createProductType(t, "Clothing")
	group := env.createGroup(t, productType.ID, "General")
	attribute := env.createAttribute(t, group.ID, "Size", "choice")

	env.createOption(t, attribute.ID, "m")

	_, err := env.Attributes.CreateOption(context.Background(), attribute.ID, &dto.CreateAttributeOptionRequest{
		Value: "m",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestOptionRejectedForNonChoiceAttribute(t *testing.T) {
	env := newTestEnv(t)
	productType := env.createProductType(t, "Clothing")
	group := env.createGroup(t, productType.ID, "General")
	attribute := env.createAttribute(t, group.ID, "Notes", "text")

	_, err := env.Attributes.CreateOption(context.Background(), attribute.ID, &dto.CreateAttributeOptionRequest{
		Value: "anything",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestSetValueRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	productType := env.createProductType(t, "Clothing")
	group := env.createGroup(t, productType.ID, "General")
	category := env.createCategory(t, "Shirts", nil)

	size := env.createAttribute(t, group.ID, "Size", "choice")
	m := env.createOption(t, size.ID, "m")
	l := env.createOption(t, size.ID, "l")

	product, err := env.Products.Create(context.Background(), &dto.CreateProductRequest{
		Name:       "Plain Shirt",
		CategoryID: category.ID,
		Price:      decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)

	err = env.Attributes.SetValue(context.Background(), product.ID, &dto.SetAttributeValueRequest{
		AttributeID: size.ID,
		OptionID:    &m.ID,
	})
	require.NoError(t, err)

	values, err := env.Attributes.ValuesFor(context.Background(), product.ID)
	require.NoError(t, err)
	require.Contains(t, values, "Size")
	assert.Equal(t, "m", values["Size"].Value)

	// Single-valued: a second set replaces, it does not accumulate.
	err = env.Attributes.SetValue(context.Background(), product.ID, &dto.SetAttributeValueRequest{
		AttributeID: size.ID,
		OptionID:    &l.ID,
	})
	require.NoError(t, err)

	values, err = env.Attributes.ValuesFor(context.Background(), product.ID)
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, "l", values["Size"].Value)
}

func TestSetValueMismatchedOptionLeavesStateUnchanged(t *testing.T) {
	env := newTestEnv(t)
	productType := env.createProductType(t, "Clothing")
	group := env.createGroup(t, productType.ID, "General")
	category := env.createCategory(t, "Shirts", nil)

	size := env.createAttribute(t, group.ID, "Size", "choice")
	color := env.createAttribute(t, group.ID, "Color", "color")
	m := env.createOption(t, size.ID, "m")
	red := env.createOption(t, color.ID, "red")

	product, err := env.Products.Create(context.Background(), &dto.CreateProductRequest{
		Name:       "Shirt",
		CategoryID: category.ID,
		Price:      decimal.RequireFromString("10.00"),
		Attributes: map[string]dto.AttributeAssignmentInput{
			"size": {OptionID: &m.ID},
		},
	})
	require.NoError(t, err)

	// Red belongs to Color, not Size.
	err = env.Attributes.SetValue(context.Background(), product.ID, &dto.SetAttributeValueRequest{
		AttributeID: size.ID,
		OptionID:    &red.ID,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	values, err := env.Attributes.ValuesFor(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, "m", values["Size"].Value)
}

func TestSetValueShapeValidation(t *testing.T) {
	env := newTestEnv(t)
	productType := env.createProductType(t, "Clothing")
	group := env.createGroup(t, productType.ID, "General")
	category := env.createCategory(t, "Shirts", nil)

	size := env.createAttribute(t, group.ID, "Size", "choice")
	density := env.createAttribute(t, group.ID, "Density", "number")
	m := env.createOption(t, size.ID, "m")

	product, err := env.Products.Create(context.Background(), &dto.CreateProductRequest{
		Name:       "Shirt",
		CategoryID: category.ID,
		Price:      decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)

	raw := "heavy"
	// Raw value on a choice attribute.
	err = env.Attributes.SetValue(context.Background(), product.ID, &dto.SetAttributeValueRequest{
		AttributeID: size.ID,
		RawValue:    &raw,
	})
	assert.True(t, apperrors.IsValidation(err))

	// Option on a number attribute.
	err = env.Attributes.SetValue(context.Background(), product.ID, &dto.SetAttributeValueRequest{
		AttributeID: density.ID,
		OptionID:    &m.ID,
	})
	assert.True(t, apperrors.IsValidation(err))

	// Non-numeric raw value on a number attribute.
	err = env.Attributes.SetValue(context.Background(), product.ID, &dto.SetAttributeValueRequest{
		AttributeID: density.ID,
		RawValue:    &raw,
	})
	assert.True(t, apperrors.IsValidation(err))

	numeric := "160"
	err = env.Attributes.SetValue(context.Background(), product.ID, &dto.SetAttributeValueRequest{
		AttributeID: density.ID,
		RawValue:    &numeric,
	})
	assert.NoError(t, err)
}

func TestMultiValuedAccumulates(t *testing.T) {
	env := newTestEnv(t)
	productType := env.createProductType(t, "Clothing")
	group := env.createGroup(t, productType.ID, "General")
	category := env.createCategory(t, "Shirts", nil)

	material := env.createAttribute(t, group.ID, "Material", "multiple")
	cotton := env.createOption(t, material.ID, "cotton")
	linen := env.createOption(t, material.ID, "linen")

	product, err := env.Products.Create(context.Background(), &dto.CreateProductRequest{
		Name:       "Blend",
		CategoryID: category.ID,
		Price:      decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)

	err = env.Attributes.SetValue(context.Background(), product.ID, &dto.SetAttributeValueRequest{
		AttributeID: material.ID,
		OptionIDs:   []uuid.UUID{cotton.ID, linen.ID},
	})
	require.NoError(t, err)

	reloaded, err := env.Products.GetByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Len(t, reloaded.AttributeValues, 2)

	// Setting an already-present option is idempotent.
	err = env.Attributes.SetValue(context.Background(), product.ID, &dto.SetAttributeValueRequest{
		AttributeID: material.ID,
		OptionID:    &cotton.ID,
	})
	require.NoError(t, err)

	reloaded, err = env.Products.GetByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Len(t, reloaded.AttributeValues, 2)
}

func TestSchemaOrdering(t *testing.T) {
	env := newTestEnv(t)
	productType := env.createProductType(t, "Clothing")

	groupB, err := env.Attributes.CreateGroup(context.Background(), &dto.CreateAttributeGroupRequest{
		Name: "B Group", ProductTypeID: productType.ID, SortOrder: 2,
	})
	require.NoError(t, err)
	groupA, err := env.Attributes.CreateGroup(context.Background(), &dto.CreateAttributeGroupRequest{
		Name: "A Group", ProductTypeID: productType.ID, SortOrder: 1,
	})
	require.NoError(t, err)

	_, err = env.Attributes.CreateAttribute(context.Background(), &dto.CreateAttributeRequest{
		Name: "Zeta", Type: "text", AttributeGroupID: groupA.ID, SortOrder: 1,
	})
	require.NoError(t, err)
	_, err = env.Attributes.CreateAttribute(context.Background(), &dto.CreateAttributeRequest{
		Name: "Alpha", Type: "text", AttributeGroupID: groupA.ID, SortOrder: 1,
	})
	require.NoError(t, err)

	groups, err := env.ProductTypes.ResolveSchema(context.Background(), productType.ID)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, groupA.ID, groups[0].ID)
	assert.Equal(t, groupB.ID, groups[1].ID)

	require.Len(t, groups[0].Attributes, 2)
	// Equal sort order falls back to name.
	assert.Equal(t, "Alpha", groups[0].Attributes[0].Name)
	assert.Equal(t, "Zeta", groups[0].Attributes[1].Name)
}
