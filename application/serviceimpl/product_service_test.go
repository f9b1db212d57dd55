package serviceimpl

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-service/domain/dto"
	"catalog-service/domain/models"
	"catalog-service/pkg/apperrors"
)

type catalogFixture struct {
	env      *testEnv
	category *models.Category
	size     *models.ProductAttribute
	color    *models.ProductAttribute
	material *models.ProductAttribute
	options  map[string]*models.AttributeOption // "size:m", "color:red", ...
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	env := newTestEnv(t)

	productType := env.createProductType(t, "Clothing")
	group := env.createGroup(t, productType.ID, "Physical")
	category := env.createCategory(t, "T-Shirts", nil)

	size := env.createAttribute(t, group.ID, "Size", "choice")
	color := env.createAttribute(t, group.ID, "Color", "color")
	material := env.createAttribute(t, group.ID, "Material", "multiple")

	f := &catalogFixture{
		env:      env,
		category: category,
		size:     size,
		color:    color,
		material: material,
		options:  make(map[string]*models.AttributeOption),
	}
	for _, v := range []string{"s", "m", "l"} {
		f.options["size:"+v] = env.createOption(t, size.ID, v)
	}
	for _, v := range []string{"red", "blue"} {
		f.options["color:"+v] = env.createOption(t, color.ID, v)
	}
	for _, v := range []string{"cotton", "linen"} {
		f.options["material:"+v] = env.createOption(t, material.ID, v)
	}
	return f
}

func (f *catalogFixture) createProduct(t *testing.T, name string, price string, stock int, attrs map[string]dto.AttributeAssignmentInput) *models.Product {
	t.Helper()
	product, err := f.env.Products.Create(context.Background(), &dto.CreateProductRequest{
		Name:       name,
		CategoryID: f.category.ID,
		Price:      decimal.RequireFromString(price),
		Stock:      stock,
		Attributes: attrs,
	})
	require.NoError(t, err)
	return product
}

func optRef(f *catalogFixture, key string) *uuid.UUID {
	id := f.options[key].ID
	return &id
}

func TestProductAutoSlug(t *testing.T) {
	f := newCatalogFixture(t)

	product := f.createProduct(t, "Red T-Shirt", "19.99", 5, nil)
	assert.Equal(t, "red-t-shirt", product.Slug)

	_, err := f.env.Products.Create(context.Background(), &dto.CreateProductRequest{
		Name:       "Red T-Shirt",
		CategoryID: f.category.ID,
		Price:      decimal.RequireFromString("9.99"),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestListComposesAttributeFiltersWithAnd(t *testing.T) {
	f := newCatalogFixture(t)

	match := f.createProduct(t, "Shirt A", "10.00", 3, map[string]dto.AttributeAssignmentInput{
		"size":  {OptionID: optRef(f, "size:m")},
		"color": {OptionID: optRef(f, "color:red")},
	})
	f.createProduct(t, "Shirt B", "11.00", 3, map[string]dto.AttributeAssignmentInput{
		"size":  {OptionID: optRef(f, "size:m")},
		"color": {OptionID: optRef(f, "color:blue")},
	})
	f.createProduct(t, "Shirt C", "12.00", 3, map[string]dto.AttributeAssignmentInput{
		"size":  {OptionID: optRef(f, "size:l")},
		"color": {OptionID: optRef(f, "color:red")},
	})

	result, err := f.env.Products.List(context.Background(), &dto.ListProductsRequest{
		Attributes: map[string]string{"size": "m", "color": "red"},
	})
	require.NoError(t, err)
	require.Len(t, result.Products, 1)
	assert.Equal(t, match.ID, result.Products[0].ID)
	assert.Equal(t, int64(1), result.Total)
}

func TestListDeduplicatesMultiValuedMatches(t *testing.T) {
	f := newCatalogFixture(t)

	// Two values on a multi-valued attribute plus a size; the joins must
	// not surface the product more than once.
	product := f.createProduct(t, "Blend Shirt", "15.00", 2, map[string]dto.AttributeAssignmentInput{
		"size":     {OptionID: optRef(f, "size:s")},
		"material": {OptionIDs: []uuid.UUID{f.options["material:cotton"].ID, f.options["material:linen"].ID}},
	})

	result, err := f.env.Products.List(context.Background(), &dto.ListProductsRequest{
		Attributes: map[string]string{"material": "cotton", "size": "s"},
	})
	require.NoError(t, err)
	require.Len(t, result.Products, 1)
	assert.Equal(t, product.ID, result.Products[0].ID)
	assert.Equal(t, int64(1), result.Total)
}

func TestListPagination(t *testing.T) {
	f := newCatalogFixture(t)

	for i := 1; i <= 25; i++ {
		f.createProduct(t, fmt.Sprintf("Product %02d", i), "10.00", 1, nil)
	}

	page1, err := f.env.Products.List(context.Background(), &dto.ListProductsRequest{})
	require.NoError(t, err)
	assert.Len(t, page1.Products, 12)
	assert.Equal(t, int64(25), page1.Total)
	assert.Equal(t, 1, page1.Page)
	assert.Equal(t, 12, page1.PageSize)

	page3, err := f.env.Products.List(context.Background(), &dto.ListProductsRequest{Page: 3})
	require.NoError(t, err)
	assert.Len(t, page3.Products, 1)

	// Past the end is an empty page, not an error.
	page4, err := f.env.Products.List(context.Background(), &dto.ListProductsRequest{Page: 4})
	require.NoError(t, err)
	assert.Empty(t, page4.Products)
	assert.Equal(t, int64(25), page4.Total)
}

func TestListPageSizeCap(t *testing.T) {
	f := newCatalogFixture(t)
	f.createProduct(t, "Solo", "10.00", 1, nil)

	result, err := f.env.Products.List(context.Background(), &dto.ListProductsRequest{PageSize: 5000})
	require.NoError(t, err)
	assert.Equal(t, 100, result.PageSize)
}

func TestListPriceBoundsInclusive(t *testing.T) {
	f := newCatalogFixture(t)

	f.createProduct(t, "Cheap", "10.00", 1, nil)
	f.createProduct(t, "Mid", "20.00", 1, nil)
	f.createProduct(t, "Pricey", "30.00", 1, nil)

	result, err := f.env.Products.List(context.Background(), &dto.ListProductsRequest{
		MinPrice: "10.00",
		MaxPrice: "20.00",
	})
	require.NoError(t, err)
	require.Len(t, result.Products, 2)

	names := []string{result.Products[0].Name, result.Products[1].Name}
	assert.ElementsMatch(t, []string{"Cheap", "Mid"}, names)
}

func TestListInvalidPriceRejected(t *testing.T) {
	f := newCatalogFixture(t)

	_, err := f.env.Products.List(context.Background(), &dto.ListProductsRequest{MinPrice: "abc"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "min_price", apperrors.FieldOf(err))
}

func TestListInStockNarrows(t *testing.T) {
	f := newCatalogFixture(t)

	f.createProduct(t, "Stocked", "10.00", 4, nil)
	f.createProduct(t, "Sold Out", "10.00", 0, nil)

	all, err := f.env.Products.List(context.Background(), &dto.ListProductsRequest{})
	require.NoError(t, err)
	inStock, err := f.env.Products.List(context.Background(), &dto.ListProductsRequest{InStock: true})
	require.NoError(t, err)

	assert.Equal(t, int64(2), all.Total)
	require.Len(t, inStock.Products, 1)
	assert.Equal(t, "Stocked", inStock.Products[0].Name)

	// Dropping the flag yields a superset.
	for _, p := range inStock.Products {
		found := false
		for _, q := range all.Products {
			if q.ID == p.ID {
				found = true
			}
		}
		assert.True(t, found)
	}
}

func TestListCategoryCoversSubtree(t *testing.T) {
	f := newCatalogFixture(t)

	child := f.env.createCategory(t, "Graphic Tees", &f.category.ID)

	inChild, err := f.env.Products.Create(context.Background(), &dto.CreateProductRequest{
		Name:       "Nested Product",
		CategoryID: child.ID,
		Price:      decimal.RequireFromString("5.00"),
	})
	require.NoError(t, err)
	f.createProduct(t, "Top Level Product", "6.00", 1, nil)

	result, err := f.env.Products.List(context.Background(), &dto.ListProductsRequest{
		Category: f.category.Slug,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)

	childOnly, err := f.env.Products.List(context.Background(), &dto.ListProductsRequest{
		Category: child.Slug,
	})
	require.NoError(t, err)
	require.Len(t, childOnly.Products, 1)
	assert.Equal(t, inChild.ID, childOnly.Products[0].ID)
}

func TestListUnknownCategoryIsEmpty(t *testing.T) {
	f := newCatalogFixture(t)
	f.createProduct(t, "Anything", "10.00", 1, nil)

	result, err := f.env.Products.List(context.Background(), &dto.ListProductsRequest{
		Category: "does-not-exist",
	})
	require.NoError(t, err)
	assert.Empty(t, result.Products)
	assert.Equal(t, int64(0), result.Total)
}

func TestListOrderingByPrice(t *testing.T) {
	f := newCatalogFixture(t)

	f.createProduct(t, "B Mid", "20.00", 1, nil)
	f.createProduct(t, "C High", "30.00", 1, nil)
	f.createProduct(t, "A Low", "10.00", 1, nil)

	asc, err := f.env.Products.List(context.Background(), &dto.ListProductsRequest{Ordering: "price"})
	require.NoError(t, err)
	require.Len(t, asc.Products, 3)
	assert.Equal(t, "A Low", asc.Products[0].Name)
	assert.Equal(t, "C High", asc.Products[2].Name)

	desc, err := f.env.Products.List(context.Background(), &dto.ListProductsRequest{Ordering: "-price"})
	require.NoError(t, err)
	assert.Equal(t, "C High", desc.Products[0].Name)

	byName, err := f.env.Products.List(context.Background(), &dto.ListProductsRequest{Ordering: "name"})
	require.NoError(t, err)
	assert.Equal(t, "A Low", byName.Products[0].Name)
	assert.Equal(t, "C High", byName.Products[2].Name)
}

func TestListExcludesInactive(t *testing.T) {
	f := newCatalogFixture(t)

	inactive := false
	_, err := f.env.Products.Create(context.Background(), &dto.CreateProductRequest{
		Name:       "Hidden",
		CategoryID: f.category.ID,
		Price:      decimal.RequireFromString("10.00"),
		IsActive:   &inactive,
	})
	require.NoError(t, err)
	f.createProduct(t, "Visible", "10.00", 1, nil)

	result, err := f.env.Products.List(context.Background(), &dto.ListProductsRequest{})
	require.NoError(t, err)
	require.Len(t, result.Products, 1)
	assert.Equal(t, "Visible", result.Products[0].Name)
}

func TestCreateInactivePersistsFalse(t *testing.T) {
	f := newCatalogFixture(t)

	inactive := false
	product, err := f.env.Products.Create(context.Background(), &dto.CreateProductRequest{
		Name:       "Draft",
		CategoryID: f.category.ID,
		Price:      decimal.RequireFromString("10.00"),
		IsActive:   &inactive,
	})
	require.NoError(t, err)

	// The flag must survive the insert as written, not revert to active.
	reloaded, err := f.env.Products.GetByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsActive)
}

func TestListHasImagesFilter(t *testing.T) {
	f := newCatalogFixture(t)

	illustrated, err := f.env.Products.Create(context.Background(), &dto.CreateProductRequest{
		Name:       "Illustrated",
		CategoryID: f.category.ID,
		Price:      decimal.RequireFromString("10.00"),
		Images: []dto.ProductImageInput{
			{Image: "products/illustrated-front.jpg"},
			{Image: "products/illustrated-back.jpg", SortOrder: 1},
		},
	})
	require.NoError(t, err)
	f.createProduct(t, "Bare", "10.00", 1, nil)

	result, err := f.env.Products.List(context.Background(), &dto.ListProductsRequest{
		HasImages: true,
	})
	require.NoError(t, err)
	require.Len(t, result.Products, 1)
	assert.Equal(t, illustrated.ID, result.Products[0].ID)

	// Multiple images still count the product once.
	assert.Equal(t, int64(1), result.Total)

	result, err = f.env.Products.List(context.Background(), &dto.ListProductsRequest{})
	require.NoError(t, err)
	assert.Len(t, result.Products, 2)
}

func TestCreateRejectsMismatchedOption(t *testing.T) {
	f := newCatalogFixture(t)

	// A color option assigned under the size code.
	_, err := f.env.Products.Create(context.Background(), &dto.CreateProductRequest{
		Name:       "Broken Shirt",
		CategoryID: f.category.ID,
		Price:      decimal.RequireFromString("10.00"),
		Attributes: map[string]dto.AttributeAssignmentInput{
			"size": {OptionID: optRef(f, "color:red")},
		},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	// Nothing was written.
	_, err = f.env.Products.GetBySlug(context.Background(), "broken-shirt")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCreateRejectsUnknownAttributeCode(t *testing.T) {
	f := newCatalogFixture(t)

	_, err := f.env.Products.Create(context.Background(), &dto.CreateProductRequest{
		Name:       "Typo Shirt",
		CategoryID: f.category.ID,
		Price:      decimal.RequireFromString("10.00"),
		Attributes: map[string]dto.AttributeAssignmentInput{
			"siez": {OptionID: optRef(f, "size:m")},
		},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateReplacesAttributeAssignments(t *testing.T) {
	f := newCatalogFixture(t)

	product := f.createProduct(t, "Mutable Shirt", "10.00", 1, map[string]dto.AttributeAssignmentInput{
		"size":  {OptionID: optRef(f, "size:s")},
		"color": {OptionID: optRef(f, "color:red")},
	})

	attrs := map[string]dto.AttributeAssignmentInput{
		"size": {OptionID: optRef(f, "size:l")},
	}
	updated, err := f.env.Products.Update(context.Background(), product.ID, &dto.UpdateProductRequest{
		Attributes: &attrs,
	})
	require.NoError(t, err)

	require.Len(t, updated.AttributeValues, 1)
	require.NotNil(t, updated.AttributeValues[0].Option)
	assert.Equal(t, "l", updated.AttributeValues[0].Option.Value)
}

func TestUpdateWithoutAttributesLeavesThem(t *testing.T) {
	f := newCatalogFixture(t)

	product := f.createProduct(t, "Stable Shirt", "10.00", 1, map[string]dto.AttributeAssignmentInput{
		"size": {OptionID: optRef(f, "size:m")},
	})

	newPrice := decimal.RequireFromString("12.50")
	updated, err := f.env.Products.Update(context.Background(), product.ID, &dto.UpdateProductRequest{
		Price: &newPrice,
	})
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(newPrice))
	require.Len(t, updated.AttributeValues, 1)
}

func TestProductResponseShape(t *testing.T) {
	f := newCatalogFixture(t)

	raw := "160"
	f.env.createAttribute(t, f.size.AttributeGroupID, "Density", "number")

	product := f.createProduct(t, "Shaped Shirt", "10.00", 1, map[string]dto.AttributeAssignmentInput{
		"size":    {OptionID: optRef(f, "size:m")},
		"density": {RawValue: &raw},
	})

	resp := dto.ProductToResponse(product)
	require.NotNil(t, resp)
	require.NotNil(t, resp.Category)
	assert.Equal(t, f.category.Slug, resp.Category.Slug)

	sizeView, ok := resp.Attributes["Size"]
	require.True(t, ok)
	assert.Equal(t, "m", sizeView.Value)
	assert.Equal(t, f.options["size:m"].ID, sizeView.ID)

	densityView, ok := resp.Attributes["Density"]
	require.True(t, ok)
	assert.Equal(t, "160", densityView.Value)
	assert.Equal(t, uuid.Nil, densityView.ID)
}
