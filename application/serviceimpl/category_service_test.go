package serviceimpl

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-service/domain/dto"
	"catalog-service/pkg/apperrors"
)

func TestCategoryAutoSlugAndConflict(t *testing.T) {
	env := newTestEnv(t)

	category := env.createCategory(t, "Winter Jackets", nil)
	assert.Equal(t, "winter-jackets", category.Slug)

	_, err := env.Categories.Create(context.Background(), &dto.CreateCategoryRequest{
		Name: "Winter Jackets",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestCategorySiblingSortOrderAssigned(t *testing.T) {
	env := newTestEnv(t)

	first := env.createCategory(t, "First", nil)
	second := env.createCategory(t, "Second", nil)
	child := env.createCategory(t, "Child", &first.ID)

	assert.Less(t, first.SortOrder, second.SortOrder)
	// Children start their own sequence.
	assert.Equal(t, 0, child.SortOrder)
}

func TestCategoryMoveUnderDescendantRejected(t *testing.T) {
	env := newTestEnv(t)

	root := env.createCategory(t, "Root", nil)
	child := env.createCategory(t, "Child", &root.ID)
	grandchild := env.createCategory(t, "Grandchild", &child.ID)

	_, err := env.Categories.Update(context.Background(), root.ID, &dto.UpdateCategoryRequest{
		ParentID: &grandchild.ID,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "parent_id", apperrors.FieldOf(err))

	_, err = env.Categories.Update(context.Background(), root.ID, &dto.UpdateCategoryRequest{
		ParentID: &root.ID,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCategoryMoveToValidParent(t *testing.T) {
	env := newTestEnv(t)

	a := env.createCategory(t, "A", nil)
	b := env.createCategory(t, "B", nil)

	moved, err := env.Categories.Update(context.Background(), b.ID, &dto.UpdateCategoryRequest{
		ParentID: &a.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, moved.ParentID)
	assert.Equal(t, a.ID, *moved.ParentID)

	ids, err := env.Categories.Subtree(context.Background(), a.Slug)
	require.NoError(t, err)
	assert.Len(t, ids, 2)
}

func TestCategoryDeleteCascadesSubtreeAndProducts(t *testing.T) {
	env := newTestEnv(t)

	root := env.createCategory(t, "Outerwear", nil)
	child := env.createCategory(t, "Parkas", &root.ID)

	product, err := env.Products.Create(context.Background(), &dto.CreateProductRequest{
		Name:       "Arctic Parka",
		CategoryID: child.ID,
		Price:      decimal.RequireFromString("199.00"),
	})
	require.NoError(t, err)

	require.NoError(t, env.Categories.Delete(context.Background(), root.ID))

	_, err = env.Categories.GetByID(context.Background(), root.ID)
	assert.True(t, apperrors.IsNotFound(err))
	_, err = env.Categories.GetByID(context.Background(), child.ID)
	assert.True(t, apperrors.IsNotFound(err))
	_, err = env.Products.GetByID(context.Background(), product.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCategoryReorder(t *testing.T) {
	env := newTestEnv(t)

	a := env.createCategory(t, "Alpha", nil)
	b := env.createCategory(t, "Beta", nil)

	err := env.Categories.Reorder(context.Background(), &dto.ReorderCategoriesRequest{
		Categories: []dto.CategoryOrderItem{
			{ID: b.ID, SortOrder: 0},
			{ID: a.ID, SortOrder: 1},
		},
	})
	require.NoError(t, err)

	categories, err := env.Categories.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, b.ID, categories[0].ID)
	assert.Equal(t, a.ID, categories[1].ID)
}

func TestCategoryCreateInactivePersistsFalse(t *testing.T) {
	env := newTestEnv(t)

	inactive := false
	hidden, err := env.Categories.Create(context.Background(), &dto.CreateCategoryRequest{
		Name:     "Archive",
		IsActive: &inactive,
	})
	require.NoError(t, err)
	env.createCategory(t, "Current", nil)

	reloaded, err := env.Categories.GetByID(context.Background(), hidden.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsActive)

	active, err := env.Categories.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Current", active[0].Name)

	roots, err := env.Categories.ListTree(context.Background())
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, "Current", roots[0].Name)
}

func TestCategoryReorderRejectsParentSwapCycle(t *testing.T) {
	env := newTestEnv(t)

	a := env.createCategory(t, "A", nil)
	b := env.createCategory(t, "B", nil)

	// Each move passes in isolation; together they close a loop.
	err := env.Categories.Reorder(context.Background(), &dto.ReorderCategoriesRequest{
		Categories: []dto.CategoryOrderItem{
			{ID: a.ID, ParentID: &b.ID},
			{ID: b.ID, ParentID: &a.ID},
		},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "parent_id", apperrors.FieldOf(err))

	// Nothing was committed; both stay roots and stay resolvable.
	reloaded, err := env.Categories.GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.ParentID)
	reloaded, err = env.Categories.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.ParentID)

	ids, err := env.Categories.Subtree(context.Background(), a.Slug)
	require.NoError(t, err)
	assert.Len(t, ids, 1)
}

func TestCategoryTreeNestsBeyondThreeLevels(t *testing.T) {
	env := newTestEnv(t)

	root := env.createCategory(t, "Apparel", nil)
	l2 := env.createCategory(t, "Menswear", &root.ID)
	l3 := env.createCategory(t, "Shirts", &l2.ID)
	l4 := env.createCategory(t, "Dress Shirts", &l3.ID)

	roots, err := env.Categories.ListTree(context.Background())
	require.NoError(t, err)
	require.Len(t, roots, 1)

	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, l2.ID, roots[0].Children[0].ID)
	require.Len(t, roots[0].Children[0].Children, 1)
	assert.Equal(t, l3.ID, roots[0].Children[0].Children[0].ID)
	require.Len(t, roots[0].Children[0].Children[0].Children, 1)
	assert.Equal(t, l4.ID, roots[0].Children[0].Children[0].Children[0].ID)
}

func TestCategoryProductCounts(t *testing.T) {
	env := newTestEnv(t)

	withProducts := env.createCategory(t, "Busy", nil)
	empty := env.createCategory(t, "Quiet", nil)

	for _, name := range []string{"One", "Two"} {
		_, err := env.Products.Create(context.Background(), &dto.CreateProductRequest{
			Name:       name,
			CategoryID: withProducts.ID,
			Price:      decimal.RequireFromString("1.00"),
		})
		require.NoError(t, err)
	}

	counts, err := env.Categories.GetProductCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[withProducts.ID])
	assert.Zero(t, counts[empty.ID])
}

func TestCategorySubtreeUnknownSlug(t *testing.T) {
	env := newTestEnv(t)
	env.createCategory(t, "Known", nil)

	_, err := env.Categories.Subtree(context.Background(), "unknown")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
