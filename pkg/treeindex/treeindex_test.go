package treeindex

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(slug string, parent *uuid.UUID, order int) Node {
	return Node{
		ID:        uuid.New(),
		Slug:      slug,
		Name:      slug,
		ParentID:  parent,
		SortOrder: order,
	}
}

func TestSubtreeExactMembers(t *testing.T) {
	clothing := node("clothing", nil, 0)
	men := node("men", &clothing.ID, 0)
	women := node("women", &clothing.ID, 1)
	shirts := node("men-shirts", &men.ID, 0)
	shoes := node("shoes", nil, 1)

	ix := Build([]Node{clothing, men, women, shirts, shoes})

	ids, ok := ix.Subtree("clothing")
	require.True(t, ok)
	assert.ElementsMatch(t,
		[]uuid.UUID{clothing.ID, men.ID, women.ID, shirts.ID}, ids)

	ids, ok = ix.Subtree("men")
	require.True(t, ok)
	assert.ElementsMatch(t, []uuid.UUID{men.ID, shirts.ID}, ids)

	ids, ok = ix.Subtree("shoes")
	require.True(t, ok)
	assert.Equal(t, []uuid.UUID{shoes.ID}, ids)

	_, ok = ix.Subtree("unknown")
	assert.False(t, ok)
}

func TestSubtreeDepthFirstSiblingOrder(t *testing.T) {
	root := node("root", nil, 0)
	b := node("b", &root.ID, 2)
	a := node("a", &root.ID, 1)
	// Same sort order resolves by name.
	tieB := node("tie-b", &root.ID, 5)
	tieA := node("tie-a", &root.ID, 5)

	ix := Build([]Node{root, b, a, tieB, tieA})

	ids, ok := ix.Subtree("root")
	require.True(t, ok)
	assert.Equal(t, []uuid.UUID{root.ID, a.ID, b.ID, tieA.ID, tieB.ID}, ids)
}

func TestIsDescendant(t *testing.T) {
	root := node("root", nil, 0)
	child := node("child", &root.ID, 0)
	grandchild := node("grandchild", &child.ID, 0)
	sibling := node("sibling", nil, 1)

	ix := Build([]Node{root, child, grandchild, sibling})

	assert.True(t, ix.IsDescendant(child.ID, root.ID))
	assert.True(t, ix.IsDescendant(grandchild.ID, root.ID))
	assert.True(t, ix.IsDescendant(grandchild.ID, child.ID))

	assert.False(t, ix.IsDescendant(root.ID, child.ID))
	assert.False(t, ix.IsDescendant(root.ID, root.ID))
	assert.False(t, ix.IsDescendant(sibling.ID, root.ID))
	assert.False(t, ix.IsDescendant(uuid.New(), root.ID))
}

func TestOrphanBecomesRoot(t *testing.T) {
	missing := uuid.New()
	orphan := node("orphan", &missing, 0)
	child := node("orphan-child", &orphan.ID, 0)

	ix := Build([]Node{orphan, child})

	assert.Equal(t, 2, ix.Len())
	ids, ok := ix.Subtree("orphan")
	require.True(t, ok)
	assert.ElementsMatch(t, []uuid.UUID{orphan.ID, child.ID}, ids)
}

func TestCorruptParentChainDoesNotLoop(t *testing.T) {
	a := Node{ID: uuid.New(), Slug: "a", Name: "a"}
	b := Node{ID: uuid.New(), Slug: "b", Name: "b"}
	a.ParentID = &b.ID
	b.ParentID = &a.ID

	// Both nodes have a parent that exists, so neither is a root and the
	// cycle is unreachable from any root. The build must still terminate.
	ix := Build([]Node{a, b})
	assert.Equal(t, 0, ix.Len())
}

func TestStoreSwap(t *testing.T) {
	store := NewStore()
	assert.Equal(t, 0, store.Current().Len())

	root := node("root", nil, 0)
	store.Swap(Build([]Node{root}))

	assert.Equal(t, 1, store.Current().Len())
	assert.True(t, store.Current().Contains(root.ID))
}

func TestEmptyBuild(t *testing.T) {
	ix := Build(nil)
	assert.Equal(t, 0, ix.Len())
	_, ok := ix.Subtree("anything")
	assert.False(t, ok)
	assert.False(t, ix.Contains(uuid.New()))
}
