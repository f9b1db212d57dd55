// Package treeindex maintains a nested-interval index over the category
// forest. Each node is assigned a [lft, rght) range during a depth-first walk,
// so descendant checks are interval containment and a whole subtree occupies a
// contiguous run of the lft-ordered entry list. Lookups never touch the
// database; the index is rebuilt from the category table on structural change
// and swapped in atomically.
package treeindex

import (
	"sort"
	"sync/atomic"

	"github.com/google/uuid"
)

// Node is the slice of a category the index cares about.
type Node struct {
	ID        uuid.UUID
	Slug      string
	Name      string
	ParentID  *uuid.UUID
	SortOrder int
}

type entry struct {
	id   uuid.UUID
	slug string
	lft  int
	rght int
}

// Index is an immutable snapshot. Entries are stored in lft order, which is
// the depth-first visiting order, so a subtree is one contiguous slice.
type Index struct {
	entries []entry
	byID    map[uuid.UUID]int
	bySlug  map[string]int
}

// Build walks the forest rooted at nodes with nil (or unknown) parents,
// visiting siblings in (sort_order, name) order. A node is visited at most
// once, so a corrupt parent chain cannot loop the walk.
func Build(nodes []Node) *Index {
	children := make(map[uuid.UUID][]Node)
	byID := make(map[uuid.UUID]Node, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}

	var roots []Node
	for _, n := range nodes {
		if n.ParentID == nil {
			roots = append(roots, n)
			continue
		}
		if _, ok := byID[*n.ParentID]; !ok {
			// Orphan: parent row is gone, surface it as a root.
			roots = append(roots, n)
			continue
		}
		children[*n.ParentID] = append(children[*n.ParentID], n)
	}

	bySiblingOrder := func(ns []Node) {
		sort.Slice(ns, func(i, j int) bool {
			if ns[i].SortOrder != ns[j].SortOrder {
				return ns[i].SortOrder < ns[j].SortOrder
			}
			return ns[i].Name < ns[j].Name
		})
	}
	bySiblingOrder(roots)
	for _, ns := range children {
		bySiblingOrder(ns)
	}

	ix := &Index{
		entries: make([]entry, 0, len(nodes)),
		byID:    make(map[uuid.UUID]int, len(nodes)),
		bySlug:  make(map[string]int, len(nodes)),
	}

	visited := make(map[uuid.UUID]bool, len(nodes))
	counter := 0

	var walk func(n Node)
	walk = func(n Node) {
		if visited[n.ID] {
			return
		}
		visited[n.ID] = true

		pos := len(ix.entries)
		ix.entries = append(ix.entries, entry{id: n.ID, slug: n.Slug, lft: counter})
		counter++
		ix.byID[n.ID] = pos
		ix.bySlug[n.Slug] = pos

		for _, child := range children[n.ID] {
			walk(child)
		}

		ix.entries[pos].rght = counter
		counter++
	}

	for _, root := range roots {
		walk(root)
	}

	return ix
}

func (ix *Index) Len() int {
	return len(ix.entries)
}

// Subtree returns the category plus all transitive descendants, in
// depth-first order. The boolean reports whether the slug is known.
func (ix *Index) Subtree(slug string) ([]uuid.UUID, bool) {
	pos, ok := ix.bySlug[slug]
	if !ok {
		return nil, false
	}
	return ix.subtreeAt(pos), true
}

// SubtreeByID is Subtree keyed by category ID.
func (ix *Index) SubtreeByID(id uuid.UUID) ([]uuid.UUID, bool) {
	pos, ok := ix.byID[id]
	if !ok {
		return nil, false
	}
	return ix.subtreeAt(pos), true
}

func (ix *Index) subtreeAt(pos int) []uuid.UUID {
	root := ix.entries[pos]
	ids := []uuid.UUID{root.id}
	for i := pos + 1; i < len(ix.entries) && ix.entries[i].lft < root.rght; i++ {
		ids = append(ids, ix.entries[i].id)
	}
	return ids
}

// IsDescendant reports whether node lies strictly inside ancestor's interval.
func (ix *Index) IsDescendant(nodeID, ancestorID uuid.UUID) bool {
	np, ok := ix.byID[nodeID]
	if !ok {
		return false
	}
	ap, ok := ix.byID[ancestorID]
	if !ok {
		return false
	}
	node, anc := ix.entries[np], ix.entries[ap]
	return node.lft > anc.lft && node.rght < anc.rght
}

// Contains reports whether the category is indexed.
func (ix *Index) Contains(id uuid.UUID) bool {
	_, ok := ix.byID[id]
	return ok
}

// Store publishes index snapshots. Readers always observe a complete index,
// either fully-old or fully-new.
type Store struct {
	current atomic.Pointer[Index]
}

func NewStore() *Store {
	s := &Store{}
	s.current.Store(Build(nil))
	return s
}

func (s *Store) Current() *Index {
	return s.current.Load()
}

func (s *Store) Swap(ix *Index) {
	s.current.Store(ix)
}
