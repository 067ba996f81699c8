package set

import (
	"github.com/cohenlint/ordtree/avltree"
	ordcmp "github.com/cohenlint/ordtree/cmp"
)

// IndexedSet is an ordered set that additionally supports rank
// queries: lookup and removal by position, and position lookup by
// element.
type IndexedSet[K any] struct {
	base[K, struct{}]
}

// NewIndexed constructs an empty IndexedSet ordered by cmp.
func NewIndexed[K any](cmp ordcmp.Comparator[K]) *IndexedSet[K] {
	return &IndexedSet[K]{base[K, struct{}]{tree: avltree.New[K, struct{}, struct{}](cmp, false, false, nil, nil)}}
}

// NewIndexedOrdered constructs an empty IndexedSet over an Ordered
// element type, using the natural comparator.
func NewIndexedOrdered[K ordcmp.Ordered]() *IndexedSet[K] {
	return NewIndexed[K](ordcmp.Default[K]())
}

// At returns the element at the given 0-based rank. It panics if
// index is out of range.
func (s *IndexedSet[K]) At(index int) K {
	k, _ := s.tree.At(index)
	return k
}

// PopAt removes and returns the element at the given 0-based rank. It
// panics if index is out of range.
func (s *IndexedSet[K]) PopAt(index int) K {
	k, _ := s.tree.PopAt(index)
	return k
}

// Index returns the 0-based rank of key, or Size() if key is absent.
func (s *IndexedSet[K]) Index(key K) int { return s.tree.Index(key) }

// IteratorAt seeds an iterator positioned at the given 0-based rank.
func (s *IndexedSet[K]) IteratorAt(index int) *avltree.Iterator[K, struct{}, struct{}] {
	return s.tree.IteratorAt(index)
}

// FloorWithIndex returns the largest element <= key together with its
// rank, in one descent.
func (s *IndexedSet[K]) FloorWithIndex(key K) (K, int, bool) {
	k, _, idx, ok := s.tree.FindLeWithIndex(key)
	return k, idx, ok
}

// CeilingWithIndex returns the smallest element >= key together with
// its rank, in one descent.
func (s *IndexedSet[K]) CeilingWithIndex(key K) (K, int, bool) {
	k, _, idx, ok := s.tree.FindGeWithIndex(key)
	return k, idx, ok
}

// HigherWithIndex returns the smallest element > key together with
// its rank, in one descent.
func (s *IndexedSet[K]) HigherWithIndex(key K) (K, int, bool) {
	k, _, idx, ok := s.tree.FindGtWithIndex(key)
	return k, idx, ok
}

// LowerWithIndex returns the largest element < key together with its
// rank, in one descent.
func (s *IndexedSet[K]) LowerWithIndex(key K) (K, int, bool) {
	k, _, idx, ok := s.tree.FindLtWithIndex(key)
	return k, idx, ok
}

// Clone returns a deep, independent copy of the set.
func (s *IndexedSet[K]) Clone() *IndexedSet[K] {
	return &IndexedSet[K]{base[K, struct{}]{tree: s.tree.Clone()}}
}
