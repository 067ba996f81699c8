package multiset

import (
	"github.com/cohenlint/ordtree/avltree"
	ordcmp "github.com/cohenlint/ordtree/cmp"
)

// IndexedMultiSet is an ordered multiset that additionally supports
// rank queries: lookup and removal by position, and position lookup
// by key (first/last occurrence).
type IndexedMultiSet[K any] struct {
	base[K]
}

// NewIndexed constructs an empty IndexedMultiSet ordered by cmp.
func NewIndexed[K any](cmp ordcmp.Comparator[K]) *IndexedMultiSet[K] {
	return &IndexedMultiSet[K]{base[K]{tree: avltree.New[K, struct{}, struct{}](cmp, true, false, nil, nil)}}
}

// NewIndexedOrdered constructs an empty IndexedMultiSet over an
// Ordered element type, using the natural comparator.
func NewIndexedOrdered[K ordcmp.Ordered]() *IndexedMultiSet[K] {
	return NewIndexed[K](ordcmp.Default[K]())
}

// At returns the element at the given 0-based rank. It panics if
// index is out of range.
func (s *IndexedMultiSet[K]) At(index int) K {
	k, _ := s.tree.At(index)
	return k
}

// PopAt removes and returns the element at the given 0-based rank. It
// panics if index is out of range.
func (s *IndexedMultiSet[K]) PopAt(index int) K {
	k, _ := s.tree.PopAt(index)
	return k
}

// Index returns the rank of the first occurrence of key, or Size() if
// key is absent.
func (s *IndexedMultiSet[K]) Index(key K) int { return s.tree.Index(key) }

// LastIndex returns the rank of the last occurrence of key, or
// Size() if key is absent.
func (s *IndexedMultiSet[K]) LastIndex(key K) int { return s.tree.LastIndex(key) }

// IteratorAt seeds an iterator positioned at the given 0-based rank.
func (s *IndexedMultiSet[K]) IteratorAt(index int) *avltree.Iterator[K, struct{}, struct{}] {
	return s.tree.IteratorAt(index)
}

// FloorWithIndex returns the largest element <= key together with its
// rank, in one descent.
func (s *IndexedMultiSet[K]) FloorWithIndex(key K) (K, int, bool) {
	k, _, idx, ok := s.tree.FindLeWithIndex(key)
	return k, idx, ok
}

// CeilingWithIndex returns the smallest element >= key together with
// its rank, in one descent.
func (s *IndexedMultiSet[K]) CeilingWithIndex(key K) (K, int, bool) {
	k, _, idx, ok := s.tree.FindGeWithIndex(key)
	return k, idx, ok
}

// HigherWithIndex returns the smallest element > key together with
// its rank, in one descent.
func (s *IndexedMultiSet[K]) HigherWithIndex(key K) (K, int, bool) {
	k, _, idx, ok := s.tree.FindGtWithIndex(key)
	return k, idx, ok
}

// LowerWithIndex returns the largest element < key together with its
// rank, in one descent.
func (s *IndexedMultiSet[K]) LowerWithIndex(key K) (K, int, bool) {
	k, _, idx, ok := s.tree.FindLtWithIndex(key)
	return k, idx, ok
}

// Clone returns a deep, independent copy of the multiset.
func (s *IndexedMultiSet[K]) Clone() *IndexedMultiSet[K] {
	return &IndexedMultiSet[K]{base[K]{tree: s.tree.Clone()}}
}
