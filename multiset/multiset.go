// Package multiset implements an ordered multiset (a set permitting
// duplicate keys) backed by an AVL tree, with an optional constructor
// family adding rank queries.
package multiset

import (
	"fmt"
	"strings"

	"github.com/cohenlint/ordtree/avltree"
	ordcmp "github.com/cohenlint/ordtree/cmp"
	"github.com/cohenlint/ordtree/container"
)

// base holds the shared machinery both constructor families wrap.
type base[K any] struct {
	tree *avltree.Tree[K, struct{}, struct{}]
}

// Add inserts another occurrence of key.
func (s *base[K]) Add(key K) { s.tree.Put(key, struct{}{}) }

// Remove deletes one occurrence of key (an arbitrary one) and reports
// whether one was present.
func (s *base[K]) Remove(key K) bool {
	_, ok := s.tree.Remove(key)
	return ok
}

// Contains reports whether at least one occurrence of key is present.
func (s *base[K]) Contains(key K) bool { return s.tree.Contains(key) }

// Count returns the number of occurrences of key.
func (s *base[K]) Count(key K) int { return s.tree.Count(key) }

// Values returns every element in ascending order, including
// duplicates.
func (s *base[K]) Values() []K {
	values := make([]K, 0, s.tree.Len())
	for it := s.tree.Begin(); it.Valid(); it.Next() {
		values = append(values, it.Key())
	}
	return values
}

// Empty reports whether the multiset holds no elements.
func (s *base[K]) Empty() bool { return s.tree.Empty() }

// Size returns the total number of elements, counting duplicates.
func (s *base[K]) Size() int { return s.tree.Len() }

// Clear removes every element.
func (s *base[K]) Clear() { s.tree.Clear() }

// First returns the smallest element.
func (s *base[K]) First() (K, bool) {
	k, _, ok := s.tree.First()
	return k, ok
}

// Last returns the largest element.
func (s *base[K]) Last() (K, bool) {
	k, _, ok := s.tree.Last()
	return k, ok
}

// PopFirst removes and returns the smallest element.
func (s *base[K]) PopFirst() (K, bool) {
	k, _, ok := s.tree.PopFirst()
	return k, ok
}

// PopLast removes and returns the largest element.
func (s *base[K]) PopLast() (K, bool) {
	k, _, ok := s.tree.PopLast()
	return k, ok
}

// Floor returns the largest element <= key.
func (s *base[K]) Floor(key K) (K, bool) {
	k, _, ok := s.tree.FindLe(key)
	return k, ok
}

// Ceiling returns the smallest element >= key.
func (s *base[K]) Ceiling(key K) (K, bool) {
	k, _, ok := s.tree.FindGe(key)
	return k, ok
}

// Higher returns the smallest element > key.
func (s *base[K]) Higher(key K) (K, bool) {
	k, _, ok := s.tree.FindGt(key)
	return k, ok
}

// Lower returns the largest element < key.
func (s *base[K]) Lower(key K) (K, bool) {
	k, _, ok := s.tree.FindLt(key)
	return k, ok
}

// All returns a range-over-func iterator over elements in ascending
// order.
func (s *base[K]) All() func(func(K) bool) {
	return func(yield func(K) bool) {
		for it := s.tree.Begin(); it.Valid(); it.Next() {
			if !yield(it.Key()) {
				return
			}
		}
	}
}

// Backward returns a range-over-func iterator over elements in
// descending order.
func (s *base[K]) Backward() func(func(K) bool) {
	return func(yield func(K) bool) {
		for it := s.tree.RBegin(); it.Valid(); it.Prev() {
			if !yield(it.Key()) {
				return
			}
		}
	}
}

// String returns a human-readable representation of the multiset.
func (s *base[K]) String() string {
	values := s.Values()
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return "MultiSet{" + strings.Join(parts, ", ") + "}"
}

// MultiSet is a plain ordered multiset: no rank queries.
type MultiSet[K any] struct {
	base[K]
}

var _ container.Container[int] = (*MultiSet[int])(nil)

// New constructs an empty MultiSet ordered by cmp.
func New[K any](cmp ordcmp.Comparator[K]) *MultiSet[K] {
	return &MultiSet[K]{base[K]{tree: avltree.New[K, struct{}, struct{}](cmp, true, false, nil, nil)}}
}

// NewOrdered constructs an empty MultiSet over an Ordered key type,
// using the natural comparator.
func NewOrdered[K ordcmp.Ordered]() *MultiSet[K] {
	return New[K](ordcmp.Default[K]())
}

// Clone returns a deep, independent copy of the multiset.
func (s *MultiSet[K]) Clone() *MultiSet[K] {
	return &MultiSet[K]{base[K]{tree: s.tree.Clone()}}
}
