// Package set implements an ordered set backed by an AVL tree, with
// optional constructor families adding rank queries and a monoidal
// summary over its elements.
package set

import (
	"fmt"
	"strings"

	"github.com/cohenlint/ordtree/avltree"
	ordcmp "github.com/cohenlint/ordtree/cmp"
	"github.com/cohenlint/ordtree/container"
)

// base holds the shared machinery every constructor family wraps. A
// set is a tree keyed on the element itself with a zero-sized value,
// so set membership costs nothing beyond the key.
type base[K, S any] struct {
	tree *avltree.Tree[K, struct{}, S]
}

// Add inserts key and reports whether it was newly added (false if
// already present).
func (s *base[K, S]) Add(key K) bool { return s.tree.Put(key, struct{}{}) }

// Remove deletes key and reports whether it was present.
func (s *base[K, S]) Remove(key K) bool {
	_, ok := s.tree.Remove(key)
	return ok
}

// Contains reports whether key is present.
func (s *base[K, S]) Contains(key K) bool { return s.tree.Contains(key) }

// Values returns every element in ascending order.
func (s *base[K, S]) Values() []K {
	values := make([]K, 0, s.tree.Len())
	for it := s.tree.Begin(); it.Valid(); it.Next() {
		values = append(values, it.Key())
	}
	return values
}

// Empty reports whether the set holds no elements.
func (s *base[K, S]) Empty() bool { return s.tree.Empty() }

// Size returns the number of elements.
func (s *base[K, S]) Size() int { return s.tree.Len() }

// Clear removes every element.
func (s *base[K, S]) Clear() { s.tree.Clear() }

// First returns the smallest element.
func (s *base[K, S]) First() (K, bool) {
	k, _, ok := s.tree.First()
	return k, ok
}

// Last returns the largest element.
func (s *base[K, S]) Last() (K, bool) {
	k, _, ok := s.tree.Last()
	return k, ok
}

// PopFirst removes and returns the smallest element.
func (s *base[K, S]) PopFirst() (K, bool) {
	k, _, ok := s.tree.PopFirst()
	return k, ok
}

// PopLast removes and returns the largest element.
func (s *base[K, S]) PopLast() (K, bool) {
	k, _, ok := s.tree.PopLast()
	return k, ok
}

// Floor returns the largest element <= key.
func (s *base[K, S]) Floor(key K) (K, bool) {
	k, _, ok := s.tree.FindLe(key)
	return k, ok
}

// Ceiling returns the smallest element >= key.
func (s *base[K, S]) Ceiling(key K) (K, bool) {
	k, _, ok := s.tree.FindGe(key)
	return k, ok
}

// Higher returns the smallest element > key.
func (s *base[K, S]) Higher(key K) (K, bool) {
	k, _, ok := s.tree.FindGt(key)
	return k, ok
}

// Lower returns the largest element < key.
func (s *base[K, S]) Lower(key K) (K, bool) {
	k, _, ok := s.tree.FindLt(key)
	return k, ok
}

// All returns a range-over-func iterator over elements in ascending
// order.
func (s *base[K, S]) All() func(func(K) bool) {
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
func (s *base[K, S]) Backward() func(func(K) bool) {
	return func(yield func(K) bool) {
		for it := s.tree.RBegin(); it.Valid(); it.Prev() {
			if !yield(it.Key()) {
				return
			}
		}
	}
}

// String returns a human-readable representation of the set.
func (s *base[K, S]) String() string {
	values := s.Values()
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return "Set{" + strings.Join(parts, ", ") + "}"
}

// Set is a plain ordered set: no rank queries, no summary.
type Set[K any] struct {
	base[K, struct{}]
}

var _ container.Container[int] = (*Set[int])(nil)

// New constructs an empty Set ordered by cmp.
func New[K any](cmp ordcmp.Comparator[K]) *Set[K] {
	return &Set[K]{base[K, struct{}]{tree: avltree.New[K, struct{}, struct{}](cmp, false, false, nil, nil)}}
}

// NewOrdered constructs an empty Set over an Ordered key type, using
// the natural comparator.
func NewOrdered[K ordcmp.Ordered]() *Set[K] {
	return New[K](ordcmp.Default[K]())
}

// Clone returns a deep, independent copy of the set.
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{base[K, struct{}]{tree: s.tree.Clone()}}
}
