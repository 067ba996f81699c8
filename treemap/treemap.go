// Package treemap implements an ordered map backed by an AVL tree,
// with optional constructor families adding rank queries and a
// monoidal summary over its values.
package treemap

import (
	"fmt"
	"strings"

	"github.com/cohenlint/ordtree/avltree"
	ordcmp "github.com/cohenlint/ordtree/cmp"
	"github.com/cohenlint/ordtree/container"
)

// base holds the shared machinery every constructor family wraps.
type base[K, V, S any] struct {
	tree *avltree.Tree[K, V, S]
}

// Put inserts or overwrites the value stored under key.
func (m *base[K, V, S]) Put(key K, value V) { m.tree.Put(key, value) }

// Get returns the value stored under key and whether it was found.
func (m *base[K, V, S]) Get(key K) (V, bool) { return m.tree.Get(key) }

// Remove deletes key and reports whether it was present.
func (m *base[K, V, S]) Remove(key K) bool {
	_, ok := m.tree.Remove(key)
	return ok
}

// Contains reports whether key is present.
func (m *base[K, V, S]) Contains(key K) bool { return m.tree.Contains(key) }

// Keys returns every key in ascending order.
func (m *base[K, V, S]) Keys() []K {
	keys := make([]K, 0, m.tree.Len())
	for it := m.tree.Begin(); it.Valid(); it.Next() {
		keys = append(keys, it.Key())
	}
	return keys
}

// Values returns every value, ordered by ascending key.
func (m *base[K, V, S]) Values() []V {
	values := make([]V, 0, m.tree.Len())
	for it := m.tree.Begin(); it.Valid(); it.Next() {
		values = append(values, it.Value())
	}
	return values
}

// Empty reports whether the map holds no entries.
func (m *base[K, V, S]) Empty() bool { return m.tree.Empty() }

// Size returns the number of entries.
func (m *base[K, V, S]) Size() int { return m.tree.Len() }

// Clear removes every entry.
func (m *base[K, V, S]) Clear() { m.tree.Clear() }

// First returns the smallest key and its value.
func (m *base[K, V, S]) First() (K, V, bool) { return m.tree.First() }

// Last returns the largest key and its value.
func (m *base[K, V, S]) Last() (K, V, bool) { return m.tree.Last() }

// PopFirst removes and returns the entry with the smallest key.
func (m *base[K, V, S]) PopFirst() (K, V, bool) { return m.tree.PopFirst() }

// PopLast removes and returns the entry with the largest key.
func (m *base[K, V, S]) PopLast() (K, V, bool) { return m.tree.PopLast() }

// Floor returns the entry with the largest key <= key.
func (m *base[K, V, S]) Floor(key K) (K, V, bool) { return m.tree.FindLe(key) }

// Ceiling returns the entry with the smallest key >= key.
func (m *base[K, V, S]) Ceiling(key K) (K, V, bool) { return m.tree.FindGe(key) }

// Higher returns the entry with the smallest key > key.
func (m *base[K, V, S]) Higher(key K) (K, V, bool) { return m.tree.FindGt(key) }

// Lower returns the entry with the largest key < key.
func (m *base[K, V, S]) Lower(key K) (K, V, bool) { return m.tree.FindLt(key) }

// All returns a range-over-func iterator over entries in ascending
// key order.
func (m *base[K, V, S]) All() func(func(K, V) bool) { return m.tree.All() }

// Backward returns a range-over-func iterator over entries in
// descending key order.
func (m *base[K, V, S]) Backward() func(func(K, V) bool) { return m.tree.Backward() }

// Begin returns an iterator positioned at the entry with the smallest
// key.
func (m *base[K, V, S]) Begin() *avltree.Iterator[K, V, S] { return m.tree.Begin() }

// End returns an iterator positioned one step past the largest key.
func (m *base[K, V, S]) End() *avltree.Iterator[K, V, S] { return m.tree.End() }

// MarshalJSON encodes the map as a JSON array of {key, value} objects
// in ascending key order.
func (m *base[K, V, S]) MarshalJSON() ([]byte, error) { return m.tree.MarshalJSON() }

// UnmarshalJSON replaces the map's contents from a JSON array of
// {key, value} objects.
func (m *base[K, V, S]) UnmarshalJSON(data []byte) error { return m.tree.UnmarshalJSON(data) }

// String returns a human-readable representation of the map, suitable
// for debugging.
func (m *base[K, V, S]) String() string {
	if m.tree.Empty() {
		return "Map[]"
	}
	var sb strings.Builder
	sb.WriteString("Map\n")
	for it := m.tree.Begin(); it.Valid(); it.Next() {
		fmt.Fprintf(&sb, "%v => %v\n", it.Key(), it.Value())
	}
	return sb.String()
}

// Map is a plain ordered map: no rank queries, no summary.
type Map[K, V any] struct {
	base[K, V, struct{}]
}

var _ container.Map[int, string] = (*Map[int, string])(nil)

// New constructs an empty Map ordered by cmp.
func New[K, V any](cmp ordcmp.Comparator[K]) *Map[K, V] {
	return &Map[K, V]{base[K, V, struct{}]{tree: avltree.New[K, V, struct{}](cmp, false, true, nil, nil)}}
}

// NewOrdered constructs an empty Map over an Ordered key type, using
// the natural comparator.
func NewOrdered[K ordcmp.Ordered, V any]() *Map[K, V] {
	return New[K, V](ordcmp.Default[K]())
}

// Clone returns a deep, independent copy of the map.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{base[K, V, struct{}]{tree: m.tree.Clone()}}
}
