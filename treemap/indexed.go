package treemap

import (
	"github.com/cohenlint/ordtree/avltree"
	ordcmp "github.com/cohenlint/ordtree/cmp"
)

// IndexedMap is an ordered map that additionally supports rank
// queries: lookup and removal by position, and position lookup by
// key.
type IndexedMap[K, V any] struct {
	base[K, V, struct{}]
}

// NewIndexed constructs an empty IndexedMap ordered by cmp.
func NewIndexed[K, V any](cmp ordcmp.Comparator[K]) *IndexedMap[K, V] {
	return &IndexedMap[K, V]{base[K, V, struct{}]{tree: avltree.New[K, V, struct{}](cmp, false, true, nil, nil)}}
}

// NewIndexedOrdered constructs an empty IndexedMap over an Ordered
// key type, using the natural comparator.
func NewIndexedOrdered[K ordcmp.Ordered, V any]() *IndexedMap[K, V] {
	return NewIndexed[K, V](ordcmp.Default[K]())
}

// At returns the key/value at the given 0-based rank in ascending key
// order. It panics if index is out of range.
func (m *IndexedMap[K, V]) At(index int) (K, V) { return m.tree.At(index) }

// PopAt removes and returns the key/value at the given 0-based rank.
// It panics if index is out of range.
func (m *IndexedMap[K, V]) PopAt(index int) (K, V) { return m.tree.PopAt(index) }

// Index returns the 0-based rank of key, or Size() if key is absent.
func (m *IndexedMap[K, V]) Index(key K) int { return m.tree.Index(key) }

// IteratorAt seeds an iterator positioned at the given 0-based rank.
func (m *IndexedMap[K, V]) IteratorAt(index int) *avltree.Iterator[K, V, struct{}] {
	return m.tree.IteratorAt(index)
}

// FloorWithIndex returns the entry with the largest key <= key
// together with its rank.
func (m *IndexedMap[K, V]) FloorWithIndex(key K) (K, V, int, bool) {
	return m.tree.FindLeWithIndex(key)
}

// CeilingWithIndex returns the entry with the smallest key >= key
// together with its rank.
func (m *IndexedMap[K, V]) CeilingWithIndex(key K) (K, V, int, bool) {
	return m.tree.FindGeWithIndex(key)
}

// HigherWithIndex returns the entry with the smallest key > key
// together with its rank.
func (m *IndexedMap[K, V]) HigherWithIndex(key K) (K, V, int, bool) {
	return m.tree.FindGtWithIndex(key)
}

// LowerWithIndex returns the entry with the largest key < key
// together with its rank.
func (m *IndexedMap[K, V]) LowerWithIndex(key K) (K, V, int, bool) {
	return m.tree.FindLtWithIndex(key)
}

// Clone returns a deep, independent copy of the map.
func (m *IndexedMap[K, V]) Clone() *IndexedMap[K, V] {
	return &IndexedMap[K, V]{base[K, V, struct{}]{tree: m.tree.Clone()}}
}
