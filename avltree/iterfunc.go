package avltree

import "iter"

// All returns a range-over-func iterator that yields every key/value
// pair in ascending key order.
func (t *Tree[K, V, S]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := t.Begin(); it.Valid(); it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Backward returns a range-over-func iterator that yields every
// key/value pair in descending key order.
func (t *Tree[K, V, S]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := t.RBegin(); it.Valid(); it.Prev() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}
