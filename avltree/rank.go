package avltree

// At returns the key/value at the given 0-based rank in sorted order.
// It panics if index is out of range.
func (t *Tree[K, V, S]) At(index int) (K, V) {
	if index < 0 || index >= int(t.countOf(t.root)) {
		panic("avltree: index out of range")
	}
	n := t.root
	for {
		cl := int(t.countOf(n.left))
		switch {
		case index == cl:
			return n.key, n.value
		case index < cl:
			n = n.left
		default:
			index -= cl + 1
			n = n.right
		}
	}
}

// PopAt removes and returns the key/value at the given 0-based rank. It
// panics if index is out of range.
func (t *Tree[K, V, S]) PopAt(index int) (K, V) {
	if index < 0 || index >= int(t.countOf(t.root)) {
		panic("avltree: index out of range")
	}
	key, value, _ := t.removeWhere(t.branchAt(index))
	return key, value
}

// Index returns the 0-based rank of key (its position among stored
// keys in sorted order), or the size of the tree if key is absent. For
// a multiset with duplicate keys, Index returns the rank of the first
// occurrence.
func (t *Tree[K, V, S]) Index(key K) int {
	if t.multi {
		return t.multiIndex(key, false)
	}
	idx := 0
	branch := t.branchIndex(key, &idx)
	slot := t.descend(branch)
	if *slot == nil {
		return int(t.countOf(t.root))
	}
	return idx
}

// LastIndex returns the rank of the last occurrence of key in a
// multiset, or the tree's size if key is absent.
func (t *Tree[K, V, S]) LastIndex(key K) int {
	return t.multiIndex(key, true)
}

// Count returns the number of stored occurrences of key.
func (t *Tree[K, V, S]) Count(key K) int {
	first := t.multiIndex(key, false)
	size := int(t.countOf(t.root))
	if first == size {
		return 0
	}
	return t.multiIndex(key, true) - first + 1
}

func (t *Tree[K, V, S]) multiIndex(key K, last bool) int {
	index := int(t.countOf(t.root))
	indexTmp := 0
	branch := t.branchMultiIndex(key, &index, &indexTmp, last)
	t.descend(branch)
	return index
}

func (t *Tree[K, V, S]) branchAt(index int) func(*node[K, V, S]) int {
	return func(n *node[K, V, S]) int {
		cl := int(t.countOf(n.left))
		switch {
		case index == cl:
			return 0
		case index < cl:
			return -1
		default:
			index -= cl + 1
			return 1
		}
	}
}

func (t *Tree[K, V, S]) branchIndex(key K, idx *int) func(*node[K, V, S]) int {
	return func(n *node[K, V, S]) int {
		b := t.cmp(key, n.key)
		if b >= 0 {
			*idx += int(t.countOf(n.left))
			if b > 0 {
				*idx++
			}
		}
		return b
	}
}

// branchMultiIndex accumulates rank while descending toward an exact-key
// match. On reaching a matching node it records *index and, when last
// is requested, keeps steering right through further duplicates so the
// descent lands on the rightmost occurrence.
func (t *Tree[K, V, S]) branchMultiIndex(key K, index, indexTmp *int, last bool) func(*node[K, V, S]) int {
	return func(n *node[K, V, S]) int {
		c := t.cmp(key, n.key)
		if c == 0 {
			*index = *indexTmp + int(t.countOf(n.left))
			if last {
				*indexTmp += int(t.countOf(n.left)) + 1
				return 1
			}
			return -1
		}
		if c < 0 {
			return -1
		}
		*indexTmp += int(t.countOf(n.left)) + 1
		return 1
	}
}

// withIndex wraps any candidate-setting nearest-key branch predicate
// (plain or multiset-aware — both families in branch.go share the same
// shape) with rank accounting, so find_ge_with_index and its siblings
// reuse the exact descent that already answers FindGe/FindGt/FindLe/
// FindLt instead of a second, parallel predicate family. idx reports
// the rank of whichever node the wrapped predicate settles on as
// *cand, recomputed every time a visited node becomes the new
// candidate.
func (t *Tree[K, V, S]) withIndex(cand **node[K, V, S], idx *int, branch func(*node[K, V, S]) int) func(*node[K, V, S]) int {
	accRight := 0
	return func(n *node[K, V, S]) int {
		b := branch(n)
		if *cand == n {
			*idx = accRight + int(t.countOf(n.left))
		}
		if b == 1 {
			accRight += int(t.countOf(n.left)) + 1
		}
		return b
	}
}

// findNearestWithIndex pairs a nearest-key branch with rank accounting:
// idx tracks the candidate node's rank as the descent passes it.
func (t *Tree[K, V, S]) findNearestWithIndex(seek func(**node[K, V, S]) func(*node[K, V, S]) int) (K, V, int, bool) {
	var cand *node[K, V, S]
	idx := 0
	branch := seek(&cand)
	t.descend(t.withIndex(&cand, &idx, branch))
	if cand == nil {
		var zk K
		var zv V
		return zk, zv, 0, false
	}
	return cand.key, cand.value, idx, true
}

// FindGeWithIndex returns the smallest stored key >= key together with
// its rank, in one descent.
func (t *Tree[K, V, S]) FindGeWithIndex(key K) (K, V, int, bool) {
	if t.multi {
		return t.findNearestWithIndex(func(c **node[K, V, S]) func(*node[K, V, S]) int { return t.branchMultiGe(key, c) })
	}
	return t.findNearestWithIndex(func(c **node[K, V, S]) func(*node[K, V, S]) int { return t.branchGe(key, c) })
}

// FindLeWithIndex returns the largest stored key <= key together with
// its rank, in one descent.
func (t *Tree[K, V, S]) FindLeWithIndex(key K) (K, V, int, bool) {
	if t.multi {
		return t.findNearestWithIndex(func(c **node[K, V, S]) func(*node[K, V, S]) int { return t.branchMultiLe(key, c) })
	}
	return t.findNearestWithIndex(func(c **node[K, V, S]) func(*node[K, V, S]) int { return t.branchLe(key, c) })
}

// FindGtWithIndex returns the smallest stored key > key together with
// its rank, in one descent.
func (t *Tree[K, V, S]) FindGtWithIndex(key K) (K, V, int, bool) {
	if t.multi {
		return t.findNearestWithIndex(func(c **node[K, V, S]) func(*node[K, V, S]) int { return t.branchMultiGt(key, c) })
	}
	return t.findNearestWithIndex(func(c **node[K, V, S]) func(*node[K, V, S]) int { return t.branchGt(key, c) })
}

// FindLtWithIndex returns the largest stored key < key together with
// its rank, in one descent.
func (t *Tree[K, V, S]) FindLtWithIndex(key K) (K, V, int, bool) {
	if t.multi {
		return t.findNearestWithIndex(func(c **node[K, V, S]) func(*node[K, V, S]) int { return t.branchMultiLt(key, c) })
	}
	return t.findNearestWithIndex(func(c **node[K, V, S]) func(*node[K, V, S]) int { return t.branchLt(key, c) })
}

// IteratorAt seeds an iterator positioned at the given 0-based rank.
// It panics if index is out of range.
func (t *Tree[K, V, S]) IteratorAt(index int) *Iterator[K, V, S] {
	if index < 0 || index >= int(t.countOf(t.root)) {
		panic("avltree: index out of range")
	}
	return t.newSeededIterator(t.branchAt(index))
}
