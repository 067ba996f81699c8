package avltree

// This file holds the descent-branch predicate family the rest of the
// package is built on. Every predicate here is ported term-for-term
// from the original AVL source this module's behavior is specified
// against, including the multiset tie-break variants (the `<=` in place
// of `<` in the candidate-replacement tests below), which is precisely
// what makes duplicate-key nearest-key queries prefer the outermost
// occurrence.

func (t *Tree[K, V, S]) branchEq(key K) func(*node[K, V, S]) int {
	return func(n *node[K, V, S]) int {
		return t.cmp(key, n.key)
	}
}

// branchMultiEq never returns 0: on an exact key match it steers into
// whichever subtree the node's current balance indicates is lighter,
// guaranteeing the descent always terminates at an empty slot so
// duplicate keys spread across both subtrees rather than stacking down
// one side.
func (t *Tree[K, V, S]) branchMultiEq(key K) func(*node[K, V, S]) int {
	return func(n *node[K, V, S]) int {
		c := t.cmp(key, n.key)
		if c != 0 {
			return c
		}
		if t.balanceOf(n) > 0 {
			return 1
		}
		return -1
	}
}

func (t *Tree[K, V, S]) branchGe(key K, cand **node[K, V, S]) func(*node[K, V, S]) int {
	return func(n *node[K, V, S]) int {
		c := t.cmp(key, n.key)
		if c <= 0 {
			if *cand == nil || t.cmp(n.key, (*cand).key) < 0 {
				*cand = n
			}
		}
		return c
	}
}

func (t *Tree[K, V, S]) branchLe(key K, cand **node[K, V, S]) func(*node[K, V, S]) int {
	return func(n *node[K, V, S]) int {
		c := t.cmp(key, n.key)
		if c >= 0 {
			if *cand == nil || t.cmp((*cand).key, n.key) < 0 {
				*cand = n
			}
		}
		return c
	}
}

func (t *Tree[K, V, S]) branchGt(key K, cand **node[K, V, S]) func(*node[K, V, S]) int {
	return func(n *node[K, V, S]) int {
		if t.cmp(key, n.key) < 0 {
			if *cand == nil || t.cmp(n.key, (*cand).key) < 0 {
				*cand = n
			}
			return -1
		}
		return 1
	}
}

func (t *Tree[K, V, S]) branchLt(key K, cand **node[K, V, S]) func(*node[K, V, S]) int {
	return func(n *node[K, V, S]) int {
		if t.cmp(n.key, key) < 0 {
			if *cand == nil || t.cmp((*cand).key, n.key) < 0 {
				*cand = n
			}
			return 1
		}
		return -1
	}
}

func (t *Tree[K, V, S]) branchMultiGe(key K, cand **node[K, V, S]) func(*node[K, V, S]) int {
	return func(n *node[K, V, S]) int {
		c := t.cmp(key, n.key)
		if c <= 0 {
			if *cand == nil || t.cmp(n.key, (*cand).key) <= 0 {
				*cand = n
			}
		}
		if t.cmp(n.key, key) < 0 {
			return 1
		}
		return -1
	}
}

func (t *Tree[K, V, S]) branchMultiLe(key K, cand **node[K, V, S]) func(*node[K, V, S]) int {
	return func(n *node[K, V, S]) int {
		c := t.cmp(n.key, key)
		if c <= 0 {
			if *cand == nil || t.cmp((*cand).key, n.key) <= 0 {
				*cand = n
			}
		}
		if t.cmp(key, n.key) < 0 {
			return -1
		}
		return 1
	}
}

func (t *Tree[K, V, S]) branchMultiGt(key K, cand **node[K, V, S]) func(*node[K, V, S]) int {
	return func(n *node[K, V, S]) int {
		if t.cmp(key, n.key) < 0 {
			if *cand == nil || t.cmp(n.key, (*cand).key) <= 0 {
				*cand = n
			}
			return -1
		}
		return 1
	}
}

func (t *Tree[K, V, S]) branchMultiLt(key K, cand **node[K, V, S]) func(*node[K, V, S]) int {
	return func(n *node[K, V, S]) int {
		if t.cmp(n.key, key) < 0 {
			if *cand == nil || t.cmp((*cand).key, n.key) <= 0 {
				*cand = n
			}
			return 1
		}
		return -1
	}
}

func (t *Tree[K, V, S]) findNearest(seek func(**node[K, V, S]) func(*node[K, V, S]) int) (K, V, bool) {
	var cand *node[K, V, S]
	t.descend(seek(&cand))
	if cand == nil {
		var zk K
		var zv V
		return zk, zv, false
	}
	return cand.key, cand.value, true
}

// FindGe returns the smallest stored key >= key.
func (t *Tree[K, V, S]) FindGe(key K) (K, V, bool) {
	if t.multi {
		return t.findNearest(func(c **node[K, V, S]) func(*node[K, V, S]) int { return t.branchMultiGe(key, c) })
	}
	return t.findNearest(func(c **node[K, V, S]) func(*node[K, V, S]) int { return t.branchGe(key, c) })
}

// FindGt returns the smallest stored key > key.
func (t *Tree[K, V, S]) FindGt(key K) (K, V, bool) {
	if t.multi {
		return t.findNearest(func(c **node[K, V, S]) func(*node[K, V, S]) int { return t.branchMultiGt(key, c) })
	}
	return t.findNearest(func(c **node[K, V, S]) func(*node[K, V, S]) int { return t.branchGt(key, c) })
}

// FindLe returns the largest stored key <= key.
func (t *Tree[K, V, S]) FindLe(key K) (K, V, bool) {
	if t.multi {
		return t.findNearest(func(c **node[K, V, S]) func(*node[K, V, S]) int { return t.branchMultiLe(key, c) })
	}
	return t.findNearest(func(c **node[K, V, S]) func(*node[K, V, S]) int { return t.branchLe(key, c) })
}

// FindLt returns the largest stored key < key.
func (t *Tree[K, V, S]) FindLt(key K) (K, V, bool) {
	if t.multi {
		return t.findNearest(func(c **node[K, V, S]) func(*node[K, V, S]) int { return t.branchMultiLt(key, c) })
	}
	return t.findNearest(func(c **node[K, V, S]) func(*node[K, V, S]) int { return t.branchLt(key, c) })
}
