package avltree

import (
	ordcmp "github.com/cohenlint/ordtree/cmp"
	"github.com/cohenlint/ordtree/container"
)

// Comparator orders keys of type K.
type Comparator[K any] = ordcmp.Comparator[K]

// Monoid describes an associative aggregation over a summary type S.
type Monoid[S any] = container.Monoid[S]

// Summarizer projects a key/value pair down to the summary type a
// Monoid aggregates over.
type Summarizer[K, V, S any] = container.Summarizer[K, V, S]

// Tree is an AVL-balanced binary search tree keyed by K, carrying values
// of type V, optionally augmented with a monoidal summary of type S.
//
// A Tree is built through New rather than a zero value; the zero value
// has a nil comparator and panics on its first key comparison.
type Tree[K, V, S any] struct {
	root       *node[K, V, S]
	cmp        Comparator[K]
	multi      bool
	hasValue   bool
	hasSummary bool
	monoid     Monoid[S]
	project    Summarizer[K, V, S]

	// path is the reusable descent-path stack: addresses of child-slot
	// pointers visited on the way down, reset and replayed on the way
	// back up to repair height/count/summary and perform rotations.
	// It is tree-owned rather than allocated per call, which is the
	// entire point of keeping traversal non-allocating; see DESIGN.md's
	// Open Question on shared vs. per-operation descent stacks.
	path []**node[K, V, S]
}

// New constructs a Tree. cmp orders keys and must not be nil. multi
// allows duplicate keys (multiset semantics); hasValue controls whether
// inserting an existing key overwrites its value (true for maps, false
// for sets/multisets, which have nothing meaningful to overwrite).
// monoid/project must both be nil or both be non-nil: passing one
// without the other is a configuration error and panics, mirroring the
// invalid-configuration rejections of the original tree_spec bitflags.
func New[K, V, S any](cmp Comparator[K], multi, hasValue bool, monoid Monoid[S], project Summarizer[K, V, S]) *Tree[K, V, S] {
	if cmp == nil {
		panic("avltree: nil comparator")
	}
	hasSummary := monoid != nil
	if hasSummary != (project != nil) {
		panic("avltree: monoid and summarizer must be supplied together")
	}
	return &Tree[K, V, S]{
		cmp:        cmp,
		multi:      multi,
		hasValue:   hasValue,
		hasSummary: hasSummary,
		monoid:     monoid,
		project:    project,
	}
}

// Len returns the number of elements stored (for a multiset, counting
// duplicates).
func (t *Tree[K, V, S]) Len() int { return int(t.countOf(t.root)) }

// Empty reports whether the tree holds no elements.
func (t *Tree[K, V, S]) Empty() bool { return t.root == nil }

// Clear removes every element.
func (t *Tree[K, V, S]) Clear() {
	t.root = nil
	t.path = t.path[:0]
}

func (t *Tree[K, V, S]) heightOf(n *node[K, V, S]) int32 {
	if n == nil {
		return 0
	}
	return n.height
}

func (t *Tree[K, V, S]) countOf(n *node[K, V, S]) int32 {
	if n == nil {
		return 0
	}
	return n.count
}

func (t *Tree[K, V, S]) balanceOf(n *node[K, V, S]) int32 {
	return t.heightOf(n.left) - t.heightOf(n.right)
}

func (t *Tree[K, V, S]) summaryOf(n *node[K, V, S]) S {
	if n == nil {
		return t.monoid.Zero()
	}
	return n.summary
}

// recomputeSummary combines left, self, right summaries in that order
// (the combiner need not be commutative, but must always be applied
// in-order).
func (t *Tree[K, V, S]) recomputeSummary(n *node[K, V, S]) S {
	left := t.summaryOf(n.left)
	right := t.summaryOf(n.right)
	self := t.project(n.key, n.value)
	return t.monoid.Combine(t.monoid.Combine(left, self), right)
}

// refresh recomputes height, count, and (if augmented) summary for n
// from its children, which must already be correct. This is the sole
// repair primitive: every insert, delete, and rotation funnels through
// it instead of threading incremental deltas.
func (t *Tree[K, V, S]) refresh(n *node[K, V, S]) {
	n.height = 1 + max(t.heightOf(n.left), t.heightOf(n.right))
	n.count = 1 + t.countOf(n.left) + t.countOf(n.right)
	if t.hasSummary {
		n.summary = t.recomputeSummary(n)
	}
}

// descend walks from the root applying branch at each node, pushing the
// address of each traversed child slot onto t.path, until branch
// returns 0 (found) or the current slot is nil (not found). It returns
// the address of the slot where the walk stopped.
func (t *Tree[K, V, S]) descend(branch func(*node[K, V, S]) int) **node[K, V, S] {
	t.path = t.path[:0]
	cur := &t.root
	for *cur != nil {
		b := branch(*cur)
		if b == 0 {
			break
		}
		t.path = append(t.path, cur)
		if b < 0 {
			cur = &(*cur).left
		} else {
			cur = &(*cur).right
		}
	}
	return cur
}

func (t *Tree[K, V, S]) rotateLeft(slot **node[K, V, S]) {
	p := *slot
	r := p.right
	p.right = r.left
	r.left = p
	t.refresh(p)
	t.refresh(r)
	*slot = r
}

func (t *Tree[K, V, S]) rotateRight(slot **node[K, V, S]) {
	p := *slot
	l := p.left
	p.left = l.right
	l.right = p
	t.refresh(p)
	t.refresh(l)
	*slot = l
}

// fixBalance walks t.path from the deepest entry to the root, repairing
// height/count/summary and rotating where a subtree has become
// unbalanced. It is the same walk for insertion and deletion: once a
// subtree's height stops changing relative to its pre-operation value,
// no ancestor's balance factor can have changed either, so rotation
// checks stop — but count and summary still depend on the changed
// subtree's contents regardless of height, so the walk continues
// refreshing those all the way to the root.
func (t *Tree[K, V, S]) fixBalance() {
	structural := true
	for i := len(t.path) - 1; i >= 0; i-- {
		slot := t.path[i]
		p := *slot
		before := p.height
		t.refresh(p)
		if !structural {
			continue
		}
		bf := t.heightOf(p.left) - t.heightOf(p.right)
		switch {
		case bf == 2:
			if t.balanceOf(p.left) < 0 {
				t.rotateLeft(&p.left)
			}
			t.rotateRight(slot)
		case bf == -2:
			if t.balanceOf(p.right) > 0 {
				t.rotateRight(&p.right)
			}
			t.rotateLeft(slot)
		}
		if (*slot).height == before {
			structural = false
		}
	}
}

func (t *Tree[K, V, S]) lookup(key K) *node[K, V, S] {
	cur := t.root
	for cur != nil {
		c := t.cmp(key, cur.key)
		switch {
		case c == 0:
			return cur
		case c < 0:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	return nil
}

// Get returns the value stored under key and whether it was found. For
// a multiset this returns an arbitrary matching occurrence's value.
func (t *Tree[K, V, S]) Get(key K) (V, bool) {
	n := t.lookup(key)
	if n == nil {
		var zero V
		return zero, false
	}
	return n.value, true
}

// Contains reports whether key is present.
func (t *Tree[K, V, S]) Contains(key K) bool { return t.lookup(key) != nil }

// refreshSummaryPath recomputes the summary of *slot and every ancestor
// on t.path, without touching height/count/structure. Used when a Put
// overwrites an existing map entry's value: nothing about the shape of
// the tree changed, but every ancestor's summary depends on this leaf's
// projected value.
func (t *Tree[K, V, S]) refreshSummaryPath(slot **node[K, V, S]) {
	if !t.hasSummary {
		return
	}
	(*slot).summary = t.recomputeSummary(*slot)
	for i := len(t.path) - 1; i >= 0; i-- {
		p := *t.path[i]
		p.summary = t.recomputeSummary(p)
	}
}

// Put inserts key/value. For a set/multiset (hasValue false) the value
// is ignored on an existing key. Returns true if a new element was
// added, false if an existing key's value was overwritten (or, for a
// set, left untouched).
func (t *Tree[K, V, S]) Put(key K, value V) bool {
	var branch func(*node[K, V, S]) int
	if t.multi {
		branch = t.branchMultiEq(key)
	} else {
		branch = t.branchEq(key)
	}
	slot := t.descend(branch)
	if *slot != nil {
		if t.hasValue {
			(*slot).value = value
			t.refreshSummaryPath(slot)
		}
		return false
	}
	n := &node[K, V, S]{key: key, value: value, height: 1, count: 1}
	if t.hasSummary {
		n.summary = t.project(key, value)
	}
	*slot = n
	t.fixBalance()
	return true
}

func (t *Tree[K, V, S]) removeWhere(branch func(*node[K, V, S]) int) (key K, value V, ok bool) {
	slot := t.descend(branch)
	target := *slot
	if target == nil {
		return key, value, false
	}
	key, value = target.key, target.value

	if target.left != nil && target.right != nil {
		t.path = append(t.path, slot)
		if t.balanceOf(target) >= 0 {
			donor := &target.left
			for (*donor).right != nil {
				t.path = append(t.path, donor)
				donor = &(*donor).right
			}
			target.key, target.value = (*donor).key, (*donor).value
			*donor = (*donor).left
		} else {
			donor := &target.right
			for (*donor).left != nil {
				t.path = append(t.path, donor)
				donor = &(*donor).left
			}
			target.key, target.value = (*donor).key, (*donor).value
			*donor = (*donor).right
		}
	} else if target.left != nil {
		*slot = target.left
	} else {
		*slot = target.right
	}

	t.fixBalance()
	return key, value, true
}

// Remove deletes one element matching key (an arbitrary occurrence, for
// a multiset) and reports whether one was found.
func (t *Tree[K, V, S]) Remove(key K) (V, bool) {
	_, value, ok := t.removeWhere(t.branchEq(key))
	return value, ok
}

func (t *Tree[K, V, S]) branchLeftmost() func(*node[K, V, S]) int {
	return func(n *node[K, V, S]) int {
		if n.left != nil {
			return -1
		}
		return 0
	}
}

func (t *Tree[K, V, S]) branchRightmost() func(*node[K, V, S]) int {
	return func(n *node[K, V, S]) int {
		if n.right != nil {
			return 1
		}
		return 0
	}
}

// First returns the smallest key and its value.
func (t *Tree[K, V, S]) First() (K, V, bool) {
	n := t.root
	if n == nil {
		var zk K
		var zv V
		return zk, zv, false
	}
	for n.left != nil {
		n = n.left
	}
	return n.key, n.value, true
}

// Last returns the largest key and its value.
func (t *Tree[K, V, S]) Last() (K, V, bool) {
	n := t.root
	if n == nil {
		var zk K
		var zv V
		return zk, zv, false
	}
	for n.right != nil {
		n = n.right
	}
	return n.key, n.value, true
}

// PopFirst removes and returns the smallest element.
func (t *Tree[K, V, S]) PopFirst() (K, V, bool) {
	return t.removeWhere(t.branchLeftmost())
}

// PopLast removes and returns the largest element.
func (t *Tree[K, V, S]) PopLast() (K, V, bool) {
	return t.removeWhere(t.branchRightmost())
}
