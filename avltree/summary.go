package avltree

// Summary returns the aggregate over every stored element. It panics if
// the tree was not constructed with a Monoid.
func (t *Tree[K, V, S]) Summary() S {
	if !t.hasSummary {
		panic("avltree: tree has no summary")
	}
	return t.summaryOf(t.root)
}

// Summarize aggregates every element whose key lies in [lo, hi]. It
// panics if the tree was not constructed with a Monoid.
func (t *Tree[K, V, S]) Summarize(lo, hi K) S {
	if !t.hasSummary {
		panic("avltree: tree has no summary")
	}
	return t.summarizeNode(t.root, lo, hi)
}

// summarizeNode exploits the fact that a whole subtree's precomputed
// summary can be reused once its key range falls entirely inside
// [lo, hi]: only the two spines straddling the boundaries need
// per-node recombination.
func (t *Tree[K, V, S]) summarizeNode(n *node[K, V, S], lo, hi K) S {
	if n == nil {
		return t.monoid.Zero()
	}
	if t.cmp(n.key, lo) < 0 {
		return t.summarizeNode(n.right, lo, hi)
	}
	if t.cmp(n.key, hi) > 0 {
		return t.summarizeNode(n.left, lo, hi)
	}
	left := t.leftSpine(n.left, lo)
	right := t.rightSpine(n.right, hi)
	self := t.project(n.key, n.value)
	return t.monoid.Combine(t.monoid.Combine(left, self), right)
}

// leftSpine aggregates every node in n's subtree with key >= lo. Once a
// node's own key clears lo, its entire right subtree qualifies whole.
func (t *Tree[K, V, S]) leftSpine(n *node[K, V, S], lo K) S {
	if n == nil {
		return t.monoid.Zero()
	}
	if t.cmp(n.key, lo) < 0 {
		return t.leftSpine(n.right, lo)
	}
	rightWhole := t.summaryOf(n.right)
	self := t.project(n.key, n.value)
	leftPart := t.leftSpine(n.left, lo)
	return t.monoid.Combine(t.monoid.Combine(leftPart, self), rightWhole)
}

// rightSpine aggregates every node in n's subtree with key <= hi.
func (t *Tree[K, V, S]) rightSpine(n *node[K, V, S], hi K) S {
	if n == nil {
		return t.monoid.Zero()
	}
	if t.cmp(n.key, hi) > 0 {
		return t.rightSpine(n.left, hi)
	}
	leftWhole := t.summaryOf(n.left)
	self := t.project(n.key, n.value)
	rightPart := t.rightSpine(n.right, hi)
	return t.monoid.Combine(t.monoid.Combine(leftWhole, self), rightPart)
}

// SummarizeByIndex aggregates the half-open rank range [lo, hi). It
// panics if the tree was not constructed with a Monoid.
func (t *Tree[K, V, S]) SummarizeByIndex(lo, hi int) S {
	if !t.hasSummary {
		panic("avltree: tree has no summary")
	}
	return t.summarizeByIndexNode(t.root, lo, hi)
}

func (t *Tree[K, V, S]) summarizeByIndexNode(n *node[K, V, S], lo, hi int) S {
	if n == nil || lo >= hi {
		return t.monoid.Zero()
	}
	cnt := int(t.countOf(n))
	if lo <= 0 && hi >= cnt {
		return n.summary
	}
	cl := int(t.countOf(n.left))
	if lo >= cl+1 {
		return t.summarizeByIndexNode(n.right, lo-cl-1, hi-cl-1)
	}
	if hi <= cl {
		return t.summarizeByIndexNode(n.left, lo, hi)
	}
	left := t.summarizeByIndexNode(n.left, lo, cl)
	mid := t.project(n.key, n.value)
	right := t.summarizeByIndexNode(n.right, 0, hi-cl-1)
	return t.monoid.Combine(t.monoid.Combine(left, mid), right)
}
