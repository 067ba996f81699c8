package treemap

import (
	"github.com/cohenlint/ordtree/avltree"
	ordcmp "github.com/cohenlint/ordtree/cmp"
)

// SummaryMap is an ordered map augmented with a monoidal aggregation
// over its values. Since the underlying tree always maintains subtree
// counts, a SummaryMap is implicitly indexed too: SummarizeByIndex
// needs rank information regardless of whether the facade exposes
// At/Index.
type SummaryMap[K, V, S any] struct {
	base[K, V, S]
}

// NewSummary constructs an empty SummaryMap whose values are
// aggregated by monoid, projected through project.
func NewSummary[K, V, S any](cmp ordcmp.Comparator[K], monoid avltree.Monoid[S], project avltree.Summarizer[K, V, S]) *SummaryMap[K, V, S] {
	return &SummaryMap[K, V, S]{base[K, V, S]{tree: avltree.New[K, V, S](cmp, false, true, monoid, project)}}
}

// Summary returns the aggregate over every entry.
func (m *SummaryMap[K, V, S]) Summary() S { return m.tree.Summary() }

// Summarize aggregates every entry whose key lies in [lo, hi].
func (m *SummaryMap[K, V, S]) Summarize(lo, hi K) S { return m.tree.Summarize(lo, hi) }

// SummarizeByIndex aggregates the half-open rank range [lo, hi).
func (m *SummaryMap[K, V, S]) SummarizeByIndex(lo, hi int) S { return m.tree.SummarizeByIndex(lo, hi) }

// At returns the key/value at the given 0-based rank. It panics if
// index is out of range.
func (m *SummaryMap[K, V, S]) At(index int) (K, V) { return m.tree.At(index) }

// Index returns the 0-based rank of key, or Size() if key is absent.
func (m *SummaryMap[K, V, S]) Index(key K) int { return m.tree.Index(key) }

// Clone returns a deep, independent copy of the map.
func (m *SummaryMap[K, V, S]) Clone() *SummaryMap[K, V, S] {
	return &SummaryMap[K, V, S]{base[K, V, S]{tree: m.tree.Clone()}}
}
