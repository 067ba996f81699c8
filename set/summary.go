package set

import (
	"github.com/cohenlint/ordtree/avltree"
	ordcmp "github.com/cohenlint/ordtree/cmp"
)

// SummarySet is an ordered set augmented with a monoidal aggregation
// over its elements. It is implicitly indexed too, since the
// underlying tree always maintains subtree counts.
type SummarySet[K, S any] struct {
	base[K, S]
}

// NewSummary constructs an empty SummarySet whose elements are
// aggregated by monoid, projected through project.
func NewSummary[K, S any](cmp ordcmp.Comparator[K], monoid avltree.Monoid[S], project func(K) S) *SummarySet[K, S] {
	wrapped := func(key K, _ struct{}) S { return project(key) }
	return &SummarySet[K, S]{base[K, S]{tree: avltree.New[K, struct{}, S](cmp, false, false, monoid, wrapped)}}
}

// Summary returns the aggregate over every element.
func (s *SummarySet[K, S]) Summary() S { return s.tree.Summary() }

// Summarize aggregates every element whose key lies in [lo, hi].
func (s *SummarySet[K, S]) Summarize(lo, hi K) S { return s.tree.Summarize(lo, hi) }

// SummarizeByIndex aggregates the half-open rank range [lo, hi).
func (s *SummarySet[K, S]) SummarizeByIndex(lo, hi int) S { return s.tree.SummarizeByIndex(lo, hi) }

// At returns the element at the given 0-based rank. It panics if
// index is out of range.
func (s *SummarySet[K, S]) At(index int) K {
	k, _ := s.tree.At(index)
	return k
}

// Index returns the 0-based rank of key, or Size() if key is absent.
func (s *SummarySet[K, S]) Index(key K) int { return s.tree.Index(key) }

// Clone returns a deep, independent copy of the set.
func (s *SummarySet[K, S]) Clone() *SummarySet[K, S] {
	return &SummarySet[K, S]{base[K, S]{tree: s.tree.Clone()}}
}
