package set_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cohenlint/ordtree/set"
)

type countMonoid struct{}

func (countMonoid) Zero() int            { return 0 }
func (countMonoid) Combine(a, b int) int { return a + b }

func intCmp(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func TestSummarySet(t *testing.T) {
	t.Parallel()

	s := set.NewSummary[int, int](intCmp, countMonoid{}, func(k int) int { return k })
	s.Add(1)
	s.Add(2)
	s.Add(3)

	assert.Equal(t, 6, s.Summary())
	assert.Equal(t, 5, s.Summarize(2, 3))
	assert.Equal(t, 1, s.At(0))
	assert.Equal(t, 2, s.SummarizeByIndex(1, 2))
}
