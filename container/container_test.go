// Package container_test verifies that this module's facades satisfy
// the Container interface and behave correctly through it.
package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	ordcmp "github.com/cohenlint/ordtree/cmp"
	"github.com/cohenlint/ordtree/container"
	"github.com/cohenlint/ordtree/multiset"
	"github.com/cohenlint/ordtree/set"
)

var (
	_ container.Container[int] = (*set.Set[int])(nil)
	_ container.Container[int] = (*multiset.MultiSet[int])(nil)
)

func TestSetSatisfiesContainer(t *testing.T) {
	t.Parallel()

	var c container.Container[int] = set.NewOrdered[int]()
	assert.True(t, c.Empty())
	assert.Equal(t, 0, c.Size())

	s := c.(*set.Set[int])
	s.Add(3)
	s.Add(1)
	s.Add(2)

	assert.False(t, c.Empty())
	assert.Equal(t, 3, c.Size())
	assert.Equal(t, []int{1, 2, 3}, c.Values())
	assert.Equal(t, "Set{1, 2, 3}", c.String())

	c.Clear()
	assert.True(t, c.Empty())
	assert.Equal(t, 0, c.Size())
}

func TestMultiSetSatisfiesContainer(t *testing.T) {
	t.Parallel()

	var c container.Container[int] = multiset.New[int](ordcmp.Default[int]())
	m := c.(*multiset.MultiSet[int])
	m.Add(5)
	m.Add(5)
	m.Add(1)

	assert.Equal(t, 3, c.Size())
	assert.Equal(t, []int{1, 5, 5}, c.Values())
	assert.Equal(t, "MultiSet{1, 5, 5}", c.String())

	c.Clear()
	assert.True(t, c.Empty())
}
