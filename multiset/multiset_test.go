package multiset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cohenlint/ordtree/multiset"
)

func TestMultiSetBasics(t *testing.T) {
	t.Parallel()

	s := multiset.NewOrdered[int]()
	s.Add(5)
	s.Add(5)
	s.Add(3)

	assert.Equal(t, 3, s.Size())
	assert.Equal(t, 2, s.Count(5))
	assert.True(t, s.Contains(5))

	assert.True(t, s.Remove(5))
	assert.Equal(t, 1, s.Count(5))
}

func TestMultiSetValuesIncludeDuplicates(t *testing.T) {
	t.Parallel()

	s := multiset.NewOrdered[int]()
	for _, v := range []int{2, 1, 2, 1, 1} {
		s.Add(v)
	}

	assert.Equal(t, []int{1, 1, 1, 2, 2}, s.Values())
}

func TestIndexedMultiSet(t *testing.T) {
	t.Parallel()

	s := multiset.NewIndexedOrdered[int]()
	for _, v := range []int{10, 20, 20, 20, 30} {
		s.Add(v)
	}

	assert.Equal(t, 1, s.Index(20))
	assert.Equal(t, 3, s.LastIndex(20))
	assert.Equal(t, 20, s.At(2))

	key, idx, ok := s.CeilingWithIndex(15)
	require.True(t, ok)
	assert.Equal(t, 20, key)
	assert.Equal(t, 1, idx)

	key, idx, ok = s.FloorWithIndex(15)
	require.True(t, ok)
	assert.Equal(t, 10, key)
	assert.Equal(t, 0, idx)

	key, idx, ok = s.HigherWithIndex(20)
	require.True(t, ok)
	assert.Equal(t, 30, key)
	assert.Equal(t, 4, idx)

	key, idx, ok = s.LowerWithIndex(20)
	require.True(t, ok)
	assert.Equal(t, 10, key)
	assert.Equal(t, 0, idx)

	k := s.PopAt(1)
	assert.Equal(t, 20, k)
	assert.Equal(t, 4, s.Size())
}

func TestMultiSetFirstLast(t *testing.T) {
	t.Parallel()

	s := multiset.NewOrdered[int]()
	s.Add(5)
	s.Add(1)
	s.Add(1)

	k, ok := s.First()
	require.True(t, ok)
	assert.Equal(t, 1, k)

	k, ok = s.Last()
	require.True(t, ok)
	assert.Equal(t, 5, k)
}
