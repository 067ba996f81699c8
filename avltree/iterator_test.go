package avltree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cohenlint/ordtree/avltree"
	ordcmp "github.com/cohenlint/ordtree/cmp"
)

func TestIteratorForwardOrder(t *testing.T) {
	t.Parallel()

	tr := avltree.New[int, struct{}, struct{}](ordcmp.Default[int](), false, false, nil, nil)
	for _, k := range []int{5, 1, 4, 2, 3} {
		tr.Put(k, struct{}{})
	}

	var got []int
	for it := tr.Begin(); it.Valid(); it.Next() {
		got = append(got, it.Key())
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
}

func TestIteratorReverseOrder(t *testing.T) {
	t.Parallel()

	tr := avltree.New[int, struct{}, struct{}](ordcmp.Default[int](), false, false, nil, nil)
	for _, k := range []int{5, 1, 4, 2, 3} {
		tr.Put(k, struct{}{})
	}

	var got []int
	for it := tr.RBegin(); it.Valid(); it.Prev() {
		got = append(got, it.Key())
	}
	assert.Equal(t, []int{5, 4, 3, 2, 1}, got)
}

func TestIteratorResumesAcrossBoundaries(t *testing.T) {
	t.Parallel()

	tr := avltree.New[int, struct{}, struct{}](ordcmp.Default[int](), false, false, nil, nil)
	for _, k := range []int{1, 2, 3} {
		tr.Put(k, struct{}{})
	}

	it := tr.End()
	assert.False(t, it.Valid())
	require.True(t, it.Prev())
	assert.Equal(t, 3, it.Key())

	it = tr.REnd()
	assert.False(t, it.Valid())
	require.True(t, it.Next())
	assert.Equal(t, 1, it.Key())

	// Walk off the end, then resume backward from End's sentinel.
	it = tr.Begin()
	for it.Next() {
	}
	assert.False(t, it.Valid())
	require.True(t, it.Prev())
	assert.Equal(t, 3, it.Key())
}

func TestIteratorAtKey(t *testing.T) {
	t.Parallel()

	tr := avltree.New[int, string, struct{}](ordcmp.Default[int](), false, true, nil, nil)
	for _, k := range []int{1, 2, 3, 4} {
		tr.Put(k, "v")
	}

	it := tr.IteratorAtKey(3)
	require.True(t, it.Valid())
	assert.Equal(t, 3, it.Key())

	it = tr.IteratorAtKey(100)
	assert.False(t, it.Valid())
}

func TestAllBackward(t *testing.T) {
	t.Parallel()

	tr := avltree.New[int, struct{}, struct{}](ordcmp.Default[int](), false, false, nil, nil)
	for _, k := range []int{3, 1, 2} {
		tr.Put(k, struct{}{})
	}

	var forward []int
	for k := range tr.All() {
		forward = append(forward, k)
	}
	assert.Equal(t, []int{1, 2, 3}, forward)

	var backward []int
	for k := range tr.Backward() {
		backward = append(backward, k)
	}
	assert.Equal(t, []int{3, 2, 1}, backward)
}

// TestAllBackwardYieldsValues confirms the range-over-func iterators
// expose both key and value, not just the key.
func TestAllBackwardYieldsValues(t *testing.T) {
	t.Parallel()

	tr := avltree.New[int, string, struct{}](ordcmp.Default[int](), false, true, nil, nil)
	tr.Put(1, "one")
	tr.Put(2, "two")

	got := map[int]string{}
	for k, v := range tr.All() {
		got[k] = v
	}
	assert.Equal(t, map[int]string{1: "one", 2: "two"}, got)

	gotBackward := map[int]string{}
	for k, v := range tr.Backward() {
		gotBackward[k] = v
	}
	assert.Equal(t, map[int]string{1: "one", 2: "two"}, gotBackward)
}
