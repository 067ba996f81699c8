package avltree_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cohenlint/ordtree/avltree"
	ordcmp "github.com/cohenlint/ordtree/cmp"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	t.Parallel()

	tr := avltree.New[string, int, struct{}](ordcmp.Default[string](), false, true, nil, nil)
	tr.Put("b", 2)
	tr.Put("a", 1)
	tr.Put("c", 3)

	data, err := json.Marshal(tr)
	require.NoError(t, err)

	out := avltree.New[string, int, struct{}](ordcmp.Default[string](), false, true, nil, nil)
	require.NoError(t, json.Unmarshal(data, out))

	assert.Equal(t, tr.Len(), out.Len())
	for it := tr.Begin(); it.Valid(); it.Next() {
		v, ok := out.Get(it.Key())
		require.True(t, ok)
		assert.Equal(t, it.Value(), v)
	}
}

func TestClone(t *testing.T) {
	t.Parallel()

	tr := avltree.New[int, string, struct{}](ordcmp.Default[int](), false, true, nil, nil)
	tr.Put(1, "a")
	tr.Put(2, "b")

	clone := tr.Clone()
	clone.Put(3, "c")

	assert.Equal(t, 2, tr.Len())
	assert.Equal(t, 3, clone.Len())
	assert.False(t, tr.Contains(3))
}

func TestStringNonEmpty(t *testing.T) {
	t.Parallel()

	tr := avltree.New[int, string, struct{}](ordcmp.Default[int](), false, true, nil, nil)
	assert.Equal(t, "AVLTree[]", tr.String())

	tr.Put(1, "a")
	assert.NotEqual(t, "AVLTree[]", tr.String())
}
