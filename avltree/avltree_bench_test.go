package avltree_test

import (
	"math/rand"
	"testing"

	"github.com/cohenlint/ordtree/avltree"
	ordcmp "github.com/cohenlint/ordtree/cmp"
)

func permutedInts(size int) []int {
	rng := rand.New(rand.NewSource(42))
	return rng.Perm(size)
}

func benchmarkGet(b *testing.B, tree *avltree.Tree[int, struct{}, struct{}], keys []int) {
	b.Helper()

	for range b.N {
		for _, key := range keys {
			tree.Get(key)
		}
	}
}

func benchmarkPut(b *testing.B, tree *avltree.Tree[int, struct{}, struct{}], keys []int) {
	b.Helper()

	for range b.N {
		for _, key := range keys {
			tree.Put(key, struct{}{})
		}
	}
}

func benchmarkRemove(b *testing.B, tree *avltree.Tree[int, struct{}, struct{}], keys []int) {
	b.Helper()

	for range b.N {
		for _, key := range keys {
			tree.Remove(key)
		}
	}
}

func newBenchTree(size int) (*avltree.Tree[int, struct{}, struct{}], []int) {
	tree := avltree.New[int, struct{}, struct{}](ordcmp.Default[int](), false, false, nil, nil)
	keys := permutedInts(size)
	for _, key := range keys {
		tree.Put(key, struct{}{})
	}
	return tree, keys
}

func BenchmarkAVLTreeGet100(b *testing.B) {
	b.StopTimer()
	tree, keys := newBenchTree(100)
	b.StartTimer()
	benchmarkGet(b, tree, keys)
}

func BenchmarkAVLTreeGet10000(b *testing.B) {
	b.StopTimer()
	tree, keys := newBenchTree(10000)
	b.StartTimer()
	benchmarkGet(b, tree, keys)
}

func BenchmarkAVLTreePut100(b *testing.B) {
	b.StopTimer()
	tree := avltree.New[int, struct{}, struct{}](ordcmp.Default[int](), false, false, nil, nil)
	keys := permutedInts(100)
	b.StartTimer()
	benchmarkPut(b, tree, keys)
}

func BenchmarkAVLTreePut10000(b *testing.B) {
	b.StopTimer()
	tree := avltree.New[int, struct{}, struct{}](ordcmp.Default[int](), false, false, nil, nil)
	keys := permutedInts(10000)
	b.StartTimer()
	benchmarkPut(b, tree, keys)
}

func BenchmarkAVLTreeRemove100(b *testing.B) {
	b.StopTimer()
	tree, keys := newBenchTree(100)
	b.StartTimer()
	benchmarkRemove(b, tree, keys)
}

func BenchmarkAVLTreeRemove10000(b *testing.B) {
	b.StopTimer()
	tree, keys := newBenchTree(10000)
	b.StartTimer()
	benchmarkRemove(b, tree, keys)
}
