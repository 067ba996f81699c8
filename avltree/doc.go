// Package avltree implements a self-balancing AVL binary search tree,
// generic over a key type K, a value type V, and an optional monoid
// summary type S.
//
// The tree keeps |height(left) - height(right)| <= 1 at every node,
// rebalancing with single or double rotations after every insert and
// delete. Every node always carries its subtree size, enabling rank
// queries (At, Index, IteratorAt) regardless of whether a facade chooses
// to expose them. A node's summary slot is only populated when the tree
// is constructed with a Monoid; for unsummarized trees S is instantiated
// as struct{}, which the compiler lays out as zero bytes.
//
// There are no parent pointers. Ascent after a descent is driven by a
// reusable, tree-owned stack of addresses of child-slot pointers, so a
// *Tree must not be used concurrently from more than one goroutine
// without external synchronization.
package avltree
