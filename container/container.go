// Package container provides the shared interfaces this module's
// tree-based containers (set, multiset, treemap) all satisfy.
package container

// --------------------------------------------------------------------------------
// Base Container Interface

// Container defines the fundamental interface for all container data structures.
//
// This interface provides basic operations for querying and manipulating a container's
// elements, using a generic type T to support any data type. Every facade in this
// module (set.Set, multiset.MultiSet, and their Indexed/Summary variants) satisfies
// it, since all are backed by the same avltree.Tree engine.
type Container[T any] interface {
	// Empty returns true if the container has no elements.
	Empty() bool

	// Size returns the number of elements in the container.
	Size() int

	// Clear removes all elements from the container, resetting it to an empty state.
	Clear()

	// Values returns a slice containing all elements in the container.
	// For the facades in this module, the order is the tree's ascending key order.
	Values() []T

	// String returns a string representation of the container's elements,
	// suitable for logging or debugging.
	String() string
}
