package container

// Map interface that all ordered maps implement.
type Map[K comparable, V any] interface {
	Put(key K, value V)
	Get(key K) (value V, found bool)
	Remove(key K) bool
	Keys() []K

	Container[V]
}
