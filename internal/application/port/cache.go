package port

// Cache is a bounded key-value store. Implementations are safe for
// concurrent use.
type Cache[K comparable, V any] interface {
	// Get returns the value and true, or the zero value and false.
	Get(key K) (V, bool)

	// Set stores value, evicting the least recently used entry when full.
	Set(key K, value V)

	Remove(key K)

	Len() int
}
