package cache

import "log/slog"

// Option configures a Cache.
type Option[V any] func(*Cache[V])

// WithOnRelease registers a callback run after an entry is dropped because
// its resource was disposed. The callback must not announce disposal.
func WithOnRelease[V any](fn func(id uint32, v V)) Option[V] {
	return func(c *Cache[V]) { c.onRelease = fn }
}

// WithLogger supplies a logger. Nil loggers are ignored.
func WithLogger[V any](l *slog.Logger) Option[V] {
	return func(c *Cache[V]) {
		if l != nil {
			c.log = l
		}
	}
}

// WithCapacity bounds the number of live entries. Adding beyond it evicts
// the least recently used entry. Evicted ids are not marked released.
// Zero means unbounded.
func WithCapacity[V any](n int) Option[V] {
	if n < 0 {
		panic("WithCapacity: capacity must be >= 0")
	}
	return func(c *Cache[V]) { c.capacity = n }
}

// WithOnEvict registers a callback run after an entry is evicted for capacity.
func WithOnEvict[V any](fn func(id uint32, v V)) Option[V] {
	return func(c *Cache[V]) { c.onEvict = fn }
}
