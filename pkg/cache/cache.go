package cache

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/dmitrymomot/enginekit/pkg/content"
	"github.com/dmitrymomot/enginekit/pkg/guard"
	"github.com/dmitrymomot/enginekit/pkg/logger"
	"github.com/dmitrymomot/enginekit/pkg/observable"
	"github.com/dmitrymomot/enginekit/pkg/reactable"
)

// Source is a dispose channel a cache can subscribe to.
type Source[P any] interface {
	Subscribe(observer observable.Observer[P]) (*observable.Unsubscriber, error)
}

// Cache maps resource ids to values of type V.
// All methods are safe for concurrent use.
type Cache[V any] struct {
	mu        sync.Mutex
	items     *resident[V]
	capacity  int
	released  mapset.Set[uint32]
	closed    bool
	unsub     *observable.Unsubscriber
	onRelease func(id uint32, v V)
	onEvict   func(id uint32, v V)
	log       *slog.Logger
}

// New creates a cache that drops entries when src announces their id.
// idOf extracts the id from the channel payload.
func New[V, P any](src Source[P], idOf func(P) uint32, opts ...Option[V]) (*Cache[V], error) {
	if err := guard.RequireNonNull(src, "src"); err != nil {
		return nil, err
	}
	if err := guard.RequireNonNull(idOf, "idOf"); err != nil {
		return nil, err
	}

	c := &Cache[V]{
		released: mapset.NewThreadUnsafeSet[uint32](),
		log:      logger.Noop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.items = newResident[V](c.capacity)

	unsub, err := src.Subscribe(observable.NextFunc[P](func(p P) error {
		c.release(idOf(p))
		return nil
	}))
	if err != nil {
		return nil, err
	}
	c.unsub = unsub

	return c, nil
}

// NewTextureCache creates a cache bound to the dispose-texture channel.
func NewTextureCache[V any](src *reactable.DisposeTextureReactable, opts ...Option[V]) (*Cache[V], error) {
	return New[V, reactable.DisposeTextureData](src, reactable.DisposeTextureData.TextureID, opts...)
}

// NewSoundCache creates a cache bound to the dispose-sound channel.
func NewSoundCache[V any](src *reactable.DisposeSoundReactable, opts ...Option[V]) (*Cache[V], error) {
	return New[V, reactable.DisposeSoundData](src, reactable.DisposeSoundData.SoundID, opts...)
}

// Add stores v under id. Re-adding a released id makes it live again.
// In a bounded cache the least recently used entry may be evicted.
func (c *Cache[V]) Add(id uint32, v V) error {
	if err := guard.RequireNonNull(v, "v"); err != nil {
		return err
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	evicted := c.items.put(id, v)
	c.released.Remove(id)
	c.mu.Unlock()

	if evicted != nil {
		c.log.Debug("cache entry evicted", slog.Uint64("id", uint64(evicted.id)))
		if c.onEvict != nil {
			c.onEvict(evicted.id, evicted.value)
		}
	}
	return nil
}

// Get returns the value stored under id.
func (c *Cache[V]) Get(id uint32) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.get(id)
}

// GetOrLoad returns the value under id, asking loader to produce it on a
// miss. Load failures are returned as *content.LoadError.
func (c *Cache[V]) GetOrLoad(id uint32, loader content.Loader[V]) (V, error) {
	var zero V
	if err := guard.RequireNonNull(loader, "loader"); err != nil {
		return zero, err
	}

	c.mu.Lock()
	if v, err := c.get(id); err == nil || errors.Is(err, ErrClosed) {
		c.mu.Unlock()
		return v, err
	}
	c.mu.Unlock()

	// Loading runs unlocked; it may take long and may touch other caches.
	v, err := loader.Load(id)
	if err != nil {
		return zero, content.NewLoadError(fmt.Sprintf("could not load resource %d", id), err)
	}
	if err := c.Add(id, v); err != nil {
		return zero, err
	}
	return v, nil
}

// Released reports whether a live entry under id was dropped by a dispose
// notification. Disposals of ids the cache never held are ignored.
func (c *Cache[V]) Released(id uint32) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.released.Contains(id)
}

// Len returns the number of live entries.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items.len()
}

// Close unsubscribes from the dispose channel and drops all entries.
// Entries are not released through the OnRelease callback.
func (c *Cache[V]) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.items.clear()
	c.released.Clear()
	c.mu.Unlock()

	c.unsub.Dispose()
}

func (c *Cache[V]) get(id uint32) (V, error) {
	var zero V
	if c.closed {
		return zero, ErrClosed
	}
	if v, ok := c.items.get(id); ok {
		return v, nil
	}
	if c.released.Contains(id) {
		return zero, ErrReleased
	}
	return zero, ErrNotFound
}

func (c *Cache[V]) release(id uint32) {
	c.mu.Lock()
	v, ok := c.items.remove(id)
	if ok {
		c.released.Add(id)
	}
	c.mu.Unlock()

	if !ok {
		return
	}
	c.log.Debug("cache entry released", slog.Uint64("id", uint64(id)))
	if c.onRelease != nil {
		c.onRelease(id, v)
	}
}
