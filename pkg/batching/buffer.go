package batching

import (
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/dmitrymomot/enginekit/pkg/guard"
	"github.com/dmitrymomot/enginekit/pkg/logger"
	"github.com/dmitrymomot/enginekit/pkg/observable"
	"github.com/dmitrymomot/enginekit/pkg/reactable"
	"github.com/dmitrymomot/enginekit/pkg/render"
)

// Source is the batch-size channel a Buffer follows.
type Source interface {
	Subscribe(observer observable.Observer[reactable.BatchSizeData]) (*observable.Unsubscriber, error)
}

// Buffer queues items of type T until they are flushed to a renderer.
type Buffer[T any] struct {
	mu       sync.Mutex
	items    []T
	capacity int
	closed   bool
	unsub    *observable.Unsubscriber
	log      *slog.Logger
}

// New creates a buffer holding up to initial items that resizes whenever
// src announces a new batch size.
func New[T any](src Source, initial uint32, log *slog.Logger) (*Buffer[T], error) {
	if err := guard.RequireNonNull(src, "src"); err != nil {
		return nil, err
	}
	if initial == 0 {
		return nil, reactable.ErrZeroBatchSize
	}
	if log == nil {
		log = logger.Noop()
	}

	b := &Buffer[T]{
		items:    make([]T, 0, initial),
		capacity: int(initial),
		log:      log.With(logger.Component("batching")),
	}

	unsub, err := src.Subscribe(observable.NextFunc[reactable.BatchSizeData](func(d reactable.BatchSizeData) error {
		b.resize(d.BatchSize())
		return nil
	}))
	if err != nil {
		return nil, err
	}
	b.unsub = unsub

	return b, nil
}

// Add queues item. It returns ErrFull once capacity items are queued.
func (b *Buffer[T]) Add(item T) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrClosed
	}
	if len(b.items) >= b.capacity {
		return ErrFull
	}
	b.items = append(b.items, item)
	return nil
}

// Flush submits the queued items to r and empties the buffer.
// On failure the items stay queued and the error is returned as a
// *render.RendererError.
func (b *Buffer[T]) Flush(r render.Renderer[T]) error {
	if err := guard.RequireNonNull(r, "r"); err != nil {
		return err
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrClosed
	}
	if len(b.items) == 0 {
		b.mu.Unlock()
		return nil
	}
	batch := slices.Clone(b.items)
	b.mu.Unlock()

	if err := r.Render(batch); err != nil {
		var rerr *render.RendererError
		if errors.As(err, &rerr) {
			return err
		}
		return render.NewRendererError("batch submission failed", err)
	}

	b.mu.Lock()
	// Items queued while rendering stay for the next flush.
	b.items = slices.Delete(b.items, 0, min(len(batch), len(b.items)))
	b.mu.Unlock()
	return nil
}

// Len returns the number of queued items.
func (b *Buffer[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

// Cap returns the current batch capacity.
func (b *Buffer[T]) Cap() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.capacity
}

// Close stops following the batch-size channel and drops queued items.
func (b *Buffer[T]) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	b.items = nil
	b.mu.Unlock()

	b.unsub.Dispose()
}

func (b *Buffer[T]) resize(size uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.capacity = int(size)
	if cap(b.items) < b.capacity {
		b.items = slices.Grow(b.items, b.capacity-len(b.items))
	}
	b.log.Debug("batch resized", logger.BatchSize(size), slog.Int("queued", len(b.items)))
}
