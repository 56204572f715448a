package reactable

import (
	"github.com/dmitrymomot/enginekit/pkg/observable"
)

// Channel names used for logs and metrics.
const (
	GLContextChannel      = "gl_context"
	GLInitChannel         = "gl_init"
	DisposeTextureChannel = "dispose_texture"
	DisposeSoundChannel   = "dispose_sound"
	BatchSizeChannel      = "batch_size"
)

// channel holds the observable shared by every reactable. The zero value
// has no observable: Subscribe and announcements return ErrNotConstructed.
type channel[T any] struct {
	obs *observable.Observable[T]
}

func newChannel[T any](name string, opts []observable.Option) channel[T] {
	// The fixed name goes last so callers cannot rename a channel.
	opts = append(opts[:len(opts):len(opts)], observable.WithName(name))
	return channel[T]{obs: observable.New[T](opts...)}
}

// Subscribe registers observer for future announcements.
func (c channel[T]) Subscribe(observer observable.Observer[T]) (*observable.Unsubscriber, error) {
	if c.obs == nil {
		return nil, ErrNotConstructed
	}
	return c.obs.Subscribe(observer)
}

// Len returns the number of subscribers.
func (c channel[T]) Len() int {
	if c.obs == nil {
		return 0
	}
	return c.obs.Len()
}

// Name returns the channel name, or "" for an unconstructed reactable.
func (c channel[T]) Name() string {
	if c.obs == nil {
		return ""
	}
	return c.obs.Name()
}

// Complete notifies subscribers that no more announcements will follow.
func (c channel[T]) Complete() {
	if c.obs != nil {
		c.obs.Complete()
	}
}

func (c channel[T]) push(v T) error {
	if c.obs == nil {
		return ErrNotConstructed
	}
	return c.obs.Push(v)
}
