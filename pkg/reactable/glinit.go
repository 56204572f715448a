package reactable

import (
	"sync/atomic"

	"github.com/dmitrymomot/enginekit/pkg/observable"
)

const (
	glInitIdle int32 = iota
	glInitFiring
	glInitFired
)

// GLInitReactable announces that OpenGL has been initialized.
// It fires at most once. Use NewGLInitReactable to create one.
type GLInitReactable struct {
	channel[GLInitData]
	state atomic.Int32
}

// NewGLInitReactable creates the OpenGL initialized channel.
func NewGLInitReactable(opts ...observable.Option) *GLInitReactable {
	return &GLInitReactable{channel: newChannel[GLInitData](GLInitChannel, opts)}
}

// OnOpenGLInitialized pushes the initialized signal. Only the first
// successful call delivers; later calls, and calls made while a delivery is
// in progress, return ErrAlreadyInitialized. A failed delivery leaves the
// channel unfired so the signal can be announced again.
func (r *GLInitReactable) OnOpenGLInitialized() error {
	if !r.state.CompareAndSwap(glInitIdle, glInitFiring) {
		return ErrAlreadyInitialized
	}
	if err := r.push(GLInitData{initialized: true}); err != nil {
		r.state.Store(glInitIdle)
		return err
	}
	r.state.Store(glInitFired)
	return nil
}

// Fired reports whether the signal has been delivered.
func (r *GLInitReactable) Fired() bool {
	return r.state.Load() == glInitFired
}
