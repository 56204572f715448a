package reactable

import "github.com/dmitrymomot/enginekit/pkg/observable"

// GLContextReactable announces that the native OpenGL context exists and GPU
// objects may now be created. Use NewGLContextReactable to create one.
type GLContextReactable struct {
	channel[GLContextData]
}

// NewGLContextReactable creates the GL context channel.
func NewGLContextReactable(opts ...observable.Option) *GLContextReactable {
	return &GLContextReactable{channel: newChannel[GLContextData](GLContextChannel, opts)}
}

// OnGLContextCreated pushes data to every subscriber.
func (r *GLContextReactable) OnGLContextCreated(data GLContextData) error {
	return r.push(data)
}
