package render

// Renderer submits one batch of items to the graphics API.
// Failures should be reported as *RendererError.
type Renderer[T any] interface {
	Render(batch []T) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc[T any] func(batch []T) error

func (fn RendererFunc[T]) Render(batch []T) error { return fn(batch) }
