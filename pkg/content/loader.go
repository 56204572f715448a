package content

// Loader produces the resource stored under id.
type Loader[V any] interface {
	Load(id uint32) (V, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc[V any] func(id uint32) (V, error)

func (fn LoaderFunc[V]) Load(id uint32) (V, error) { return fn(id) }
