package reactable

import "errors"

var (
	// ErrAlreadyInitialized is returned when the initialized signal is announced twice.
	ErrAlreadyInitialized = errors.New("reactable: OpenGL already initialized")

	// ErrZeroBatchSize is returned when a batch size of zero is announced.
	ErrZeroBatchSize = errors.New("reactable: batch size must be greater than zero")

	// ErrNotConstructed is returned by a reactable that was not created with its constructor.
	ErrNotConstructed = errors.New("reactable: not created with a constructor")
)
