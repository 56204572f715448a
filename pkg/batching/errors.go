package batching

import "errors"

var (
	// ErrFull is returned by Add when the batch holds capacity items.
	ErrFull = errors.New("batching: batch is full")

	// ErrClosed is returned by operations on a closed buffer.
	ErrClosed = errors.New("batching: buffer closed")
)
