package render

import "errors"

// ErrRenderer is matched by every *RendererError.
var ErrRenderer = errors.New("render: renderer failure")

const defaultRendererMessage = "There was an issue with the renderer."

// RendererError reports a graphics-API level problem.
type RendererError struct {
	Message string
	Err     error
}

// NewRendererError creates a RendererError. An empty message falls back to a generic one.
func NewRendererError(message string, err error) *RendererError {
	return &RendererError{Message: message, Err: err}
}

func (e *RendererError) Error() string {
	if e.Message == "" {
		return defaultRendererMessage
	}
	return e.Message
}

func (e *RendererError) Unwrap() error {
	return e.Err
}

func (e *RendererError) Is(target error) bool {
	return target == ErrRenderer
}
