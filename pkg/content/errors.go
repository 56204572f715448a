package content

import "errors"

// ErrLoadContent is matched by every *LoadError.
var ErrLoadContent = errors.New("content: load failed")

const defaultLoadMessage = "There was an issue loading the content."

// LoadError reports a failure to produce a texture, sound or text resource.
type LoadError struct {
	Message string
	Err     error
}

// NewLoadError creates a LoadError. An empty message falls back to a generic one.
func NewLoadError(message string, err error) *LoadError {
	return &LoadError{Message: message, Err: err}
}

func (e *LoadError) Error() string {
	if e.Message == "" {
		return defaultLoadMessage
	}
	return e.Message
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func (e *LoadError) Is(target error) bool {
	return target == ErrLoadContent
}
