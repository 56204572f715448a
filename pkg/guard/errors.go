package guard

import (
	"errors"
	"fmt"
)

// ErrArgumentNull is matched by every failed guard check.
var ErrArgumentNull = errors.New("argument null")

// Kind distinguishes the check that failed.
type Kind string

const (
	// KindNull is reported by RequireNonNull.
	KindNull Kind = "null"
	// KindNullOrEmpty is reported by the string checks.
	KindNullOrEmpty Kind = "null_or_empty"
)

const (
	nullMessage        = "The parameter must not be null."
	nullOrEmptyMessage = "The string parameter must not be null or empty."
)

// ArgumentError is returned when a precondition on a parameter is violated.
type ArgumentError struct {
	Kind      Kind
	ParamName string
	Message   string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s (Parameter '%s')", e.Message, e.ParamName)
}

// Is reports ErrArgumentNull for any guard failure.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrArgumentNull
}

func newNullError(paramName string) *ArgumentError {
	return &ArgumentError{Kind: KindNull, ParamName: paramName, Message: nullMessage}
}

func newNullOrEmptyError(paramName string) *ArgumentError {
	return &ArgumentError{Kind: KindNullOrEmpty, ParamName: paramName, Message: nullOrEmptyMessage}
}
