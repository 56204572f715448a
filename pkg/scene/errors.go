package scene

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is matched by every *NotFoundError.
	ErrNotFound = errors.New("scene: not found")

	// ErrDuplicateScene is returned when a scene id is registered twice.
	ErrDuplicateScene = errors.New("scene: already registered")

	// ErrNilID is returned when a scene is registered without an id.
	ErrNilID = errors.New("scene: nil scene id")
)

// NotFoundError is returned when a scene id is unknown.
// A zero ID produces a generic message.
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	if e.ID == uuid.Nil {
		return "The scene does not exist."
	}
	return fmt.Sprintf("The scene with the ID '%s' does not exist.", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
