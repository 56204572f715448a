package scene

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/enginekit/pkg/guard"
)

// Scene is a named unit of content the engine can activate.
type Scene struct {
	ID   uuid.UUID
	Name string
}

// Registry stores scenes in insertion order and tracks the active one.
type Registry struct {
	mu     sync.RWMutex
	scenes []Scene
	active uuid.UUID
}

// NewRegistry creates an empty registry with no active scene.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers a scene under a new random id.
func (r *Registry) Add(name string) (Scene, error) {
	if err := guard.RequireNonEmptyString(name, "name"); err != nil {
		return Scene{}, err
	}
	s := Scene{ID: uuid.New(), Name: name}
	if err := r.Register(s); err != nil {
		return Scene{}, err
	}
	return s, nil
}

// Register adds a scene with a caller chosen id.
func (r *Registry) Register(s Scene) error {
	if err := guard.RequireNonEmptyString(s.Name, "s.Name"); err != nil {
		return err
	}
	if s.ID == uuid.Nil {
		return ErrNilID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(s.ID) >= 0 {
		return errors.Join(ErrDuplicateScene, fmt.Errorf("scene %s", s.ID))
	}
	r.scenes = append(r.scenes, s)
	return nil
}

// Get returns the scene with id or a *NotFoundError.
func (r *Registry) Get(id uuid.UUID) (Scene, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return Scene{}, &NotFoundError{ID: id}
	}
	return r.scenes[i], nil
}

// Remove deletes a scene. Removing the active scene leaves no scene active.
func (r *Registry) Remove(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return &NotFoundError{ID: id}
	}
	r.scenes = slices.Delete(r.scenes, i, i+1)
	if r.active == id {
		r.active = uuid.Nil
	}
	return nil
}

// Activate makes id the active scene.
func (r *Registry) Activate(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(id) < 0 {
		return &NotFoundError{ID: id}
	}
	r.active = id
	return nil
}

// Active returns the active scene, or a *NotFoundError without id when no
// scene is active.
func (r *Registry) Active() (Scene, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.active == uuid.Nil {
		return Scene{}, &NotFoundError{}
	}
	return r.scenes[r.indexOf(r.active)], nil
}

// Len returns the number of registered scenes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.scenes)
}

func (r *Registry) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(r.scenes, func(s Scene) bool { return s.ID == id })
}
