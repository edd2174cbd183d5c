package registry

import (
	"errors"
	"fmt"

	"github.com/wricardo/fleetsim/fleet/engine"
)

var (
	ErrEntityExists   = errors.New("entity already exists")
	ErrEntityNotFound = errors.New("entity not found")
	ErrNotABus        = errors.New("entity is not a bus")
	ErrInvalidName    = errors.New("invalid entity name")
)

// Named pairs an entity with the name it was registered under
type Named struct {
	Name   string
	Entity engine.Entity
}

// Registry maps entity names to entities
type Registry struct {
	entities map[string]engine.Entity
	order    []string
}

// New creates an empty registry
func New() *Registry {
	return &Registry{
		entities: make(map[string]engine.Entity),
	}
}

// Add registers an entity under name
func (r *Registry) Add(name string, e engine.Entity) error {
	if name == "" {
		return ErrInvalidName
	}
	if e == nil {
		return fmt.Errorf("entity %q is nil", name)
	}
	if _, exists := r.entities[name]; exists {
		return fmt.Errorf("%w: %s", ErrEntityExists, name)
	}

	r.entities[name] = e
	r.order = append(r.order, name)
	return nil
}

// Get retrieves an entity by name
func (r *Registry) Get(name string) (engine.Entity, error) {
	e, exists := r.entities[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrEntityNotFound, name)
	}
	return e, nil
}

// Bus retrieves an entity by name and checks that it carries passengers
func (r *Registry) Bus(name string) (engine.Passenger, error) {
	e, err := r.Get(name)
	if err != nil {
		return nil, err
	}

	bus, ok := e.(engine.Passenger)
	if !ok {
		return nil, fmt.Errorf("%w: %s is a %s", ErrNotABus, name, e.Kind())
	}
	return bus, nil
}

// List returns all entities in the order they were added
func (r *Registry) List() []Named {
	list := make([]Named, 0, len(r.order))
	for _, name := range r.order {
		list = append(list, Named{Name: name, Entity: r.entities[name]})
	}
	return list
}

// Len returns the number of registered entities
func (r *Registry) Len() int {
	return len(r.order)
}
