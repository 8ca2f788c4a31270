package gesture

import (
	"fmt"
	"sync"
)

// Constructor builds a gesture for a variant.
type Constructor func(v Variant, env Env) (Gesture, error)

// Registry maps gesture kinds to constructors.
type Registry struct {
	mu           sync.RWMutex
	constructors map[Kind]Constructor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{constructors: make(map[Kind]Constructor)}
}

// DefaultRegistry returns a registry holding the built-in gestures.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(KindHover, newHover)
	r.Register(KindBatchSelectItems, newBatchSelectItems)
	r.Register(KindSelectDragCloneItems, newSelectDragCloneItems)
	r.Register(KindDeselectItem, newDeselectItem)
	r.Register(KindEditPath, newEditPath)
	r.Register(KindSelectDragHandle, newSelectDragHandle)
	r.Register(KindToggleSegmentHandles, newToggleSegmentHandles)
	r.Register(KindBatchSelectSegments, newBatchSelectSegments)
	return r
}

// Register sets the constructor for a kind, replacing any previous one.
func (r *Registry) Register(k Kind, c Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructors[k] = c
}

// Unregister removes the constructor for a kind.
func (r *Registry) Unregister(k Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.constructors, k)
}

// Has reports whether a constructor is registered for k.
func (r *Registry) Has(k Kind) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.constructors[k]
	return ok
}

// New builds the gesture for v. Unregistered kinds get a Passive gesture.
func (r *Registry) New(v Variant, env Env) (Gesture, error) {
	r.mu.RLock()
	c, ok := r.constructors[v.Kind()]
	r.mu.RUnlock()

	if !ok {
		return NewPassive(v), nil
	}
	g, err := c(v, env)
	if err != nil {
		return nil, fmt.Errorf("construct %s: %w", v.Kind(), err)
	}
	return g, nil
}
