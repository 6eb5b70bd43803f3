// Package registry is an explicit, in-memory lookup of named engines. It
// exists only so a demonstration host (the cryptonize CLI) can keep several
// local identities addressable by label; production hosting concerns like
// persistence, eviction, or cross-process sharing are deliberately out of
// scope for the cryptographic core this module implements.
package registry

import (
	"fmt"
	"sync"

	"github.com/cosmic-cipher/cryptocore/engine"
)

// ErrNotFound is returned when a label has no registered engine.
var ErrNotFound = fmt.Errorf("registry: no engine registered for this label")

// ErrAlreadyRegistered is returned by Register when the label is already in use.
var ErrAlreadyRegistered = fmt.Errorf("registry: label already registered")

// Registry maps string labels to engines. All methods are safe for
// concurrent use.
type Registry struct {
	mu      sync.RWMutex
	engines map[string]*engine.Engine
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{engines: make(map[string]*engine.Engine)}
}

// Register adds e under label. It fails if label is already taken so a demo
// session can't silently clobber one identity with another.
func (r *Registry) Register(label string, e *engine.Engine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.engines[label]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, label)
	}
	r.engines[label] = e
	return nil
}

// Get looks up the engine registered under label.
func (r *Registry) Get(label string) (*engine.Engine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.engines[label]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, label)
	}
	return e, nil
}

// Remove drops label from the registry. It is a no-op if the label is absent.
func (r *Registry) Remove(label string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.engines, label)
}

// Labels returns every currently registered label, in no particular order.
func (r *Registry) Labels() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.engines))
	for label := range r.engines {
		out = append(out, label)
	}
	return out
}
