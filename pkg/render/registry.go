package render

import (
	"fmt"
	"sort"
	"sync"
)

// Registry is a named collection of renderers. It is safe for concurrent
// use, so a builder and its callers can register and look up renderers
// from different goroutines.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

// NewRegistry returns a registry with no renderers installed.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[string]Renderer),
	}
}

// Register installs a renderer under its Name(). Registering a second
// renderer under a name that is already taken fails.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return fmt.Errorf("render: cannot register a nil renderer")
	}
	name := renderer.Name()
	if name == "" {
		return fmt.Errorf("render: cannot register a renderer with an empty name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.renderers[name]; taken {
		return fmt.Errorf("render: a renderer named %q is already installed", name)
	}

	r.renderers[name] = renderer
	return nil
}

// MustRegister is Register for static wiring, panicking on failure.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get looks up a renderer by name.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.renderers[name]
	if !ok {
		return nil, fmt.Errorf("render: no renderer named %q is installed", name)
	}
	return renderer, nil
}

// MustGet looks up a renderer by name and panics when it is missing.
func (r *Registry) MustGet(name string) Renderer {
	renderer, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return renderer
}

// List returns the installed renderer names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a renderer with the given name is installed.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.renderers[name]
	return ok
}
