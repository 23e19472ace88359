package render

import (
	"fmt"
	"sort"
	"sync"
)

// Registry routes composition requests to renderers by name. Wrappers are
// renderer-agnostic; the same scanned model can be spliced into HTML for a
// page and reduced to text for a notification, so registration is keyed only
// by the renderer's self-reported name.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Renderer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: map[string]Renderer{}}
}

// Register adds a renderer under its Name. Registration is strict: nil
// renderers, empty names, and duplicates are all errors so wiring mistakes
// surface at startup rather than at compose time.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return fmt.Errorf("render: renderer is required")
	}
	name := renderer.Name()
	if name == "" {
		return fmt.Errorf("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.entries[name]; taken {
		return fmt.Errorf("render: renderer %q already registered", name)
	}
	r.entries[name] = renderer
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get retrieves a renderer by name.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("render: renderer %q not found", name)
	}
	return renderer, nil
}

// MustGet panics if the renderer is missing.
func (r *Registry) MustGet(name string) Renderer {
	renderer, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return renderer
}

// Has reports whether a renderer is registered under the given name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[name]
	return ok
}

// List returns registered renderer names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ContentTypes maps each registered renderer name to its content type, for
// hosts exposing renderer selection over a negotiated surface.
func (r *Registry) ContentTypes() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]string, len(r.entries))
	for name, renderer := range r.entries {
		out[name] = renderer.ContentType()
	}
	return out
}
