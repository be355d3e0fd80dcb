// Package module keeps cross module port lookups in one place during bootstrap
package module

import (
	"fmt"
	"sort"
	"sync"

	"almanac/internal/modkit"
)

// Registry maps module names to their port sets
// one registry per composition root; safe for concurrent use
type Registry struct {
	mu   sync.RWMutex
	reg  map[string]any
	mods []modkit.Module
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry { return &Registry{reg: map[string]any{}} }

// Add registers m under its name; a duplicate name panics since it is a wiring bug
func (r *Registry) Add(m modkit.Module) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := m.Name()
	if _, dup := r.reg[name]; dup {
		panic(fmt.Sprintf("module: %q registered twice", name))
	}
	r.reg[name] = m.Ports()
	r.mods = append(r.mods, m)
}

// Modules returns registered modules in registration order
func (r *Registry) Modules() []modkit.Module {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]modkit.Module(nil), r.mods...)
}

// Names lists registered module names, sorted
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.reg))
	for n := range r.reg {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// PortsAs fetches and type asserts the port set registered for name
func PortsAs[T any](r *Registry, name string) (T, bool) {
	r.mu.RLock()
	v, ok := r.reg[name]
	r.mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	out, ok := v.(T)
	return out, ok
}
