// Package calculators provides the calculator registry and the built-in calculation tools.
// Every calculator is an immutable calctypes.Definition whose Calculate and FormatResults
// functions are pure: invalid input is reported through the result's error field and
// never as a Go error or panic.
package calculators

import (
	"fmt"
	"sync"

	"calchub/pkg/calctypes"
)

// Registry manages calculator registration and lookup.
// It preserves registration order, which is the display order of the catalog.
type Registry struct {
	mu    sync.RWMutex
	order []string
	defs  map[string]*calctypes.Definition
}

// NewRegistry creates an empty calculator registry.
func NewRegistry() *Registry {
	return &Registry{
		defs: make(map[string]*calctypes.Definition),
	}
}

// Register adds a definition. Returns an error if the id is empty or already
// registered, or if the definition lacks its calculate or format function.
func (r *Registry) Register(def *calctypes.Definition) error {
	if def == nil {
		return fmt.Errorf("calculator definition cannot be nil")
	}
	if def.ID == "" {
		return fmt.Errorf("calculator id cannot be empty")
	}
	if def.Calculate == nil || def.FormatResults == nil {
		return fmt.Errorf("calculator %s must define Calculate and FormatResults", def.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.defs[def.ID]; exists {
		return fmt.Errorf("calculator %s already registered", def.ID)
	}
	r.defs[def.ID] = def
	r.order = append(r.order, def.ID)
	return nil
}

// Get retrieves a definition by id.
func (r *Registry) Get(id string) (*calctypes.Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[id]
	return def, ok
}

// All returns every definition in registration order.
// The returned slice is a copy and can be safely modified.
func (r *Registry) All() []*calctypes.Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]*calctypes.Definition, 0, len(r.order))
	for _, id := range r.order {
		defs = append(defs, r.defs[id])
	}
	return defs
}

// Len returns the number of registered calculators.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Builtins returns fresh copies of the built-in calculator definitions.
func Builtins() []*calctypes.Definition {
	return []*calctypes.Definition{
		BasicArithmetic(),
		ScientificAdvanced(),
		BaseConverter(),
		FractionCalc(),
	}
}

// Default returns a registry holding the built-in calculators.
func Default() *Registry {
	r := NewRegistry()
	for _, def := range Builtins() {
		if err := r.Register(def); err != nil {
			panic(fmt.Sprintf("failed to register calculator %s: %v", def.ID, err))
		}
	}
	return r
}
