// Package services provides the named services behind calchub commands: the calculator
// catalog and workbench, favorites, history, notes, the stopwatch, configuration,
// theming, markdown rendering, completion and metrics.
package services

import (
	"fmt"
	"sync"

	"calchub/pkg/calctypes"
)

// Registry manages service registration and lifecycle.
// Services are initialized in registration order.
type Registry struct {
	mu       sync.RWMutex
	services map[string]calctypes.Service
	order    []string
}

// NewRegistry creates a new service registry with an empty service map.
func NewRegistry() *Registry {
	return &Registry{
		services: make(map[string]calctypes.Service),
	}
}

// RegisterService adds a service to the registry, returning an error if already registered.
func (r *Registry) RegisterService(service calctypes.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := service.Name()
	if _, exists := r.services[name]; exists {
		return fmt.Errorf("service %s already registered", name)
	}

	r.services[name] = service
	r.order = append(r.order, name)
	return nil
}

// GetService retrieves a service by name, returning an error if not found.
func (r *Registry) GetService(name string) (calctypes.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	service, exists := r.services[name]
	if !exists {
		return nil, fmt.Errorf("service %s not found", name)
	}
	return service, nil
}

// HasService reports whether a service with the given name is registered.
func (r *Registry) HasService(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.services[name]
	return exists
}

// InitializeAll initializes every registered service in registration order.
func (r *Registry) InitializeAll() error {
	r.mu.RLock()
	order := append([]string(nil), r.order...)
	r.mu.RUnlock()

	for _, name := range order {
		service, err := r.GetService(name)
		if err != nil {
			return err
		}
		if err := service.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize service %s: %w", name, err)
		}
	}
	return nil
}

// GetAllServices returns a copy of all registered services.
func (r *Registry) GetAllServices() map[string]calctypes.Service {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]calctypes.Service, len(r.services))
	for name, service := range r.services {
		result[name] = service
	}
	return result
}

// GlobalRegistry is the registry commands resolve services from.
var GlobalRegistry = NewRegistry()

var globalRegistryMu sync.RWMutex

// GetGlobalRegistry returns the global service registry.
func GetGlobalRegistry() *Registry {
	globalRegistryMu.RLock()
	defer globalRegistryMu.RUnlock()
	return GlobalRegistry
}

// SetGlobalRegistry replaces the global service registry. Tests use it to start clean.
func SetGlobalRegistry(registry *Registry) {
	globalRegistryMu.Lock()
	defer globalRegistryMu.Unlock()
	GlobalRegistry = registry
}

// Lookup fetches a service from the global registry and asserts its concrete type.
func Lookup[T calctypes.Service](name string) (T, error) {
	var zero T
	service, err := GetGlobalRegistry().GetService(name)
	if err != nil {
		return zero, err
	}
	typed, ok := service.(T)
	if !ok {
		return zero, fmt.Errorf("service %s has unexpected type %T", name, service)
	}
	return typed, nil
}
