package ai

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Factory builds a fresh PlanetAI instance
type Factory func(deps Dependencies) PlanetAI

// Registry maps AI names, as used in configuration, to factories
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// DefaultRegistry returns a registry with every built-in AI
func DefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.Register("trip", func(deps Dependencies) PlanetAI { return NewTripAI(deps) })
	_ = r.Register("passive", func(deps Dependencies) PlanetAI { return NewPassiveAI(deps) })
	return r
}

// Register adds a factory under name
func (r *Registry) Register(name string, factory Factory) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return fmt.Errorf("ai name cannot be empty")
	}

	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("ai already registered under name %s", name)
	}

	r.factories[name] = factory
	return nil
}

// New builds the AI registered under name
func (r *Registry) New(name string, deps Dependencies) (PlanetAI, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	r.mu.RLock()
	factory, ok := r.factories[key]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("no ai registered under name %q (available: %s)", name, strings.Join(r.Names(), ", "))
	}
	return factory(deps), nil
}

// Names returns the registered names in alphabetical order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
