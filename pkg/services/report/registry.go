package report

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps report names to controller factories.
type Registry interface {
	// Register adds a factory for the named report.
	Register(name string, factory Factory) error
	// Create instantiates the named report controller.
	Create(name string, deps Deps) (Controller, error)
	// ListReports returns the registered report names, sorted.
	ListReports() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a registry preloaded with the built-in report
// controllers.
func NewRegistry() Registry {
	r := &registry{factories: make(map[string]Factory)}
	for name, factory := range builtin {
		r.factories[name] = factory
	}
	return r
}

func (r *registry) Register(name string, factory Factory) error {
	if name == "" {
		return fmt.Errorf("report name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("report %q is already registered", name)
	}
	r.factories[name] = factory
	return nil
}

func (r *registry) Create(name string, deps Deps) (Controller, error) {
	r.mu.RLock()
	factory, exists := r.factories[name]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("report %q is not registered", name)
	}
	return factory(deps), nil
}

func (r *registry) ListReports() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var builtin = map[string]Factory{
	"weekly":  func(deps Deps) Controller { return &weeklyController{deps: deps} },
	"record":  func(deps Deps) Controller { return &recordController{deps: deps} },
	"friends": func(deps Deps) Controller { return &friendsController{deps: deps} },
	"daily":   func(deps Deps) Controller { return &dailyController{deps: deps} },
	"assets":  func(deps Deps) Controller { return &assetsController{deps: deps} },
	"secret":  func(deps Deps) Controller { return &secretController{deps: deps} },
	"duty":    func(deps Deps) Controller { return &dutyController{deps: deps} },
}
