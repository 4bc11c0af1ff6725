package agent

import (
	"fmt"
	"sort"
	"sync"
)

// Info describes a registered agent.
type Info struct {
	ID   string
	Name string
}

// Factory creates an agent from options.
type Factory func(Options) (Agent, error)

var (
	factories = make(map[string]Factory)
	names     = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds an agent factory under id. It is meant to be called from
// init() and panics if id is already taken or the factory cannot build an
// agent from zero Options.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("agent: %q already registered", id))
	}

	a, err := f(Options{})
	if err != nil {
		panic(fmt.Sprintf("agent: %q cannot be built with default options: %v", id, err))
	}

	factories[id] = f
	names[id] = a.Name()
}

// List returns all registered agents sorted by id.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Name: names[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds the agent registered under id.
func Create(id string, opts Options) (Agent, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("agent: unknown agent %q", id)
	}

	a, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("agent: create %q: %w", id, err)
	}
	return a, nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
