// Package registry provides a global registry for scene examples.
// Examples register themselves in init() functions, allowing the platform
// to discover and set them up without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/scenelab/internal/core"
	"github.com/vovakirdan/scenelab/internal/scene"
)

// Example is a named scene generator.
// Setup builds nodes through the scene context and may register frame
// callbacks; it never renders or loads assets itself.
type Example interface {
	// ID returns a unique key for this example (e.g., "basic", "particles").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Setup populates ctx. The RuntimeConfig carries the seed and tick rate.
	Setup(ctx scene.Context, cfg core.RuntimeConfig) error
}

// NotFoundError is returned for an unknown example key.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("registry: unknown example %q", e.Key)
}

// Info contains metadata about a registered example.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of an example.
type Factory func() Example

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds an example factory to the registry.
// Typically called from an example's init() function.
// Panics if an example with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: example %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f().Title()
}

// List returns information about all registered examples, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup instantiates a new example by its ID.
// Returns a *NotFoundError if the ID is not registered.
func Lookup(id string) (Example, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, &NotFoundError{Key: id}
	}

	return f(), nil
}

// Exists checks if an example with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Build looks up id and runs its setup on a fresh scene.
func Build(id string, cfg core.RuntimeConfig) (*scene.Scene, Example, error) {
	ex, err := Lookup(id)
	if err != nil {
		return nil, nil, err
	}

	s := scene.New()
	if err := ex.Setup(s, cfg); err != nil {
		return nil, nil, fmt.Errorf("registry: setup %q: %w", id, err)
	}
	return s, ex, nil
}
