// Package registry provides a global registry of icon styles.
// Styles register themselves in init() functions, allowing the CLI to
// discover and render them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/snake-icons/internal/icon"
)

// DefaultStyle is the style used when none is configured.
const DefaultStyle = "classic"

// StyleInfo contains metadata about a registered style.
type StyleInfo struct {
	ID    string
	Title string
}

// Factory returns a fresh copy of a style.
type Factory func() icon.Style

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a style factory to the registry.
// Typically called from a style package's init() function.
// Panics if a style with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: style %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title
}

// List returns information about all registered styles, sorted by ID.
func List() []StyleInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]StyleInfo, 0, len(factories))
	for id := range factories {
		result = append(result, StyleInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create returns the style registered under id.
// Returns an error if the style ID is not registered.
func Create(id string) (icon.Style, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return icon.Style{}, fmt.Errorf("registry: unknown style %q", id)
	}

	return f(), nil
}

// Exists checks if a style with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
