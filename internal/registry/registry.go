// Package registry provides a global registry of platform layouts.
// Layouts register themselves in init() functions, allowing the CLI and the
// menu to discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-platformer/internal/game"
)

// Layout is a named set of platforms.
type Layout struct {
	ID        string
	Title     string
	Platforms []game.PlatformSpec
}

// LayoutInfo contains metadata about a registered layout.
type LayoutInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh copy of a layout.
type Factory func() Layout

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a layout factory to the registry.
// Panics if a layout with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: layout %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title
}

// List returns information about all registered layouts, sorted by ID.
func List() []LayoutInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LayoutInfo, 0, len(factories))
	for id := range factories {
		result = append(result, LayoutInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds a layout by its ID.
// Returns an error if the layout ID is not registered.
func Create(id string) (Layout, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return Layout{}, fmt.Errorf("registry: unknown layout %q", id)
	}

	return f(), nil
}

// Exists checks if a layout with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// CustomLayout is the ID given to platforms defined in a config file.
const CustomLayout = "custom"

// Resolve picks the layout to play. An explicit name wins, then platforms
// defined in the config file, then the config's layout name, then
// DefaultLayout.
func Resolve(explicit string, custom []game.PlatformSpec, configured string) (Layout, error) {
	if explicit != "" {
		return Create(explicit)
	}
	if len(custom) > 0 {
		platforms := make([]game.PlatformSpec, len(custom))
		copy(platforms, custom)
		return Layout{ID: CustomLayout, Title: "Custom", Platforms: platforms}, nil
	}
	if configured != "" {
		return Create(configured)
	}
	return Create(DefaultLayout)
}
