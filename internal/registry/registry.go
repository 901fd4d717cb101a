// Package registry provides a global registry of named rule variants.
// Variants register themselves in init() functions, allowing the CLI to
// list and select them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/game"
)

// Variant adjusts the configured rules before a session starts.
type Variant struct {
	// ID is a unique identifier used on the command line (e.g., "classic").
	ID string

	// Title is a human-readable name for display.
	Title string

	// Description is a one-line summary shown by `snake list`.
	Description string

	// Apply mutates the rules loaded from configuration.
	Apply func(r *game.Rules)
}

// DefaultVariant is used when no variant is named.
const DefaultVariant = "classic"

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant to the registry.
// Panics if a variant with the same ID is already registered.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}
	variants[v.ID] = v
}

// List returns all registered variants, sorted by ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Variant, 0, len(variants))
	for _, v := range variants {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get looks up a variant by its ID.
// Returns an error if the ID is not registered.
func Get(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("registry: unknown variant %q", id)
	}
	return v, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}

// Rules applies the named variant to base and validates the result.
func Rules(id string, base game.Rules) (game.Rules, error) {
	v, err := Get(id)
	if err != nil {
		return base, err
	}
	if v.Apply != nil {
		v.Apply(&base)
	}
	if err := base.Validate(); err != nil {
		return base, fmt.Errorf("registry: variant %q: %w", id, err)
	}
	return base, nil
}
