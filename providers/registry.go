// Package providers maintains the registry of image-generation provider
// adapters and resolves user-facing provider names, including aliases,
// to adapter factories.
package providers

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/imago-ai/imago/core"
)

// ErrUnknownProvider is returned when a name resolves to no registered
// adapter. This is a terminal configuration error: the dispatcher never
// routes unrecognized names to a default adapter.
var ErrUnknownProvider = errors.New("unknown provider")

// Factory creates a provider instance with the given API key.
type Factory func(apiKey string) core.Provider

type registryState struct {
	mu        sync.RWMutex
	factories map[string]Factory
	aliases   map[string]string
}

var registry = &registryState{
	factories: make(map[string]Factory),
	aliases:   make(map[string]string),
}

// Register adds a provider factory under its canonical name plus any
// aliases. It is typically called from a provider package's init()
// function. Re-registering a name overwrites the previous entry.
//
//	func init() {
//	    providers.Register("stability", New, "stable-diffusion", "sd")
//	}
func Register(name string, factory Factory, aliases ...string) {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	canonical := strings.ToLower(name)
	registry.factories[canonical] = factory
	registry.aliases[canonical] = canonical
	for _, alias := range aliases {
		registry.aliases[strings.ToLower(alias)] = canonical
	}
}

// Resolve maps a provider name or alias, case-insensitively, to its
// canonical name.
func Resolve(name string) (string, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	canonical, ok := registry.aliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w: %s (available: %v)", ErrUnknownProvider, name, listLocked())
	}
	return canonical, nil
}

// Create creates a provider instance by name or alias with the given API
// key. It fails with ErrUnknownProvider for unrecognized names.
func Create(name, apiKey string) (core.Provider, error) {
	canonical, err := Resolve(name)
	if err != nil {
		return nil, err
	}

	registry.mu.RLock()
	factory := registry.factories[canonical]
	registry.mu.RUnlock()

	return factory(apiKey), nil
}

// IsRegistered reports whether a name or alias resolves to an adapter.
func IsRegistered(name string) bool {
	_, err := Resolve(name)
	return err == nil
}

// List returns the canonical names of all registered providers in sorted
// order.
func List() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return listLocked()
}

func listLocked() []string {
	names := make([]string, 0, len(registry.factories))
	for name := range registry.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
