package adapter

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/goliatone/go-formstate/pkg/form"
)

// Built-in adapter names registered by NewRegistry.
const (
	NamePassThrough = "passthrough"
	NameInputEvents = "input-events"
)

var (
	// ErrUnknownAdapter is returned by Lookup for names never registered.
	ErrUnknownAdapter = errors.New("adapter: unknown adapter")
	// ErrDuplicateAdapter is returned when a name is registered twice.
	ErrDuplicateAdapter = errors.New("adapter: adapter already registered")
)

// Registry selects adapters by name at runtime. Props lose their static type
// on the way in, so callers that know P should use the adapter directly.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Adapter[any]
}

// NewRegistry returns a registry holding the built-in adapters.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string]Adapter[any])}
	_ = Register(r, NamePassThrough, PassThrough())
	_ = Register(r, NameInputEvents, InputEvents())
	return r
}

// Register stores a under name. Names are case-insensitive and trimmed.
func Register[P any](r *Registry, name string, a Adapter[P]) error {
	if a == nil {
		return errors.New("adapter: adapter is required")
	}
	key := canonical(name)
	if key == "" {
		return errors.New("adapter: adapter name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.entries[key]; taken {
		return fmt.Errorf("%w: %q", ErrDuplicateAdapter, key)
	}
	r.entries[key] = Func[any](func(p form.Presentation) any {
		return a.Adapt(p)
	})
	return nil
}

// Lookup returns the adapter registered under name.
func (r *Registry) Lookup(name string) (Adapter[any], error) {
	key := canonical(name)

	r.mu.RLock()
	defer r.mu.RUnlock()
	if a, ok := r.entries[key]; ok {
		return a, nil
	}
	return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownAdapter, key,
		strings.Join(slices.Sorted(maps.Keys(r.entries)), ", "))
}

// Names lists the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.entries))
}

func canonical(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
