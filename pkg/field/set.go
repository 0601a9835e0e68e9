package field

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Set maps every field key of a form to its descriptor. Sets are owned by the
// caller and treated as read-only by the engine.
type Set map[string]Descriptor

// Keys returns the field keys in sorted order.
func (s Set) Keys() []string {
	keys := make([]string, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Lookup returns the descriptor for key.
func (s Set) Lookup(key string) (Descriptor, bool) {
	d, ok := s[key]
	return d, ok
}

// Dependents returns the keys whose descriptors depend on key, sorted.
func (s Set) Dependents(key string) []string {
	var out []string
	for _, candidate := range s.Keys() {
		if d := s[candidate]; d.kind == KindDependent && d.dependsOn == key {
			out = append(out, candidate)
		}
	}
	return out
}

// Validate reports every structural problem in the set. The returned error
// joins one wrapped sentinel per broken descriptor.
func (s Set) Validate() error {
	var errs []error
	for _, key := range s.Keys() {
		if err := s.validateDescriptor(key); err != nil {
			errs = append(errs, err)
		}
	}
	for _, key := range s.Keys() {
		if cycle := s.cycleFrom(key); len(cycle) > 0 && cycle[0] == minKey(cycle) {
			errs = append(errs, fmt.Errorf("field: %s: %w", strings.Join(append(cycle, cycle[0]), " -> "), ErrDependencyCycle))
		}
	}
	return errors.Join(errs...)
}

func (s Set) validateDescriptor(key string) error {
	d := s[key]
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}
	if d.err != nil {
		return fmt.Errorf("field: %q: %w", key, d.err)
	}
	if !d.hasValidator() {
		return fmt.Errorf("field: %q: %w", key, ErrMissingValidator)
	}
	if d.kind != KindDependent {
		return nil
	}

	switch dep, ok := s[d.dependsOn]; {
	case d.dependsOn == key:
		return fmt.Errorf("field: %q: %w", key, ErrSelfDependency)
	case !ok:
		return fmt.Errorf("field: %q depends on %q: %w", key, d.dependsOn, ErrUnknownDependency)
	case dep.parsedType != nil && d.dependencyType != nil && !dep.parsedType.AssignableTo(d.dependencyType):
		return fmt.Errorf("field: %q expects %s from %q, got %s: %w",
			key, d.dependencyType, d.dependsOn, dep.parsedType, ErrDependencyType)
	}
	return nil
}

// cycleFrom follows the dependency chain starting at key and returns the keys
// of the loop when the chain comes back to key.
func (s Set) cycleFrom(key string) []string {
	path := []string{key}
	seen := map[string]struct{}{key: {}}
	current := key
	for {
		d, ok := s[current]
		if !ok || d.kind != KindDependent || d.dependsOn == "" || d.dependsOn == current {
			return nil
		}
		next := d.dependsOn
		if next == key {
			return path
		}
		if _, visited := seen[next]; visited {
			return nil
		}
		seen[next] = struct{}{}
		path = append(path, next)
		current = next
	}
}

func minKey(keys []string) string {
	best := keys[0]
	for _, k := range keys[1:] {
		if k < best {
			best = k
		}
	}
	return best
}
