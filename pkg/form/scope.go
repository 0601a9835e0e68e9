package form

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// TypingScope controls how far a single edit's typing suppression reaches.
type TypingScope uint8

const (
	// TypingPerField suppresses errors only on the field being edited.
	TypingPerField TypingScope = iota
	// TypingFormWide suppresses errors on every field while any field is
	// being edited.
	TypingFormWide
)

// ParseTypingScope accepts "field" or "form" (case-insensitive). An empty
// string selects TypingPerField.
func ParseTypingScope(raw string) (TypingScope, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "field", "per-field":
		return TypingPerField, nil
	case "form", "form-wide":
		return TypingFormWide, nil
	default:
		return TypingPerField, fmt.Errorf("form: unknown typing scope %q", raw)
	}
}

func (s TypingScope) String() string {
	switch s {
	case TypingFormWide:
		return "form"
	default:
		return "field"
	}
}

// UnmarshalYAML decodes a scope name.
func (s *TypingScope) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseTypingScope(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML encodes the scope name.
func (s TypingScope) MarshalYAML() (any, error) {
	return s.String(), nil
}
