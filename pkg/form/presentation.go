package form

import "github.com/goliatone/go-formstate/pkg/validation"

// Presentation is the binding-agnostic view of one field. It is derived on
// demand and never stored by the Form.
type Presentation struct {
	Key   string              `yaml:"key"`
	Value string              `yaml:"value"`
	Valid validation.Validity `yaml:"valid"`
	// Error is the descriptor message when it should be shown, "" otherwise.
	Error        string           `yaml:"error,omitempty"`
	OnChangeText func(raw string) `yaml:"-"`
	OnCleared    func()           `yaml:"-"`
}

// HasError reports whether an error should be rendered.
func (p Presentation) HasError() bool {
	return p.Error != ""
}
