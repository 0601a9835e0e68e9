// Package formstate is the entry point for building a form: it validates the
// descriptor set, owns the form.Form controller, and returns adapted field
// props ready for a UI binding.
//
//	h, err := formstate.New(field.Set{
//		"name":   field.Text(func(v string) bool { return len(v) >= 3 }, "Invalid name"),
//		"mobile": field.Text(mobile.MatchString, "Invalid mobile").WithFormatter(format.Group(" ", 3)),
//	})
//	if err != nil { ... }
//	defer h.Close()
//
//	name, _ := h.Register("name")
//	name.OnChangeText("Krzychu")
package formstate

import (
	"errors"

	"github.com/goliatone/go-formstate/pkg/adapter"
	"github.com/goliatone/go-formstate/pkg/box"
	"github.com/goliatone/go-formstate/pkg/field"
	"github.com/goliatone/go-formstate/pkg/form"
	"github.com/goliatone/go-formstate/pkg/format"
	"github.com/goliatone/go-formstate/pkg/validation"
)

var (
	// ErrNilAdapter is returned when no adapter is supplied.
	ErrNilAdapter = errors.New("formstate: adapter is required")
	// ErrNilForm is returned by Bind and Named without a form.
	ErrNilForm = errors.New("formstate: form is required")
)

// Presentation aliases form.Presentation for callers that only import the
// root package.
type Presentation = form.Presentation

// Handle binds a form instance to an adapter.
type Handle[P any] struct {
	form    *form.Form
	adapter adapter.Adapter[P]
}

// New builds a form whose Register returns presentations unchanged.
func New(set field.Set, opts ...form.Option) (*Handle[form.Presentation], error) {
	return Create(set, adapter.PassThrough(), opts...)
}

// Create builds a form whose Register output is shaped by a.
func Create[P any](set field.Set, a adapter.Adapter[P], opts ...form.Option) (*Handle[P], error) {
	if a == nil {
		return nil, ErrNilAdapter
	}
	f, err := form.New(set, opts...)
	if err != nil {
		return nil, err
	}
	return Bind(f, a)
}

// Bind returns a handle over an existing form. Handles bound to the same form
// share its state, and closing any of them closes the form.
func Bind[P any](f *form.Form, a adapter.Adapter[P]) (*Handle[P], error) {
	if f == nil {
		return nil, ErrNilForm
	}
	if a == nil {
		return nil, ErrNilAdapter
	}
	return &Handle[P]{form: f, adapter: a}, nil
}

// Named binds f to the adapter registered under name in reg.
func Named(f *form.Form, reg *adapter.Registry, name string) (*Handle[any], error) {
	if reg == nil {
		return nil, ErrNilAdapter
	}
	a, err := reg.Lookup(name)
	if err != nil {
		return nil, err
	}
	return Bind(f, a)
}

// Register returns the adapted props for key. Descriptors carrying a
// formatter get it composed in front of OnChangeText before adaptation.
func (h *Handle[P]) Register(key string) (P, error) {
	p, err := h.form.Present(key)
	if err != nil {
		var zero P
		return zero, err
	}
	if d, ok := h.form.Fields().Lookup(key); ok {
		p = format.Wrap(p, d.Formatter())
	}
	return h.adapter.Adapt(p), nil
}

// MustRegister is Register for keys known to exist; it panics otherwise.
func (h *Handle[P]) MustRegister(key string) P {
	props, err := h.Register(key)
	if err != nil {
		panic(err)
	}
	return props
}

// Snapshot returns the parsed value of every field.
func (h *Handle[P]) Snapshot() box.Values { return h.form.Snapshot() }

// IsValid reports overall validity for the current state.
func (h *Handle[P]) IsValid() bool { return h.form.Valid() }

// Report returns per-field validity and issues.
func (h *Handle[P]) Report() validation.Result { return h.form.Report() }

// Form exposes the underlying controller.
func (h *Handle[P]) Form() *form.Form { return h.form }

// Close tears the form down, cancelling pending typing timers.
func (h *Handle[P]) Close() { h.form.Close() }
