package adapter

import "github.com/goliatone/go-formstate/pkg/form"

// Adapter converts a presentation into binding-specific props.
type Adapter[P any] interface {
	Adapt(form.Presentation) P
}

// Func adapts a function into an Adapter.
type Func[P any] func(form.Presentation) P

// Adapt calls the underlying function.
func (fn Func[P]) Adapt(p form.Presentation) P {
	return fn(p)
}

// PassThrough returns presentations unchanged.
func PassThrough() Adapter[form.Presentation] {
	return Func[form.Presentation](func(p form.Presentation) form.Presentation {
		return p
	})
}
