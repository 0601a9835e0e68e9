package field

import (
	"reflect"

	"github.com/goliatone/go-formstate/pkg/box"
)

// Kind discriminates the descriptor variants.
type Kind uint8

const (
	// KindIndependent fields validate only their own value.
	KindIndependent Kind = iota
	// KindDependent fields validate against another field's value too.
	KindDependent
)

func (k Kind) String() string {
	switch k {
	case KindIndependent:
		return "independent"
	case KindDependent:
		return "dependent"
	default:
		return "unknown"
	}
}

// Formatter rewrites raw input before it is stored. Formatters must be total
// and cheap; they run on every keystroke.
type Formatter func(input string) string

// Descriptor describes a single field. Build descriptors with Text, Of,
// TextDependsOn or OfDependsOn and refine them with the chainable modifiers;
// every modifier returns a copy.
type Descriptor struct {
	kind      Kind
	message   string
	initial   string
	required  bool
	dependsOn string
	parse     box.Parser
	formatter Formatter

	validate          func(value any) bool
	validateDependent func(value, dependency any) bool

	parsedType     reflect.Type
	dependencyType reflect.Type
	err            error
}

// Text declares an independent string field validated by validator.
func Text(validator func(string) bool, message string) Descriptor {
	return Of[string](nil, validator, message)
}

// Of declares an independent field whose raw input is converted with parse.
// A nil parse is only accepted when T is string.
func Of[T any](parse func(string) T, validator func(T) bool, message string) Descriptor {
	d := newDescriptor[T](KindIndependent, parse, message)
	if validator == nil {
		d.err = ErrMissingValidator
		return d
	}
	d.validate = func(value any) bool {
		typed, ok := value.(T)
		if !ok {
			return false
		}
		return validator(typed)
	}
	return d
}

// TextDependsOn declares a string field validated against the current parsed
// value of dependsOn.
func TextDependsOn[D any](dependsOn string, validator func(value string, dependency D) bool, message string) Descriptor {
	return OfDependsOn[string, D](dependsOn, nil, validator, message)
}

// OfDependsOn declares a parsed field validated against the current parsed
// value of dependsOn. D must match the parsed type of the dependency; Set
// validation enforces this.
func OfDependsOn[T, D any](dependsOn string, parse func(string) T, validator func(value T, dependency D) bool, message string) Descriptor {
	d := newDescriptor[T](KindDependent, parse, message)
	d.dependsOn = dependsOn
	d.dependencyType = reflect.TypeFor[D]()
	if validator == nil {
		d.err = ErrMissingValidator
		return d
	}
	d.validateDependent = func(value, dependency any) bool {
		typed, ok := value.(T)
		if !ok {
			return false
		}
		dep, ok := dependency.(D)
		if !ok {
			return false
		}
		return validator(typed, dep)
	}
	return d
}

func newDescriptor[T any](kind Kind, parse func(string) T, message string) Descriptor {
	d := Descriptor{
		kind:       kind,
		message:    message,
		required:   true,
		parsedType: reflect.TypeFor[T](),
	}
	switch {
	case parse != nil:
		d.parse = func(raw string) any { return parse(raw) }
	case d.parsedType.Kind() != reflect.String:
		d.err = ErrMissingParser
	case d.parsedType != reflect.TypeFor[string]():
		// Named string types still need converting from the raw text.
		target := d.parsedType
		d.parse = func(raw string) any {
			return reflect.ValueOf(raw).Convert(target).Interface()
		}
	}
	return d
}

// Optional marks the field as not required: an empty value is left
// unevaluated instead of being handed to the validator.
func (d Descriptor) Optional() Descriptor {
	d.required = false
	return d
}

// WithRequired sets the required flag explicitly.
func (d Descriptor) WithRequired(required bool) Descriptor {
	d.required = required
	return d
}

// WithInitial seeds the field's raw value.
func (d Descriptor) WithInitial(raw string) Descriptor {
	d.initial = raw
	return d
}

// WithFormatter attaches a formatter applied to UI input before storage.
func (d Descriptor) WithFormatter(fn Formatter) Descriptor {
	d.formatter = fn
	return d
}

// WithMessage replaces the error message.
func (d Descriptor) WithMessage(message string) Descriptor {
	d.message = message
	return d
}

// Kind reports the descriptor variant.
func (d Descriptor) Kind() Kind { return d.kind }

// Message is the error text shown when the field is invalid.
func (d Descriptor) Message() string { return d.message }

// Initial is the raw value used to seed the field.
func (d Descriptor) Initial() string { return d.initial }

// Required reports whether empty values are still validated.
func (d Descriptor) Required() bool { return d.required }

// DependsOn is the key this field validates against. Empty for independent
// fields.
func (d Descriptor) DependsOn() string { return d.dependsOn }

// Parser returns the erased parser; nil means identity.
func (d Descriptor) Parser() box.Parser { return d.parse }

// Formatter returns the optional input formatter.
func (d Descriptor) Formatter() Formatter { return d.formatter }

// ParsedType is the Go type produced by the parser.
func (d Descriptor) ParsedType() reflect.Type { return d.parsedType }

// Box parses raw into a box using the descriptor's parser.
func (d Descriptor) Box(raw string) box.Box {
	return box.New(raw, d.parse)
}

// Check runs the independent validator. It reports false for dependent
// descriptors; use CheckWith for those.
func (d Descriptor) Check(value any) bool {
	if d.kind != KindIndependent || d.validate == nil {
		return false
	}
	return d.validate(value)
}

// CheckWith runs the dependent validator against dependency.
func (d Descriptor) CheckWith(value, dependency any) bool {
	if d.kind != KindDependent || d.validateDependent == nil {
		return false
	}
	return d.validateDependent(value, dependency)
}

func (d Descriptor) hasValidator() bool {
	switch d.kind {
	case KindIndependent:
		return d.validate != nil
	case KindDependent:
		return d.validateDependent != nil
	default:
		return false
	}
}
