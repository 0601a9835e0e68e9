package validation

import (
	"math"
	"reflect"

	"github.com/goliatone/go-formstate/pkg/box"
	"github.com/goliatone/go-formstate/pkg/field"
)

// Issue describes an invalid field.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result captures the validity of a whole form along with per-field detail.
type Result struct {
	Valid  bool                `json:"valid"`
	Fields map[string]Validity `json:"fields"`
	Issues []Issue             `json:"issues,omitempty"`
}

// Field validates key against the current state. Unknown keys and dependent
// fields whose dependency is missing from state are Invalid; field.Set
// validation prevents both for sets built through the engine.
func Field(set field.Set, state box.State, key string) Validity {
	d, ok := set[key]
	if !ok {
		return Invalid
	}
	current, ok := state[key]
	if !ok {
		return Invalid
	}

	if !d.Required() && IsEmpty(current.Parsed) {
		return Indeterminate
	}

	if d.Kind() == field.KindDependent {
		dep, ok := state[d.DependsOn()]
		if !ok {
			return Invalid
		}
		return Of(d.CheckWith(current.Parsed, dep.Parsed))
	}
	return Of(d.Check(current.Parsed))
}

// Form reports whether every field is Valid or Indeterminate.
func Form(set field.Set, state box.State) bool {
	for key := range set {
		if !Field(set, state, key).Acceptable() {
			return false
		}
	}
	return true
}

// Report validates every field and collects issues in key order.
func Report(set field.Set, state box.State) Result {
	result := Result{
		Valid:  true,
		Fields: make(map[string]Validity, len(set)),
	}
	for _, key := range set.Keys() {
		validity := Field(set, state, key)
		result.Fields[key] = validity
		if validity == Invalid {
			result.Valid = false
			result.Issues = append(result.Issues, Issue{
				Field:   key,
				Message: set[key].Message(),
			})
		}
	}
	return result
}

// IsEmpty reports whether a parsed value counts as empty: nil, "", false,
// numeric zero or NaN, empty collections, nil pointers, and zero structs.
func IsEmpty(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	default:
		return rv.IsZero()
	}
}
