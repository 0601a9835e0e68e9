package validation

import "github.com/goccy/go-json"

// Validity is the outcome of validating one field.
type Validity int8

const (
	// Indeterminate means the field was not evaluated: it is optional and
	// currently empty.
	Indeterminate Validity = iota
	// Valid means the validator accepted the value.
	Valid
	// Invalid means the validator rejected the value.
	Invalid
)

// Of converts a validator outcome into a Validity.
func Of(ok bool) Validity {
	if ok {
		return Valid
	}
	return Invalid
}

// Acceptable reports whether v does not block form submission.
func (v Validity) Acceptable() bool {
	return v != Invalid
}

func (v Validity) outcome() (valid bool, evaluated bool) {
	switch v {
	case Valid:
		return true, true
	case Invalid:
		return false, true
	default:
		return false, false
	}
}

// Ptr returns nil for Indeterminate and a pointer to the outcome otherwise,
// matching bindings that model validity as an optional boolean.
func (v Validity) Ptr() *bool {
	valid, evaluated := v.outcome()
	if !evaluated {
		return nil
	}
	return &valid
}

func (v Validity) String() string {
	switch v {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "indeterminate"
	}
}

// MarshalJSON encodes Indeterminate as null and the others as booleans.
func (v Validity) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Ptr())
}

// MarshalYAML mirrors MarshalJSON.
func (v Validity) MarshalYAML() (any, error) {
	return v.Ptr(), nil
}

// UnmarshalJSON accepts null, true or false.
func (v *Validity) UnmarshalJSON(data []byte) error {
	var ptr *bool
	if err := json.Unmarshal(data, &ptr); err != nil {
		return err
	}
	if ptr == nil {
		*v = Indeterminate
		return nil
	}
	*v = Of(*ptr)
	return nil
}
