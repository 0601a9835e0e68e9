// Package box pairs a field's raw text with the domain value parsed from it.
//
// A Box is immutable: edits replace the whole Box, keeping Raw and Parsed in
// step. State holds one Box per field key and is updated copy-on-write.
package box

// Parser converts raw input into a domain value. Parsers must be total: they
// return a best-effort value for every input, including "".
type Parser func(raw string) any

// Box couples raw input with its parsed value.
type Box struct {
	Raw    string
	Parsed any
}

// New parses raw with parse, or passes raw through unchanged when parse is
// nil.
func New(raw string, parse Parser) Box {
	if parse == nil {
		return Box{Raw: raw, Parsed: raw}
	}
	return Box{Raw: raw, Parsed: parse(raw)}
}

// State maps field keys to their current boxes.
type State map[string]Box

// With returns a copy of s with key replaced by b. Boxes for other keys are
// shared with s.
func (s State) With(key string, b Box) State {
	next := make(State, len(s)+1)
	for k, v := range s {
		next[k] = v
	}
	next[key] = b
	return next
}

// Values is a snapshot of parsed values keyed by field.
type Values map[string]any

// Unbox projects every box in state down to its parsed value.
func Unbox(state State) Values {
	out := make(Values, len(state))
	for key, b := range state {
		out[key] = b.Parsed
	}
	return out
}

// Get returns the value stored under key when it holds a T.
func Get[T any](values Values, key string) (T, bool) {
	var zero T
	raw, ok := values[key]
	if !ok {
		return zero, false
	}
	typed, ok := raw.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
