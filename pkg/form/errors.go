package form

import "errors"

var (
	// ErrUnknownField is returned when a key is not part of the form.
	ErrUnknownField = errors.New("form: unknown field")
	// ErrClosed is returned when a closed form receives an edit.
	ErrClosed = errors.New("form: closed")
)
