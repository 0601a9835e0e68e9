package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrDeclined is returned when the user declines the final confirmation.
	ErrDeclined = errors.New("prompt: submission declined")
	// ErrUnresolved is returned when fields are still invalid after the
	// configured number of rounds.
	ErrUnresolved = errors.New("prompt: invalid fields remain")
)
