package field

import "errors"

var (
	// ErrEmptyKey is returned when a Set contains a blank key.
	ErrEmptyKey = errors.New("field: key is required")
	// ErrMissingValidator is returned for descriptors without a validator.
	ErrMissingValidator = errors.New("field: validator is required")
	// ErrMissingParser is returned when a non-string field omits its parser.
	ErrMissingParser = errors.New("field: parser is required for non-string values")
	// ErrUnknownDependency is returned when DependsOn names a key outside the set.
	ErrUnknownDependency = errors.New("field: dependency not found")
	// ErrSelfDependency is returned when a field depends on itself.
	ErrSelfDependency = errors.New("field: field cannot depend on itself")
	// ErrDependencyCycle is returned when dependent fields form a loop.
	ErrDependencyCycle = errors.New("field: dependency cycle")
	// ErrDependencyType is returned when the dependency's parsed type cannot
	// be handed to the dependent validator.
	ErrDependencyType = errors.New("field: dependency type mismatch")
)
