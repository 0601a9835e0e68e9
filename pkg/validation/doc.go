// Package validation evaluates field descriptors against the current form
// state.
//
// Results are tri-state. A non-required field whose parsed value is empty is
// Indeterminate ("not evaluated yet"), which is neither a pass nor a failure;
// Form treats it as acceptable. Dependent fields are always evaluated against
// the dependency's value at query time, never a value captured at edit time.
package validation
