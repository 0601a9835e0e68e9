// Package format decorates a field's change handler with input formatters.
//
// Formatting is layered on top of the form controller: Wrap composes a
// Formatter in front of Presentation.OnChangeText so raw UI input is rewritten
// (upper-cased, grouped with separators, stripped of markup) before it is
// stored and validated. Validation and typing suppression are unaffected.
package format
