// Package prompt binds a form to line-oriented terminal prompts.
//
// Each field is asked in turn through a Driver (survey by default). A
// submitted answer is a finished edit: it is fed through the field's
// OnChangeText, so formatters run, and the answer is rejected with the
// descriptor's message while the field is invalid. After every field was
// answered the runner re-asks any field that became invalid through a
// dependency, then asks for confirmation.
package prompt
