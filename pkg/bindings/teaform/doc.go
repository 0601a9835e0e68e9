// Package teaform binds a form to a bubbletea program.
//
// Every keystroke in a focused input is forwarded to the field's
// OnChangeText, so formatters reshape the text as it is typed and the typing
// window restarts on each key. When a window elapses the form calls back on
// a timer goroutine; a Notifier turns that callback into a SettledMsg so the
// program re-renders and the now visible error appears.
//
// The Model is used from the bubbletea event loop only.
package teaform
