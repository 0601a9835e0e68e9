// Package form owns the live state of one form instance.
//
// A Form seeds one box.Box per descriptor, tracks which fields are being
// typed into, and derives a Presentation per field on demand. Validation
// errors are only surfaced once the user pauses: every edit raises the typing
// flag synchronously and re-arms a debounce.Signal that lowers it after the
// typing window (1500ms by default). By default the flag is kept per field so
// editing one field never hides another field's error; TypingFormWide restores
// a single shared flag.
//
// Go timers fire on their own goroutine, so Form serialises every state access
// behind a mutex and Close cancels all timers before returning. Listeners
// registered with WithOnSettle and WithOnChange run outside the lock.
package form
