// Package debounce collapses bursts of calls into a single delayed callback.
//
// A Signal owns one cancellable timer obtained from a Scheduler. Every Call
// restarts the timer; the wrapped function runs once the delay elapses with no
// further calls. Signals carry a liveness flag that starts true when the
// signal is wrapped and turns false on Close, and the flag is checked right
// before the callback runs, so a torn-down owner never observes a late fire.
//
// The Scheduler seam keeps the timing mechanism replaceable: production code
// uses SystemScheduler (time.AfterFunc) while tests drive a manual clock.
package debounce
