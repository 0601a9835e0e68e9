package debounce

import "time"

// Timer is a pending callback that can be cancelled.
type Timer interface {
	// Stop prevents the callback from running. It reports false when the
	// timer already fired or was stopped.
	Stop() bool
}

// Scheduler runs fn once after d elapses.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// SchedulerFunc adapts a function into a Scheduler.
type SchedulerFunc func(d time.Duration, fn func()) Timer

// AfterFunc calls the underlying function.
func (fn SchedulerFunc) AfterFunc(d time.Duration, cb func()) Timer {
	return fn(d, cb)
}

// SystemScheduler schedules callbacks on the runtime timer wheel. Callbacks
// run on their own goroutine.
type SystemScheduler struct{}

// AfterFunc delegates to time.AfterFunc.
func (SystemScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
