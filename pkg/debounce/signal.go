package debounce

import (
	"sync"
	"time"
)

// DefaultDelay is used when Wrap receives a non-positive delay.
const DefaultDelay = 500 * time.Millisecond

// Option configures a Signal.
type Option func(*Signal)

// WithScheduler overrides the scheduler used to arm timers.
func WithScheduler(scheduler Scheduler) Option {
	return func(s *Signal) {
		if scheduler != nil {
			s.scheduler = scheduler
		}
	}
}

// Signal is a debounced callback. The zero value is not usable; construct
// signals with Wrap.
type Signal struct {
	mu        sync.Mutex
	fn        func()
	delay     time.Duration
	scheduler Scheduler
	timer     Timer
	// gen identifies the most recent arming. A timer whose generation no
	// longer matches was superseded and must not run fn.
	gen  uint64
	live bool
}

// Wrap returns a live Signal that runs fn after delay of quiet.
func Wrap(fn func(), delay time.Duration, opts ...Option) *Signal {
	s := &Signal{
		fn:        fn,
		delay:     normalizeDelay(delay),
		scheduler: SystemScheduler{},
		live:      true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Call restarts the delay timer. Calls on a closed signal are ignored.
func (s *Signal) Call() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.live {
		return
	}
	s.stopLocked()
	gen := s.gen
	s.timer = s.scheduler.AfterFunc(s.delay, func() {
		s.fire(gen)
	})
}

// Rewrap swaps the callback and delay. Any timer armed by the previous
// wrapping is cancelled so it can neither fire twice nor fire stale.
func (s *Signal) Rewrap(fn func(), delay time.Duration) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()
	s.fn = fn
	s.delay = normalizeDelay(delay)
}

// Cancel drops the pending timer, if any. The signal stays usable.
func (s *Signal) Cancel() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

// Close cancels the pending timer and marks the signal dead. Close is
// idempotent; after it returns the callback never runs again.
func (s *Signal) Close() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.live = false
}

// Pending reports whether a timer is armed.
func (s *Signal) Pending() bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}

// Live reports whether the signal has not been closed.
func (s *Signal) Live() bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live
}

// Delay returns the current quiet period.
func (s *Signal) Delay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.delay
}

func (s *Signal) fire(gen uint64) {
	s.mu.Lock()
	if !s.live || gen != s.gen || s.timer == nil {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	s.gen++
	fn := s.fn
	s.mu.Unlock()

	if fn != nil {
		fn()
	}
}

func (s *Signal) stopLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
}

func normalizeDelay(delay time.Duration) time.Duration {
	if delay <= 0 {
		return DefaultDelay
	}
	return delay
}
