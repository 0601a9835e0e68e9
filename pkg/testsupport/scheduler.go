package testsupport

import (
	"sort"
	"sync"
	"time"

	"github.com/goliatone/go-formstate/pkg/debounce"
)

// ManualScheduler is a debounce.Scheduler driven by an explicit clock.
// Callbacks only run inside Advance, on the calling goroutine, which keeps
// timing tests deterministic and free of sleeps.
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	owner   *ManualScheduler
	due     time.Duration
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

// NewManualScheduler returns a scheduler whose clock starts at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc registers fn to run once the clock passes now+d.
func (m *ManualScheduler) AfterFunc(d time.Duration, fn func()) debounce.Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &manualTimer{
		owner: m,
		due:   m.now + d,
		seq:   m.seq,
		fn:    fn,
	}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves the clock forward by d, running every timer that comes due in
// due-time order. Timers armed by callbacks during Advance run too when they
// fall inside the window.
func (m *ManualScheduler) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	for {
		next := m.nextDueLocked(target)
		if next == nil {
			break
		}
		m.now = next.due
		next.fired = true
		m.mu.Unlock()
		next.fn()
		m.mu.Lock()
	}
	m.now = target
	m.compactLocked()
	m.mu.Unlock()
}

// Now returns the elapsed time since the scheduler was created.
func (m *ManualScheduler) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending returns how many timers are armed and not yet fired or stopped.
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, t := range m.timers {
		if !t.stopped && !t.fired {
			count++
		}
	}
	return count
}

func (m *ManualScheduler) nextDueLocked(limit time.Duration) *manualTimer {
	var candidates []*manualTimer
	for _, t := range m.timers {
		if t.stopped || t.fired || t.due > limit {
			continue
		}
		candidates = append(candidates, t)
	}
	if len(candidates) == 0 {
		return nil
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].due == candidates[j].due {
			return candidates[i].seq < candidates[j].seq
		}
		return candidates[i].due < candidates[j].due
	})
	return candidates[0]
}

func (m *ManualScheduler) compactLocked() {
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.stopped && !t.fired {
			live = append(live, t)
		}
	}
	m.timers = live
}

func (t *manualTimer) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}
