package form

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-formstate/pkg/box"
	"github.com/goliatone/go-formstate/pkg/debounce"
	"github.com/goliatone/go-formstate/pkg/field"
	"github.com/goliatone/go-formstate/pkg/validation"
)

// formWideKey is the typing slot shared by all fields in TypingFormWide.
const formWideKey = ""

// Form is the state controller for a single form instance.
type Form struct {
	id        string
	set       field.Set
	window    time.Duration
	scope     TypingScope
	scheduler debounce.Scheduler
	logger    *slog.Logger
	onSettle  func(key string)
	onChange  func(key string, value box.Box)

	mu      sync.Mutex
	state   box.State
	typing  map[string]bool
	signals map[string]*debounce.Signal
	closed  bool
}

// New validates set and seeds one box per field from its initial value.
func New(set field.Set, opts ...Option) (*Form, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}

	f := &Form{
		id:        uuid.NewString(),
		set:       set,
		window:    DefaultTypingWindow,
		scope:     TypingPerField,
		scheduler: debounce.SystemScheduler{},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	f.logger = f.logger.With(slog.String("form_id", f.id))

	f.state = make(box.State, len(set))
	for key, d := range set {
		f.state[key] = d.Box(d.Initial())
	}

	slots := []string{formWideKey}
	if f.scope == TypingPerField {
		slots = set.Keys()
	}
	f.typing = make(map[string]bool, len(slots))
	f.signals = make(map[string]*debounce.Signal, len(slots))
	for _, slot := range slots {
		f.typing[slot] = false
		f.signals[slot] = debounce.Wrap(f.settleFunc(slot), f.window, debounce.WithScheduler(f.scheduler))
	}

	f.logger.Debug("form created",
		slog.Int("fields", len(set)),
		slog.String("typing_scope", f.scope.String()),
		slog.Duration("typing_window", f.window),
	)
	return f, nil
}

// ID returns the instance identifier attached to log records.
func (f *Form) ID() string { return f.id }

// Fields returns the descriptor set the form was built from.
func (f *Form) Fields() field.Set { return f.set }

// Present derives the current presentation of key.
func (f *Form) Present(key string) (Presentation, error) {
	d, ok := f.set[key]
	if !ok {
		return Presentation{}, fmt.Errorf("%w: %q", ErrUnknownField, key)
	}

	f.mu.Lock()
	current := f.state[key]
	valid := validation.Field(f.set, f.state, key)
	typing := f.typing[f.slot(key)]
	f.mu.Unlock()

	p := Presentation{
		Key:   key,
		Value: current.Raw,
		Valid: valid,
		OnChangeText: func(raw string) {
			_ = f.Change(key, raw)
		},
		OnCleared: func() {
			_ = f.Clear(key)
		},
	}
	if valid == validation.Invalid && !typing && !validation.IsEmpty(current.Parsed) {
		p.Error = d.Message()
	}
	return p, nil
}

// Change replaces the box for key with one parsed from raw and starts (or
// restarts) the typing window.
func (f *Form) Change(key string, raw string) error {
	d, ok := f.set[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, key)
	}

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		f.logger.Debug("edit after close ignored", slog.String("field", key))
		return ErrClosed
	}
	next := d.Box(raw)
	f.state = f.state.With(key, next)
	slot := f.slot(key)
	f.typing[slot] = true
	// Armed under the lock so a timer from an earlier edit cannot settle the
	// slot between the flag going up and the new timer existing.
	f.signals[slot].Call()
	f.mu.Unlock()

	if f.onChange != nil {
		f.onChange(key, next)
	}
	return nil
}

// Clear is Change(key, "").
func (f *Form) Clear(key string) error {
	return f.Change(key, "")
}

// Valid reports whether every field is Valid or Indeterminate. It is
// recomputed on every call.
func (f *Form) Valid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return validation.Form(f.set, f.state)
}

// Report returns per-field validity and issues for the current state.
func (f *Form) Report() validation.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	return validation.Report(f.set, f.state)
}

// Snapshot returns the parsed value of every field.
func (f *Form) Snapshot() box.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return box.Unbox(f.state)
}

// Typing reports whether key is inside its typing window.
func (f *Form) Typing(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.typing[f.slot(key)]
}

// Close cancels every pending typing timer. Later edits return ErrClosed and
// typing flags stop changing once Close returns. Close is idempotent.
func (f *Form) Close() {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.closed = true
	for _, sig := range f.signals {
		sig.Close()
	}
	f.mu.Unlock()

	f.logger.Debug("form closed")
}

func (f *Form) slot(key string) string {
	if f.scope == TypingFormWide {
		return formWideKey
	}
	return key
}

func (f *Form) settleFunc(slot string) func() {
	return func() {
		f.mu.Lock()
		// A newer edit may have re-armed the signal while this callback
		// waited for the lock.
		if f.closed || f.signals[slot].Pending() {
			f.mu.Unlock()
			return
		}
		f.typing[slot] = false
		f.mu.Unlock()

		f.logger.Debug("typing settled", slog.String("slot", slot))
		if f.onSettle != nil {
			f.onSettle(slot)
		}
	}
}
