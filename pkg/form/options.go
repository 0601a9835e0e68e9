package form

import (
	"log/slog"
	"strings"
	"time"

	"github.com/goliatone/go-formstate/pkg/box"
	"github.com/goliatone/go-formstate/pkg/debounce"
)

// DefaultTypingWindow is the quiet period after which errors become visible.
const DefaultTypingWindow = 1500 * time.Millisecond

// Option customises a Form.
type Option func(*Form)

// WithTypingWindow overrides the typing quiet period. Non-positive values are
// ignored.
func WithTypingWindow(window time.Duration) Option {
	return func(f *Form) {
		if window > 0 {
			f.window = window
		}
	}
}

// WithTypingScope selects per-field or form-wide typing suppression.
func WithTypingScope(scope TypingScope) Option {
	return func(f *Form) {
		f.scope = scope
	}
}

// WithScheduler injects the timer service used for typing windows.
func WithScheduler(scheduler debounce.Scheduler) Option {
	return func(f *Form) {
		if scheduler != nil {
			f.scheduler = scheduler
		}
	}
}

// WithLogger routes lifecycle debug logs to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Form) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithID overrides the generated form instance identifier used in logs.
func WithID(id string) Option {
	return func(f *Form) {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			f.id = trimmed
		}
	}
}

// WithOnSettle registers a listener called when a typing window elapses. The
// key is the settled field, or "" when the typing scope is form-wide.
func WithOnSettle(fn func(key string)) Option {
	return func(f *Form) {
		f.onSettle = fn
	}
}

// WithOnChange registers a listener called after a field's box is replaced.
func WithOnChange(fn func(key string, value box.Box)) Option {
	return func(f *Form) {
		f.onChange = fn
	}
}
