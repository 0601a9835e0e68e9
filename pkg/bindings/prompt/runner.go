package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	formstate "github.com/goliatone/go-formstate"
	"github.com/goliatone/go-formstate/pkg/box"
	"github.com/goliatone/go-formstate/pkg/form"
	"github.com/goliatone/go-formstate/pkg/validation"
)

const defaultMaxRounds = 3

// Field describes how a form field is prompted. Fields are asked in the
// order given.
type Field struct {
	Key   string
	Label string
	Help  string
}

// Option configures a Runner.
type Option func(*Runner)

// WithDriver overrides the prompt driver.
func WithDriver(driver Driver) Option {
	return func(r *Runner) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithMaxRounds bounds how many times invalid fields are re-asked after the
// first pass.
func WithMaxRounds(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.maxRounds = n
		}
	}
}

// WithConfirm toggles the final confirmation prompt.
func WithConfirm(enabled bool) Option {
	return func(r *Runner) {
		r.confirm = enabled
	}
}

// WithLogger routes debug logs to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Runner drives a form through a Driver.
type Runner struct {
	handle    *formstate.Handle[form.Presentation]
	fields    []Field
	driver    Driver
	maxRounds int
	confirm   bool
	logger    *slog.Logger
	answered  map[string]bool
}

// NewRunner prepares a runner for the given fields. Every field key must
// exist in the form.
func NewRunner(handle *formstate.Handle[form.Presentation], fields []Field, opts ...Option) (*Runner, error) {
	if handle == nil {
		return nil, errors.New("prompt: form handle is required")
	}
	if len(fields) == 0 {
		return nil, errors.New("prompt: at least one field is required")
	}
	for _, f := range fields {
		if _, ok := handle.Form().Fields().Lookup(f.Key); !ok {
			return nil, fmt.Errorf("prompt: %w: %q", form.ErrUnknownField, f.Key)
		}
	}

	r := &Runner{
		handle:    handle,
		fields:    fields,
		maxRounds: defaultMaxRounds,
		confirm:   true,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver()
	}
	return r, nil
}

// Run asks every field and returns the parsed snapshot once the form is
// valid and, when enabled, confirmed.
func (r *Runner) Run(ctx context.Context) (box.Values, error) {
	r.answered = make(map[string]bool, len(r.fields))
	for _, f := range r.fields {
		if err := r.ask(ctx, f); err != nil {
			return nil, err
		}
	}

	for round := 0; !r.handle.IsValid(); round++ {
		if round >= r.maxRounds {
			return nil, fmt.Errorf("%w: %s", ErrUnresolved, issueKeys(r.handle.Report()))
		}
		report := r.handle.Report()
		r.logger.Debug("re-asking invalid fields", slog.Int("round", round+1), slog.Int("issues", len(report.Issues)))
		for _, issue := range report.Issues {
			if err := r.driver.Info(ctx, fmt.Sprintf("%s: %s", r.label(issue.Field), issue.Message)); err != nil {
				return nil, err
			}
			if err := r.ask(ctx, r.field(issue.Field)); err != nil {
				return nil, err
			}
		}
	}

	if r.confirm {
		ok, err := r.driver.Confirm(ctx, ConfirmConfig{Message: "Submit?", Default: true})
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrDeclined
		}
	}
	return r.handle.Snapshot(), nil
}

func (r *Runner) ask(ctx context.Context, f Field) error {
	current, err := r.handle.Register(f.Key)
	if err != nil {
		return err
	}
	message := r.handle.Form().Fields()[f.Key].Message()

	answer, err := r.driver.Input(ctx, InputConfig{
		Message: r.label(f.Key),
		Default: current.Value,
		Help:    f.Help,
		Validator: func(answer string) error {
			props, err := r.handle.Register(f.Key)
			if err != nil {
				return err
			}
			props.OnChangeText(answer)
			// A submitted answer is final, so validity is checked directly
			// instead of waiting for the typing window.
			after, err := r.handle.Register(f.Key)
			if err != nil {
				return err
			}
			if after.Valid == validation.Invalid {
				return errors.New(message)
			}
			return nil
		},
	})
	if err != nil {
		return err
	}
	// Drivers that skip validators still get the answer stored.
	if current, err = r.handle.Register(f.Key); err != nil {
		return err
	}
	current.OnChangeText(answer)
	r.answered[f.Key] = true
	return r.recheckDependents(ctx, f.Key)
}

// recheckDependents re-asks answered fields that key's new value broke.
func (r *Runner) recheckDependents(ctx context.Context, key string) error {
	fields := r.handle.Report().Fields
	for _, dep := range r.handle.Form().Fields().Dependents(key) {
		if !r.answered[dep] || fields[dep] != validation.Invalid {
			continue
		}
		r.logger.Debug("dependency changed, re-asking", slog.String("field", dep), slog.String("dependency", key))
		message := r.handle.Form().Fields()[dep].Message()
		if err := r.driver.Info(ctx, fmt.Sprintf("%s: %s", r.label(dep), message)); err != nil {
			return err
		}
		if err := r.ask(ctx, r.field(dep)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) field(key string) Field {
	for _, f := range r.fields {
		if f.Key == key {
			return f
		}
	}
	return Field{Key: key}
}

func (r *Runner) label(key string) string {
	if f := r.field(key); strings.TrimSpace(f.Label) != "" {
		return f.Label
	}
	return key
}

func issueKeys(result validation.Result) string {
	keys := make([]string, 0, len(result.Issues))
	for _, issue := range result.Issues {
		keys = append(keys, issue.Field)
	}
	return strings.Join(keys, ", ")
}
