package prompt_test

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"

	formstate "github.com/goliatone/go-formstate"
	"github.com/goliatone/go-formstate/pkg/bindings/prompt"
	"github.com/goliatone/go-formstate/pkg/box"
	"github.com/goliatone/go-formstate/pkg/field"
	"github.com/goliatone/go-formstate/pkg/form"
	"github.com/goliatone/go-formstate/pkg/format"
	"github.com/goliatone/go-formstate/pkg/testsupport"
)

var mobilePattern = regexp.MustCompile(`^[0-9]{9}$`)

// scriptedDriver answers prompts from a queue per message, feeding each
// answer through the validator the way survey re-asks on failure.
type scriptedDriver struct {
	answers  map[string][]string
	confirm  bool
	rejected []string
	infos    []string
	asked    []string
}

func (d *scriptedDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	d.asked = append(d.asked, cfg.Message)
	for len(d.answers[cfg.Message]) > 0 {
		answer := d.answers[cfg.Message][0]
		d.answers[cfg.Message] = d.answers[cfg.Message][1:]
		if cfg.Validator != nil {
			if err := cfg.Validator(answer); err != nil {
				d.rejected = append(d.rejected, fmt.Sprintf("%s=%q: %v", cfg.Message, answer, err))
				continue
			}
		}
		return answer, nil
	}
	return "", prompt.ErrAborted
}

func (d *scriptedDriver) Confirm(context.Context, prompt.ConfirmConfig) (bool, error) {
	return d.confirm, nil
}

func (d *scriptedDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func contactHandle(t *testing.T) *formstate.Handle[form.Presentation] {
	t.Helper()
	set := field.Set{
		"name": field.Text(func(v string) bool { return len(v) >= 3 }, "Invalid name"),
		"mobile": field.Text(mobilePattern.MatchString, "Invalid mobile").
			WithFormatter(format.DigitsOnly),
		"confirmMobile": field.TextDependsOn("mobile", func(v, dep string) bool {
			return v == dep
		}, "Numbers do not match").WithFormatter(format.DigitsOnly),
	}
	h, err := formstate.New(set, form.WithScheduler(testsupport.NewManualScheduler()))
	if err != nil {
		t.Fatalf("new form: %v", err)
	}
	t.Cleanup(h.Close)
	return h
}

var contactFields = []prompt.Field{
	{Key: "name", Label: "Name"},
	{Key: "mobile", Label: "Mobile"},
	{Key: "confirmMobile", Label: "Confirm mobile"},
}

func TestRunner_CollectsValidForm(t *testing.T) {
	h := contactHandle(t)
	driver := &scriptedDriver{
		confirm: true,
		answers: map[string][]string{
			"Name":           {"ab", "Krzychu"},
			"Mobile":         {"123-456-789"},
			"Confirm mobile": {"123 456 780", "123 456 789"},
		},
	}
	runner, err := prompt.NewRunner(h, contactFields, prompt.WithDriver(driver))
	if err != nil {
		t.Fatalf("new runner: %v", err)
	}

	got, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := box.Values{"name": "Krzychu", "mobile": "123456789", "confirmMobile": "123456789"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	wantRejected := []string{
		`Name="ab": Invalid name`,
		`Confirm mobile="123 456 780": Numbers do not match`,
	}
	if diff := cmp.Diff(wantRejected, driver.rejected); diff != "" {
		t.Fatalf("rejections mismatch (-want +got):\n%s", diff)
	}
}

func TestRunner_DeclinedSubmission(t *testing.T) {
	h := contactHandle(t)
	driver := &scriptedDriver{
		answers: map[string][]string{
			"Name":           {"Krzychu"},
			"Mobile":         {"123456789"},
			"Confirm mobile": {"123456789"},
		},
	}
	runner, err := prompt.NewRunner(h, contactFields, prompt.WithDriver(driver))
	if err != nil {
		t.Fatalf("new runner: %v", err)
	}
	if _, err := runner.Run(context.Background()); !errors.Is(err, prompt.ErrDeclined) {
		t.Fatalf("want ErrDeclined, got %v", err)
	}
}

func TestRunner_ReasksFieldsBrokenByDependency(t *testing.T) {
	h := contactHandle(t)
	// An empty confirmation matches the empty mobile, then breaks once
	// mobile is answered and must be asked again.
	fields := []prompt.Field{
		{Key: "name", Label: "Name"},
		{Key: "confirmMobile", Label: "Confirm mobile"},
		{Key: "mobile", Label: "Mobile"},
	}
	driver := &scriptedDriver{
		confirm: true,
		answers: map[string][]string{
			"Name":           {"Krzychu"},
			"Confirm mobile": {"", "123456789"},
			"Mobile":         {"123456789"},
		},
	}
	runner, err := prompt.NewRunner(h, fields, prompt.WithDriver(driver))
	if err != nil {
		t.Fatalf("new runner: %v", err)
	}
	got, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v (infos %v)", err, driver.infos)
	}
	if diff := cmp.Diff([]string{"Confirm mobile: Numbers do not match"}, driver.infos); diff != "" {
		t.Fatalf("infos mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Name", "Confirm mobile", "Mobile", "Confirm mobile"}, driver.asked); diff != "" {
		t.Fatalf("asked mismatch (-want +got):\n%s", diff)
	}
	if got["confirmMobile"] != "123456789" {
		t.Fatalf("confirmation not updated: %v", got)
	}
}

func TestRunner_Aborted(t *testing.T) {
	h := contactHandle(t)
	driver := &scriptedDriver{answers: map[string][]string{"Name": {"ab"}}}
	runner, err := prompt.NewRunner(h, contactFields, prompt.WithDriver(driver))
	if err != nil {
		t.Fatalf("new runner: %v", err)
	}
	if _, err := runner.Run(context.Background()); !errors.Is(err, prompt.ErrAborted) {
		t.Fatalf("want ErrAborted, got %v", err)
	}
}

func TestNewRunner_Validation(t *testing.T) {
	h := contactHandle(t)
	if _, err := prompt.NewRunner(nil, contactFields); err == nil {
		t.Fatalf("nil handle should fail")
	}
	if _, err := prompt.NewRunner(h, nil); err == nil {
		t.Fatalf("empty field list should fail")
	}
	if _, err := prompt.NewRunner(h, []prompt.Field{{Key: "missing"}}); !errors.Is(err, form.ErrUnknownField) {
		t.Fatalf("want ErrUnknownField, got %v", err)
	}
}
