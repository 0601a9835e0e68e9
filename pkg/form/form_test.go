package form_test

import (
	"bytes"
	"errors"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formstate/pkg/box"
	"github.com/goliatone/go-formstate/pkg/field"
	"github.com/goliatone/go-formstate/pkg/form"
	"github.com/goliatone/go-formstate/pkg/testsupport"
	"github.com/goliatone/go-formstate/pkg/validation"
)

const window = form.DefaultTypingWindow

var mobilePattern = regexp.MustCompile(`^[0-9]{9}$`)

func contactSet() field.Set {
	return field.Set{
		"name":   field.Text(func(v string) bool { return len(v) >= 3 }, "Invalid name"),
		"mobile": field.Text(mobilePattern.MatchString, "Invalid mobile"),
	}
}

func newForm(t *testing.T, set field.Set, opts ...form.Option) (*form.Form, *testsupport.ManualScheduler) {
	t.Helper()
	clock := testsupport.NewManualScheduler()
	f, err := form.New(set, append([]form.Option{form.WithScheduler(clock)}, opts...)...)
	if err != nil {
		t.Fatalf("new form: %v", err)
	}
	t.Cleanup(f.Close)
	return f, clock
}

func present(t *testing.T, f *form.Form, key string) form.Presentation {
	t.Helper()
	p, err := f.Present(key)
	if err != nil {
		t.Fatalf("present %q: %v", key, err)
	}
	return p
}

func TestNew_InitialState(t *testing.T) {
	parse := func(raw string) int {
		n, _ := strconv.Atoi(raw)
		return n
	}
	set := field.Set{
		"nickname": field.Text(func(string) bool { return false }, "x").Optional(),
		"age":      field.Of(parse, func(n int) bool { return n > 0 }, "x").Optional(),
		"city":     field.Text(func(string) bool { return true }, "x").Optional().WithInitial("Gdansk"),
	}
	f, _ := newForm(t, set)

	want := box.Values{"nickname": "", "age": 0, "city": "Gdansk"}
	if diff := cmp.Diff(want, f.Snapshot()); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
	if !f.Valid() {
		t.Fatalf("all-optional untouched form should be valid")
	}
	for _, key := range set.Keys() {
		if f.Typing(key) {
			t.Fatalf("typing must start false for %q", key)
		}
	}
}

func TestNew_RejectsMalformedSet(t *testing.T) {
	set := field.Set{
		"confirm": field.TextDependsOn("missing", func(v, dep string) bool { return v == dep }, "x"),
	}
	if _, err := form.New(set); !errors.Is(err, field.ErrUnknownDependency) {
		t.Fatalf("want ErrUnknownDependency, got %v", err)
	}
}

func TestNew_EmptySetIsValid(t *testing.T) {
	f, err := form.New(field.Set{})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer f.Close()

	if !f.Valid() {
		t.Fatalf("a form without fields is valid")
	}
	if diff := cmp.Diff(box.Values{}, f.Snapshot()); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestPresent_TypingSuppressesError(t *testing.T) {
	f, clock := newForm(t, contactSet())

	present(t, f, "name").OnChangeText("x")

	p := present(t, f, "name")
	if p.Valid != validation.Invalid {
		t.Fatalf("want invalid, got %s", p.Valid)
	}
	if p.Error != "" {
		t.Fatalf("error must be hidden while typing, got %q", p.Error)
	}

	clock.Advance(window - time.Millisecond)
	if p := present(t, f, "name"); p.Error != "" {
		t.Fatalf("error shown before window elapsed: %q", p.Error)
	}

	clock.Advance(time.Millisecond)
	if p := present(t, f, "name"); p.Error != "Invalid name" {
		t.Fatalf("want error after window, got %q", p.Error)
	}
}

func TestPresent_EditsRestartWindow(t *testing.T) {
	f, clock := newForm(t, contactSet())

	present(t, f, "name").OnChangeText("a")
	clock.Advance(time.Second)
	present(t, f, "name").OnChangeText("ab")
	clock.Advance(time.Second)

	if !f.Typing("name") {
		t.Fatalf("second edit must restart the typing window")
	}
	if p := present(t, f, "name"); p.Error != "" {
		t.Fatalf("error visible during restarted window: %q", p.Error)
	}

	clock.Advance(window)
	if f.Typing("name") {
		t.Fatalf("typing should settle after a quiet window")
	}
	if p := present(t, f, "name"); p.Error != "Invalid name" {
		t.Fatalf("want error, got %q", p.Error)
	}
}

func TestPresent_PerFieldTypingIsolation(t *testing.T) {
	f, clock := newForm(t, contactSet())

	present(t, f, "name").OnChangeText("ab")
	clock.Advance(window)
	if p := present(t, f, "name"); p.Error != "Invalid name" {
		t.Fatalf("want name error, got %q", p.Error)
	}

	present(t, f, "mobile").OnChangeText("1")
	if p := present(t, f, "name"); p.Error != "Invalid name" {
		t.Fatalf("editing mobile must not hide the name error, got %q", p.Error)
	}
	if p := present(t, f, "mobile"); p.Error != "" {
		t.Fatalf("mobile error must be suppressed while typing, got %q", p.Error)
	}
}

func TestPresent_FormWideTyping(t *testing.T) {
	f, clock := newForm(t, contactSet(), form.WithTypingScope(form.TypingFormWide))

	present(t, f, "name").OnChangeText("ab")
	clock.Advance(window)
	if p := present(t, f, "name"); p.Error != "Invalid name" {
		t.Fatalf("want name error, got %q", p.Error)
	}

	present(t, f, "mobile").OnChangeText("1")
	if p := present(t, f, "name"); p.Error != "" {
		t.Fatalf("form-wide typing should hide every error, got %q", p.Error)
	}

	clock.Advance(window)
	if p := present(t, f, "name"); p.Error != "Invalid name" {
		t.Fatalf("want name error after settle, got %q", p.Error)
	}
	if p := present(t, f, "mobile"); p.Error != "Invalid mobile" {
		t.Fatalf("want mobile error after settle, got %q", p.Error)
	}
}

func TestPresent_DependentFollowsDependency(t *testing.T) {
	set := field.Set{
		"mobile": field.Text(mobilePattern.MatchString, "Invalid mobile"),
		"confirmMobile": field.TextDependsOn("mobile", func(v, dep string) bool {
			return v == dep
		}, "Numbers do not match"),
	}
	f, clock := newForm(t, set)

	present(t, f, "mobile").OnChangeText("123456789")
	present(t, f, "confirmMobile").OnChangeText("123456789")
	clock.Advance(window)

	if p := present(t, f, "confirmMobile"); p.Valid != validation.Valid {
		t.Fatalf("want valid confirmation, got %s", p.Valid)
	}

	present(t, f, "mobile").OnChangeText("987654321")
	clock.Advance(window)

	p := present(t, f, "confirmMobile")
	if p.Valid != validation.Invalid {
		t.Fatalf("confirmation must be re-evaluated against the new mobile, got %s", p.Valid)
	}
	if p.Error != "Numbers do not match" {
		t.Fatalf("want mismatch error, got %q", p.Error)
	}
	if f.Valid() {
		t.Fatalf("form must be invalid when confirmation mismatches")
	}
}

func TestPresent_OptionalEmptyHasNoError(t *testing.T) {
	set := field.Set{
		"nickname": field.Text(func(string) bool { return false }, "Invalid nickname").Optional(),
	}
	f, clock := newForm(t, set)

	present(t, f, "nickname").OnChangeText("abc")
	present(t, f, "nickname").OnChangeText("")
	clock.Advance(window)

	p := present(t, f, "nickname")
	if p.Valid != validation.Indeterminate {
		t.Fatalf("want indeterminate, got %s", p.Valid)
	}
	if p.Error != "" {
		t.Fatalf("want no error, got %q", p.Error)
	}
	if !f.Valid() {
		t.Fatalf("indeterminate fields must not invalidate the form")
	}
}

func TestPresent_ClearEqualsEmptyChange(t *testing.T) {
	cleared, clearedClock := newForm(t, contactSet())
	changed, changedClock := newForm(t, contactSet())

	present(t, cleared, "name").OnChangeText("Krzychu")
	present(t, changed, "name").OnChangeText("Krzychu")

	present(t, cleared, "name").OnCleared()
	present(t, changed, "name").OnChangeText("")
	clearedClock.Advance(window)
	changedClock.Advance(window)

	if diff := cmp.Diff(changed.Snapshot(), cleared.Snapshot()); diff != "" {
		t.Fatalf("state mismatch (-change +clear):\n%s", diff)
	}
	a, b := present(t, changed, "name"), present(t, cleared, "name")
	if a.Value != b.Value || a.Valid != b.Valid || a.Error != b.Error {
		t.Fatalf("presentations differ: change=%+v clear=%+v", a, b)
	}
	if changed.Valid() != cleared.Valid() {
		t.Fatalf("validity differs")
	}
}

func TestForm_EndToEnd(t *testing.T) {
	f, clock := newForm(t, contactSet())

	if f.Valid() {
		t.Fatalf("required empty fields must make the form invalid")
	}

	clock.Advance(window)
	for _, key := range []string{"name", "mobile"} {
		p := present(t, f, key)
		if p.Valid != validation.Invalid {
			t.Fatalf("%s: want invalid, got %s", key, p.Valid)
		}
		// Errors are never shown for empty values.
		if p.Error != "" {
			t.Fatalf("%s: empty field shows error %q", key, p.Error)
		}
	}

	present(t, f, "name").OnChangeText("ab")
	present(t, f, "mobile").OnChangeText("123 123 123")
	clock.Advance(window)
	if p := present(t, f, "name"); p.Error != "Invalid name" {
		t.Fatalf("want name error, got %q", p.Error)
	}
	if p := present(t, f, "mobile"); p.Error != "Invalid mobile" {
		t.Fatalf("want mobile error, got %q", p.Error)
	}

	present(t, f, "name").OnChangeText("Krzychu")
	present(t, f, "mobile").OnChangeText("123456789")
	clock.Advance(window)

	if !f.Valid() {
		t.Fatalf("form should be valid: %+v", f.Report())
	}
	for _, key := range []string{"name", "mobile"} {
		if p := present(t, f, key); p.Error != "" || p.Valid != validation.Valid {
			t.Fatalf("%s: want valid without error, got %+v", key, p)
		}
	}
	want := box.Values{"name": "Krzychu", "mobile": "123456789"}
	if diff := cmp.Diff(want, f.Snapshot()); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestForm_CloseCancelsTimers(t *testing.T) {
	var settled []string
	f, clock := newForm(t, contactSet(), form.WithOnSettle(func(key string) {
		settled = append(settled, key)
	}))

	present(t, f, "name").OnChangeText("ab")
	f.Close()
	f.Close()
	clock.Advance(window)

	if clock.Pending() != 0 {
		t.Fatalf("close must cancel pending timers, %d left", clock.Pending())
	}
	if len(settled) != 0 {
		t.Fatalf("settle listener fired after close: %v", settled)
	}
	if !f.Typing("name") {
		t.Fatalf("typing flag must not change after close")
	}
	if err := f.Change("name", "abc"); !errors.Is(err, form.ErrClosed) {
		t.Fatalf("want ErrClosed, got %v", err)
	}
	if got := f.Snapshot()["name"]; got != "ab" {
		t.Fatalf("closed form mutated: %v", got)
	}
}

func TestForm_Listeners(t *testing.T) {
	var changes []string
	var settled []string
	f, clock := newForm(t, contactSet(),
		form.WithOnChange(func(key string, b box.Box) {
			changes = append(changes, key+"="+b.Raw)
		}),
		form.WithOnSettle(func(key string) {
			settled = append(settled, key)
		}),
	)

	present(t, f, "name").OnChangeText("a")
	present(t, f, "name").OnChangeText("ab")
	present(t, f, "mobile").OnChangeText("1")
	clock.Advance(window)

	if diff := cmp.Diff([]string{"name=a", "name=ab", "mobile=1"}, changes); diff != "" {
		t.Fatalf("changes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"name", "mobile"}, settled); diff != "" {
		t.Fatalf("settled mismatch (-want +got):\n%s", diff)
	}
}

func TestForm_UnknownField(t *testing.T) {
	f, _ := newForm(t, contactSet())

	if _, err := f.Present("nope"); !errors.Is(err, form.ErrUnknownField) {
		t.Fatalf("want ErrUnknownField, got %v", err)
	}
	if err := f.Change("nope", "x"); !errors.Is(err, form.ErrUnknownField) {
		t.Fatalf("want ErrUnknownField, got %v", err)
	}
}

func TestForm_LogsLifecycle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	f, clock := newForm(t, contactSet(), form.WithLogger(logger), form.WithID("contact"))

	present(t, f, "name").OnChangeText("Krzychu")
	clock.Advance(window)
	f.Close()

	out := buf.String()
	for _, want := range []string{"form created", "typing settled", "form closed", "form_id=contact"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Krzychu") {
		t.Fatalf("field values must not be logged:\n%s", out)
	}
}
