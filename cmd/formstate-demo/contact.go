package main

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-formstate/pkg/bindings/prompt"
	"github.com/goliatone/go-formstate/pkg/bindings/teaform"
	"github.com/goliatone/go-formstate/pkg/field"
	"github.com/goliatone/go-formstate/pkg/format"
)

var mobilePattern = regexp.MustCompile(`^[0-9]{9}$`)

func mobileDigits(v string) string {
	return strings.ReplaceAll(v, " ", "")
}

func parseAge(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

func contactFields() field.Set {
	mobileFormat := format.Compose(format.DigitsOnly, format.MaxLen(9), format.Group(" ", 3))
	return field.Set{
		"name": field.Text(func(v string) bool {
			return len(strings.TrimSpace(v)) >= 3
		}, "Invalid name").WithFormatter(format.StripTags),
		"mobile": field.Text(func(v string) bool {
			return mobilePattern.MatchString(mobileDigits(v))
		}, "Invalid mobile").WithFormatter(mobileFormat),
		"confirmMobile": field.TextDependsOn("mobile", func(v, mobile string) bool {
			return mobileDigits(v) == mobileDigits(mobile)
		}, "Numbers do not match").WithFormatter(mobileFormat),
		"age": field.Of(parseAge, func(age int) bool {
			return age > 0 && age < 130
		}, "Invalid age").Optional().WithFormatter(format.DigitsOnly),
		"notes": field.Text(func(v string) bool {
			return len(v) <= 140
		}, "Notes are limited to 140 characters").Optional().WithFormatter(format.Compose(format.StripTags, format.MaxLen(140))),
	}
}

var contactOrder = []struct {
	key, label, help string
}{
	{"name", "Name", "At least three characters"},
	{"mobile", "Mobile", "Nine digits"},
	{"confirmMobile", "Confirm mobile", "Repeat the mobile number"},
	{"age", "Age", "Optional"},
	{"notes", "Notes", "Optional, markup is stripped"},
}

func promptFields() []prompt.Field {
	out := make([]prompt.Field, 0, len(contactOrder))
	for _, f := range contactOrder {
		out = append(out, prompt.Field{Key: f.key, Label: f.label, Help: f.help})
	}
	return out
}

func teaFields() []teaform.Field {
	out := make([]teaform.Field, 0, len(contactOrder))
	for _, f := range contactOrder {
		out = append(out, teaform.Field{Key: f.key, Label: f.label, Placeholder: f.help})
	}
	return out
}
