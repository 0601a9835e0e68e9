package format

import (
	"html"
	"strings"
	"sync"
	"unicode"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formstate/pkg/field"
	"github.com/goliatone/go-formstate/pkg/form"
)

// Formatter rewrites raw input. It aliases field.Formatter so descriptors and
// stock formatters interoperate.
type Formatter = field.Formatter

// Wrap returns p with OnChangeText replaced by fn followed by the original
// handler. OnCleared is left untouched; a nil fn returns p unchanged.
func Wrap(p form.Presentation, fn Formatter) form.Presentation {
	if fn == nil || p.OnChangeText == nil {
		return p
	}
	next := p.OnChangeText
	p.OnChangeText = func(raw string) {
		next(fn(raw))
	}
	return p
}

// Compose chains formatters left to right. Nil entries are skipped.
func Compose(fns ...Formatter) Formatter {
	return func(input string) string {
		for _, fn := range fns {
			if fn != nil {
				input = fn(input)
			}
		}
		return input
	}
}

// Upper upper-cases input.
func Upper(input string) string { return strings.ToUpper(input) }

// Lower lower-cases input.
func Lower(input string) string { return strings.ToLower(input) }

// Trim removes leading and trailing whitespace.
func Trim(input string) string { return strings.TrimSpace(input) }

// DigitsOnly drops every rune that is not a decimal digit.
func DigitsOnly(input string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, input)
}

// MaxLen truncates input to n runes. Non-positive n disables truncation.
func MaxLen(n int) Formatter {
	return func(input string) string {
		if n <= 0 {
			return input
		}
		runes := []rune(input)
		if len(runes) <= n {
			return input
		}
		return string(runes[:n])
	}
}

// Group splits input into runs of the given sizes joined by sep, removing any
// sep already present so reformatting is stable. The last size repeats.
//
//	Group(" ", 3)("123456789")    // "123 456 789"
//	Group("-", 4, 2)("12345678")  // "1234-56-78"
func Group(sep string, sizes ...int) Formatter {
	return func(input string) string {
		clean := input
		if sep != "" {
			clean = strings.ReplaceAll(input, sep, "")
		}
		if len(sizes) == 0 {
			return clean
		}

		runes := []rune(clean)
		var b strings.Builder
		for i, idx := 0, 0; i < len(runes); idx++ {
			size := sizes[min(idx, len(sizes)-1)]
			if size <= 0 {
				size = len(runes) - i
			}
			end := min(i+size, len(runes))
			if i > 0 {
				b.WriteString(sep)
			}
			b.WriteString(string(runes[i:end]))
			i = end
		}
		return b.String()
	}
}

var (
	stripPolicyOnce sync.Once
	stripPolicy     *bluemonday.Policy
)

// stripPasses bounds how many layers of entity-encoded markup are peeled.
const stripPasses = 3

// StripTags removes HTML markup, keeping text content as typed: "&", "<" and
// ">" outside tags survive unescaped.
func StripTags(input string) string {
	stripPolicyOnce.Do(func() {
		stripPolicy = bluemonday.StrictPolicy()
	})
	// Unescaping can turn "&lt;b&gt;" into a tag, so sanitize until stable.
	for range stripPasses {
		if !strings.ContainsAny(input, "<>&") {
			return input
		}
		next := html.UnescapeString(stripPolicy.Sanitize(input))
		if next == input {
			return next
		}
		input = next
	}
	return input
}
