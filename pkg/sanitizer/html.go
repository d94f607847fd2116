package sanitizer

import (
	"html"
	"strings"
	"sync"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// StrictPolicy strips ALL HTML, returns plain text
		strictPolicy = bluemonday.StrictPolicy()
	})
}

// htmlEscaper rewrites the characters that can open markup or break out of a
// double-quoted attribute.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// EscapeHTML escapes &, <, > and " to their entity forms.
// Use for every user-supplied value interpolated into an HTML document,
// including double-quoted attribute values.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// StripHTML removes all markup and returns readable plain text.
// Entities produced by the policy are decoded back, so plain input is returned
// unchanged apart from surrounding whitespace.
func StripHTML(s string) string {
	initPolicies()
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

// HeaderValue makes s safe for a single-line header such as an email subject.
// Line breaks and tabs become spaces, other control characters are dropped.
func HeaderValue(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\r' || r == '\n' || r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}
