// SPDX-License-Identifier: MPL-2.0

// Package strcase converts identifiers between snake_case, camelCase and
// PascalCase. Dotted module names map to slash-separated paths and back:
// "Web.RouterHelpers" underscores to "web/router_helpers".
package strcase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Underscore converts CamelCase to snake_case.
// Acronyms are kept together (HTTPRequest -> http_request), '.' becomes '/'
// and '-' becomes '_'. Already snake_cased input is returned unchanged.
func Underscore(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	runes := []rune(s)

	for i, r := range runes {
		switch {
		case r == '.':
			b.WriteRune('/')
		case r == '-':
			b.WriteRune('_')
		case unicode.IsUpper(r):
			if i > 0 && wordBoundary(runes, i) {
				b.WriteRune('_')
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// wordBoundary reports whether the upper-case rune at i starts a new word.
func wordBoundary(runes []rune, i int) bool {
	prev := runes[i-1]
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}
	// Last capital of an acronym followed by a lower-case rune: HTTPRequest.
	return unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

// Camelize converts snake_case to PascalCase.
// '/' separated segments become '.' separated (foo/bar_baz -> Foo.BarBaz).
// Leading underscores are preserved; repeated inner underscores collapse.
func Camelize(s string) string {
	if s == "" {
		return ""
	}
	title := cases.Title(language.Und, cases.NoLower)

	segments := strings.Split(s, "/")
	for i, seg := range segments {
		trimmed := strings.TrimLeft(seg, "_")
		prefix := seg[:len(seg)-len(trimmed)]

		var b strings.Builder
		b.WriteString(prefix)
		for _, word := range strings.FieldsFunc(trimmed, isSeparator) {
			b.WriteString(title.String(word))
		}
		segments[i] = b.String()
	}
	return strings.Join(segments, ".")
}

// CamelizeLower converts snake_case to camelCase (foo_bar -> fooBar).
func CamelizeLower(s string) string {
	c := Camelize(s)
	r, size := utf8.DecodeRuneInString(c)
	if r == utf8.RuneError || r == '_' {
		return c
	}
	return string(unicode.ToLower(r)) + c[size:]
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-'
}
