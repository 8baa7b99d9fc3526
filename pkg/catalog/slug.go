package catalog

import (
	"strings"
	"unicode"
)

// Slug derives a reference id from a display name: trimmed, lowercased,
// every whitespace character replaced by a hyphen.
func Slug(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '-'
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))
}
