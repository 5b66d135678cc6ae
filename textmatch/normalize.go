// textmatch/normalize.go - Text canonicalization shared by every comparison
package textmatch

import (
	"strings"
	"unicode"
)

// Normalize lower-cases text, drops everything outside [a-z0-9] and
// whitespace, then trims and collapses whitespace runs to a single space.
// Both sides of a comparison must go through Normalize.
func Normalize(text string) string {
	lowered := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Words returns the normalized words of text.
func Words(text string) []string {
	return strings.Fields(Normalize(text))
}
