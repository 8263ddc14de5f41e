// Package slug derives URL-safe article identifiers from titles.
package slug

import "strings"

// Make converts a title into its canonical slug: trimmed, lowercased,
// stripped of everything but lowercase letters, digits, underscore, hyphen
// and space, with spaces replaced by hyphens.
//
// Make is pure and deterministic. A title made entirely of stripped
// characters yields an empty slug; uniqueness of the result is the caller's
// concern.
func Make(title string) string {
	lowered := strings.ToLower(strings.TrimSpace(title))

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('-')
		}
	}
	return b.String()
}
