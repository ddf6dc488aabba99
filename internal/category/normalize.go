package category

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases s, strips diacritics, turns underscores into spaces
// and trims surrounding whitespace. "Pizzería" and "PIZZERIA " both become
// "pizzeria"; "fast_food" becomes "fast food".
func Normalize(s string) string {
	s = strings.ToLower(s)
	// transform.Chain keeps state, so it cannot be shared across goroutines.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	if out, _, err := transform.String(t, s); err == nil {
		s = out
	}
	s = strings.ReplaceAll(s, "_", " ")
	return strings.TrimSpace(s)
}
