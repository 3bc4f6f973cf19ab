package fiscal

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize removes every whitespace character and upper-cases the rest.
// It is applied to identifiers before any structural check, so "it60 x054..."
// and "IT60X054..." are the same IBAN.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s))
}

// FoldName upper-cases a personal name, folds accented Latin letters to
// their base letter and drops everything that is not an ASCII letter.
//
//	FoldName("D'Angelò") == "DANGELO"
func FoldName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	folded = strings.ToUpper(folded)
	var b strings.Builder
	b.Grow(len(folded))
	for i := 0; i < len(folded); i++ {
		if isLetter(folded[i]) {
			b.WriteByte(folded[i])
		}
	}
	return b.String()
}

// Mask hides all but the last four characters of a normalized identifier.
// Intended for log output.
func Mask(s string) string {
	s = Normalize(s)
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
