// Package matching normalizes product text and units so that records coming
// from different stores can be compared and searched.
package matching

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var diacriticReplacer = strings.NewReplacer(
	"đ", "d", "Đ", "D",
	"ß", "ss",
)

// RemoveDiacritics strips accents from Croatian and Romanian text.
// č, ć, š, ž, ă, â, î, ș, ț map to their base letters; đ maps to d.
func RemoveDiacritics(s string) string {
	s = diacriticReplacer.Replace(s)

	// NFD normalization + strip combining marks
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

// Fold lowercases s, removes diacritics and collapses whitespace.
func Fold(s string) string {
	s = strings.ToLower(RemoveDiacritics(s))
	return strings.Join(strings.Fields(s), " ")
}

// ContainsFold reports whether needle occurs in haystack, ignoring case,
// diacritics and repeated whitespace. An empty needle matches everything.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}

var unitAliases = map[string]string{
	"gr":     "g",
	"grame":  "g",
	"kilo":   "kg",
	"ltr":    "l",
	"lit":    "l",
	"litru":  "l",
	"kom":    "pcs",
	"buc":    "pcs",
	"pc":     "pcs",
	"pack":   "pcs",
	"role":   "pcs",
	"bucati": "pcs",
}

// CanonicalUnit lowercases and trims a package unit and maps common store
// spellings to g, kg, ml, l or pcs. Unknown units are returned lowercased.
func CanonicalUnit(unit string) string {
	u := strings.ToLower(strings.TrimSpace(RemoveDiacritics(unit)))
	if canonical, ok := unitAliases[u]; ok {
		return canonical
	}
	return u
}
