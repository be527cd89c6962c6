package normalization

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// IsBlank reports whether a cell value carries no usable content.
// Spreadsheet exports frequently fill empty cells with the literal
// string "nan", which counts as blank here as well.
func IsBlank(v string) bool {
	s := strings.TrimSpace(v)
	if s == "" {
		return true
	}
	return strings.EqualFold(s, "nan")
}

var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// RemoveAccents strips diacritical marks, so "jurídica" becomes "juridica".
func RemoveAccents(s string) string {
	out, _, err := transform.String(accentStripper, s)
	if err != nil {
		return s
	}
	return out
}

// Fold lowercases, trims and strips accents. Option-list values are
// folded before they are matched against their canonical synonyms.
func Fold(s string) string {
	return RemoveAccents(strings.ToLower(strings.TrimSpace(s)))
}

// NormalizeName reduces a column header to lowercase ASCII letters and
// digits so that cosmetic differences (spacing, accents, punctuation)
// do not affect header matching.
func NormalizeName(s string) string {
	folded := Fold(s)
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DigitsOnly keeps only the decimal digits of s. Document numbers such
// as CPF and CNPJ are compared in this form.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
