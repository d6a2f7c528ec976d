package match

import (
	"strings"
	"unicode"
)

// Normalize folds a category name for fuzzy matching: it lowercases the name
// and drops separators (_, -, spaces), so "Soil_Type", "soil-type" and
// "SoilType" compare equal.
func Normalize(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// NormalizeSingular is Normalize followed by stripping one plural suffix.
// Short names are left alone.
func NormalizeSingular(s string) string {
	n := Normalize(s)

	// Longer suffixes first.
	for _, suffix := range []string{"ies", "es", "s"} {
		stem, ok := strings.CutSuffix(n, suffix)
		if !ok || len(stem) < 3 {
			continue
		}

		if suffix == "ies" {
			return stem + "y"
		}

		return stem
	}

	return n
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
