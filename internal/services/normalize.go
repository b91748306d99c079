package services

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// capitalizeFirst upper-cases the first letter and leaves the rest alone.
func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func normalizeName(s string) string {
	return capitalizeFirst(strings.TrimSpace(s))
}
