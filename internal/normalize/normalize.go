// Package normalize canonicalizes free text identifiers so that raw values
// differing only in case or surrounding blanks group as the same entity.
package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Text trims s, lower-cases it and upper-cases the first rune.
// nil stays nil and blank input becomes "".
func Text(s *string) *string {
	if s == nil {
		return nil
	}

	out := Name(*s)

	return &out
}

// Name is Text for values that are never absent.
func Name(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	r, size := utf8.DecodeRuneInString(s)

	return string(unicode.ToUpper(r)) + s[size:]
}

// Username trims and lower-cases a login name.
func Username(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Role trims and lower-cases a role name.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
