package core

import "strings"

// CleanString trims surrounding whitespace and optionally lowercases the
// result. Names and emails go through here before validation and storage so
// email lookups stay case-stable.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}
