package domain

import (
	"strings"
)

// NormalizeFamily prepares a font family name for comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
//
// This is the only normalization applied during matching; there is no
// fuzzy matching, so an unmatched name is dropped, never substituted.
func NormalizeFamily(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	name = strings.ToLower(name)

	// Compress multiple spaces into one.
	var b strings.Builder
	b.Grow(len(name))
	prevSpace := false
	for _, r := range name {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
