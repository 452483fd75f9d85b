// Package match implements input normalization and the keyword scoring
// that selects the best catalog question for a free-text input.
package match

import "strings"

// Normalize prepares raw user input for greeting detection and keyword
// matching: the whole string is lowercased and literal question marks are
// removed. Nothing else is touched — other punctuation and whitespace
// pass through unchanged.
func Normalize(raw string) string {
	s := strings.ToLower(raw)
	return strings.ReplaceAll(s, "?", "")
}
