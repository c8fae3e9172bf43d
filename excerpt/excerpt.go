// Package excerpt builds short plain-text summaries of post bodies.
package excerpt

import (
	"strings"

	"editorial-cms/richtext"
)

// DefaultLength is the bound applied when a post is saved without an excerpt.
const DefaultLength = 160

const ellipsis = "…"

// Generate extracts the text of c, collapses whitespace and, when the result is
// longer than maxLength runes, cuts it at the last word boundary and appends
// an ellipsis. A single token longer than maxLength is cut mid-word.
func Generate(c richtext.Content, maxLength int) string {
	return Truncate(richtext.ExtractPlainText(c), maxLength)
}

// Truncate applies the same rule to text that is already plain.
func Truncate(text string, maxLength int) string {
	plain := strings.Join(strings.Fields(text), " ")
	if maxLength <= 0 {
		return ""
	}
	r := []rune(plain)
	if len(r) <= maxLength {
		return plain
	}
	cut := string(r[:maxLength])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		return cut[:i] + ellipsis
	}
	return cut + ellipsis
}
