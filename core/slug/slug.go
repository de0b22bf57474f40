// Package slug derives deterministic identifiers from post titles.
// The transform is pure and locale-blind: callers choose title vs. image
// alt text input per locale, and the English-derived slug is reused
// verbatim across every other language by position.
package slug

import (
	"regexp"
	"strings"
)

const maxLength = 60

var (
	nonWord    = regexp.MustCompile(`[^\w\s-]`)
	whitespace = regexp.MustCompile(`\s+`)
	hyphenRun  = regexp.MustCompile(`-{2,}`)
)

// Make converts text into a slug: lowercase, word characters only,
// whitespace collapsed to single hyphens, hyphen runs collapsed, no
// leading/trailing hyphen, at most 60 characters.
func Make(text string) string {
	s := strings.ToLower(text)
	s = nonWord.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphenRun.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > maxLength {
		s = strings.Trim(s[:maxLength], "-")
	}
	return s
}
