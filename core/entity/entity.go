// Package entity decodes the fixed character-reference vocabulary found in
// the legacy pages and escapes the minimal hazardous set when re-embedding
// text into markup. The two directions are deliberately asymmetric: decode
// covers a broad table, escape touches only &, <, >, and the double quote,
// so extended characters pass through generation as literal text.
package entity

import (
	"regexp"
	"strconv"
	"strings"
)

// named is the fixed table of named references the legacy pages use.
var named = strings.NewReplacer(
	"&nbsp;", " ",
	"&mdash;", "—",
	"&ndash;", "–",
	"&hellip;", "…",
	"&rarr;", "→",
	"&larr;", "←",
	"&lsquo;", "‘",
	"&rsquo;", "’",
	"&ldquo;", "“",
	"&rdquo;", "”",
	"&eacute;", "é",
	"&egrave;", "è",
	"&ecirc;", "ê",
	"&agrave;", "à",
	"&acirc;", "â",
	"&ccedil;", "ç",
	"&icirc;", "î",
	"&ocirc;", "ô",
	"&ucirc;", "û",
	"&ugrave;", "ù",
	"&middot;", "·",
	"&bull;", "•",
	"&quot;", `"`,
	"&apos;", "'",
	"&lt;", "<",
	"&gt;", ">",
	"&amp;", "&",
)

var numericRef = regexp.MustCompile(`&#([0-9]{1,7});`)

// Decode replaces the fixed named and numeric (&#NNN;) references with their
// literal characters. One pass over the fixed table leaves no reference
// syntax behind, so decoding is idempotent over this vocabulary.
func Decode(text string) string {
	if !strings.Contains(text, "&") {
		return text
	}
	text = numericRef.ReplaceAllStringFunc(text, func(ref string) string {
		n, err := strconv.Atoi(ref[2 : len(ref)-1])
		if err != nil || n <= 0 || n > 0x10FFFF {
			return ref
		}
		return string(rune(n))
	})
	return named.Replace(text)
}

var minimal = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// EscapeMinimal escapes only the four characters hazardous when embedding
// text into HTML attributes or element content.
func EscapeMinimal(text string) string {
	return minimal.Replace(text)
}
