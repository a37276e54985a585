// Package sanitize cleans free-text user input before it is matched against
// reference data or written to history.
package sanitize

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	tagPattern   = regexp.MustCompile(`<[^>]*>`)
	spacePattern = regexp.MustCompile(`\s+`)

	entities = strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&amp;", "&",
		"&quot;", `"`,
		"&#39;", "'",
		"&nbsp;", " ",
	)
)

// StripHTML removes markup. Entities are decoded and the result stripped a
// second time so encoded tags do not survive.
func StripHTML(s string) string {
	s = tagPattern.ReplaceAllString(s, "")
	s = entities.Replace(s)
	return tagPattern.ReplaceAllString(s, "")
}

// Text strips markup and control characters and collapses whitespace runs
// to a single space.
func Text(s string) string {
	s = StripHTML(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	return strings.TrimSpace(spacePattern.ReplaceAllString(s, " "))
}
