// Package slug derives URL path segments from post titles.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// nonAlphanumeric matches a single character outside [a-zA-Z0-9]. The class
// is deliberately unanchored and un-quantified: every such character becomes
// exactly one hyphen. Collapsing runs or trimming the ends would change the
// slugs of already-published posts, so neither happens here.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// stripMarks decomposes to NFD, drops combining marks, and recomposes to NFC.
// A chain holds internal buffers, so each call builds its own.
func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Make converts a title to a lowercase hyphenated slug. The result contains
// only [a-z0-9-]. Empty input is returned unchanged.
func Make(title string) string {
	if title == "" {
		return title
	}

	s, _, err := transform.String(stripMarks(), title)
	if err != nil {
		// Remove/norm transforms do not fail on valid UTF-8; invalid bytes
		// pass through and are hyphenated by the substitution below.
		s = title
	}

	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return strings.ToLower(s)
}
