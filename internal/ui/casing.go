package ui

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// DisplayName tones down shouting in catalog fields: an all-caps value
// like "LUTZ, MARK" is title-cased to "Lutz, Mark" for table and
// browser output. Mixed-case input is returned unchanged, since it is
// already deliberate.
func DisplayName(s string) string {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return s
			}
		}
	}
	if !hasLetter {
		return s
	}
	return titleCaser.String(strings.ToLower(s))
}
