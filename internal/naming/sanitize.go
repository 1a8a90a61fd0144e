package naming

import (
	"regexp"
	"strings"
)

// letterSubstitutions spells out letters that have a common ASCII transcription.
var letterSubstitutions = strings.NewReplacer(
	"ä", "ae",
	"Ä", "Ae",
	"ö", "oe",
	"Ö", "Oe",
	"ü", "ue",
	"Ü", "Ue",
	"ß", "ss",
)

// disallowedChar matches a single character outside [A-Za-z0-9].
var disallowedChar = regexp.MustCompile(`[^A-Za-z0-9]`)

// Sanitize converts s to a string that only contains [A-Za-z0-9_].
// Umlauts and ß are transcribed first; every remaining disallowed character
// then becomes one underscore. Runs are not collapsed.
//
// Example: "Jörg (Büro)" → "Joerg__Buero_"
func Sanitize(s string) string {
	return disallowedChar.ReplaceAllString(letterSubstitutions.Replace(s), "_")
}
