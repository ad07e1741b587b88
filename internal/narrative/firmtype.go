package narrative

import "strings"

// TypeCase selects the casing of words the normalizer itself introduces
// ("Firm" vs "firm"). The caller's own phrasing is always kept verbatim.
type TypeCase int

const (
	// TitleCase appends "Firm" and canonicalizes "law firm" to "Law Firm".
	TitleCase TypeCase = iota
	// LowerCase appends "firm" and leaves matched phrases untouched.
	LowerCase
)

// normalizeFirmType canonicalizes a free-text firm type into a display
// phrase: empty input becomes the bare placeholder, "law firm" is returned
// in canonical casing, and anything not already ending in the word "firm"
// gets it appended. Article selection must use the raw input, not the
// result of this function.
func normalizeFirmType(raw string, tc TypeCase) string {
	t := strings.TrimSpace(raw)
	if t == "" {
		if tc == TitleCase {
			return "Firm"
		}
		return "firm"
	}

	if strings.EqualFold(t, "law firm") {
		if tc == TitleCase {
			return "Law Firm"
		}
		return t
	}

	fields := strings.Fields(t)
	if strings.EqualFold(fields[len(fields)-1], "firm") {
		return t
	}

	if tc == TitleCase {
		return t + " Firm"
	}
	return t + " firm"
}
