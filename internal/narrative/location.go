package narrative

import (
	"strings"

	"github.com/sells-group/enrich-cli/internal/model"
)

// unknownLocation is the placeholder when neither a structured location nor
// a usable raw address is available.
const unknownLocation = "an unknown location"

// resolveLocation derives the "headquartered in ..." phrase. A structured
// location wins when it carries anything; otherwise the raw address is
// parsed best-effort.
func resolveLocation(loc *model.Location, rawAddress string) string {
	if loc != nil {
		primary := strings.TrimSpace(loc.Region)
		if primary == "" {
			primary = strings.TrimSpace(loc.Locality)
		}
		country := strings.TrimSpace(loc.Country)
		if primary != "" || country != "" {
			return formatLocation(primary, country)
		}
	}

	primary, country := parseRawAddress(rawAddress)
	return formatLocation(primary, country)
}

// parseRawAddress extracts a (primary-locality, country) pair out of a
// comma-separated address line. The last token is assumed to be the
// country; digit-bearing tokens are assumed to be street numbers or postal
// codes and never place names.
func parseRawAddress(raw string) (primary, country string) {
	var tokens []string
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	if len(tokens) == 0 {
		return "", ""
	}

	country = tokens[len(tokens)-1]
	if len(tokens) < 2 {
		return "", country
	}

	rest := tokens[:len(tokens)-1]
	var candidates []string
	for _, tok := range rest {
		if !containsDigit(tok) {
			candidates = append(candidates, tok)
		}
	}
	if len(candidates) > 0 {
		// Closest to the country token, assumed to be the state/region.
		return candidates[len(candidates)-1], country
	}

	// Every remaining token carried a digit. Salvage the second-to-last raw
	// token by stripping its digit-bearing words.
	fallback := rest[len(rest)-1]
	var words []string
	for _, w := range strings.Fields(fallback) {
		if !containsDigit(w) {
			words = append(words, w)
		}
	}
	if len(words) > 0 {
		return strings.Join(words, " "), country
	}
	return fallback, country
}

// formatLocation assembles the display string, trimming the dangling
// separator when the country is empty.
func formatLocation(primary, country string) string {
	switch {
	case primary != "":
		return strings.TrimSuffix(primary+", "+country, ", ")
	case country != "":
		return country
	}
	return unknownLocation
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
