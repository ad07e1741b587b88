// Package address decomposes free-text office addresses into street, city,
// state, postcode, and country components, and re-assembles them into a
// standard display form. The heuristics are deliberately simple: comma
// tokens, a trailing country, and positional guesses for city and state.
package address

import (
	"strings"

	"github.com/sells-group/enrich-cli/internal/country"
	"github.com/sells-group/enrich-cli/internal/model"
)

// Parse breaks a raw address line into components. It never fails; an
// unparseable input just yields empty fields.
func Parse(raw string) model.ParsedAddress {
	var parsed model.ParsedAddress
	if strings.TrimSpace(raw) == "" {
		return parsed
	}

	tokens := splitTokens(raw)
	var countryToken string
	if len(tokens) > 0 {
		countryToken = tokens[len(tokens)-1]
	}

	parsed.Postcode = ExtractPostcode(raw, countryToken)
	if parsed.Postcode != "" {
		tokens = stripPostcode(tokens, parsed.Postcode)
	}

	if countryToken != "" {
		if name, iso2, ok := country.Lookup(countryToken); ok {
			parsed.Country = name
			parsed.CountryISO = iso2
			if len(tokens) > 0 && strings.EqualFold(tokens[len(tokens)-1], countryToken) {
				tokens = tokens[:len(tokens)-1]
			}
		} else {
			// Keep the raw token as the country but leave it in place; it
			// may still be a state or city below.
			parsed.Country = countryToken
		}
	}

	switch {
	case len(tokens) == 1:
		parsed.Street = tokens[0]
	case len(tokens) == 2:
		parsed.Street = tokens[0]
		parsed.City = tokens[1]
	case len(tokens) >= 3:
		parsed.Street = strings.Join(tokens[:len(tokens)-2], ", ")
		parsed.City = tokens[len(tokens)-2]
		parsed.State = tokens[len(tokens)-1]
	}

	// Suppress echoes of the country in city/state.
	if parsed.City != "" && strings.EqualFold(parsed.City, parsed.Country) {
		parsed.City = ""
	}
	if parsed.State != "" && strings.EqualFold(parsed.State, parsed.Country) {
		parsed.State = ""
	}

	return parsed
}

// Standard renders a parsed address as the newline-joined display form,
// skipping blanks and consecutive duplicates.
func Standard(parsed model.ParsedAddress) string {
	parts := []string{parsed.Street}
	if parsed.City != "" && !strings.EqualFold(parsed.City, parsed.Country) {
		parts = append(parts, parsed.City)
	}
	parts = append(parts, parsed.State, parsed.Postcode, parsed.Country)

	var cleaned []string
	prev := ""
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || strings.EqualFold(p, prev) {
			continue
		}
		cleaned = append(cleaned, p)
		prev = p
	}
	return strings.Join(cleaned, "\n")
}

func splitTokens(raw string) []string {
	var tokens []string
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// stripPostcode removes postcode occurrences from tokens, dropping tokens
// that end up empty.
func stripPostcode(tokens []string, postcode string) []string {
	var out []string
	for _, tok := range tokens {
		cleaned := strings.TrimSpace(removeFold(tok, postcode))
		if cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

// removeFold deletes every case-insensitive occurrence of needle from s.
func removeFold(s, needle string) string {
	if needle == "" {
		return s
	}
	lower := strings.ToLower(s)
	lowerNeedle := strings.ToLower(needle)
	var b strings.Builder
	for {
		idx := strings.Index(lower, lowerNeedle)
		if idx < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:idx])
		s = s[idx+len(needle):]
		lower = lower[idx+len(lowerNeedle):]
	}
}
