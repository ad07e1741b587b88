package address

import (
	"regexp"
	"strings"
)

// postcodePatterns holds per-country postcode shapes, keyed by the names a
// trailing address token actually uses. Countries without an entry fall
// through to the generic digit pattern.
var postcodePatterns = []struct {
	names   []string
	pattern *regexp.Regexp
	uk      bool
}{
	{names: []string{"United Kingdom", "UK"}, pattern: regexp.MustCompile(`(?i)([A-Z]{1,2}\d[A-Z\d]?\s*\d[A-Z]{2})`), uk: true},
	{names: []string{"United States", "US", "USA"}, pattern: regexp.MustCompile(`(\d{5}(?:-\d{4})?)`)},
	{names: []string{"Germany"}, pattern: regexp.MustCompile(`(\d{5})`)},
	{names: []string{"China"}, pattern: regexp.MustCompile(`(\d{6})`)},
	{names: []string{"Japan"}, pattern: regexp.MustCompile(`(\d{3}-\d{4}|\d{7})`)},
	{names: []string{"Singapore"}, pattern: regexp.MustCompile(`(\d{6})`)},
	{names: []string{"India"}, pattern: regexp.MustCompile(`(\d{6})`)},
	{names: []string{"France"}, pattern: regexp.MustCompile(`(\d{5})`)},
	{names: []string{"Spain"}, pattern: regexp.MustCompile(`(\d{5})`)},
	{names: []string{"Sweden"}, pattern: regexp.MustCompile(`(\d{3}\s*\d{2}|\d{5})`)},
	{names: []string{"Switzerland"}, pattern: regexp.MustCompile(`(\d{4})`)},
	{names: []string{"Taiwan"}, pattern: regexp.MustCompile(`(\d{3}-\d{3}|\d{6})`)},
}

var genericPostcode = regexp.MustCompile(`\b(\d{3,8}(?:-\d{4})?)\b`)

// ExtractPostcode pulls a postcode out of a raw address line. When a
// country hint matches a known pattern that pattern wins; otherwise a
// generic digit-run search is used. UK postcodes are normalized to
// "OUTWARD INWARD" form.
func ExtractPostcode(raw, countryHint string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	hint := strings.TrimSpace(countryHint)
	if hint != "" {
		for _, entry := range postcodePatterns {
			for _, name := range entry.names {
				if !strings.EqualFold(name, hint) {
					continue
				}
				if m := entry.pattern.FindStringSubmatch(raw); m != nil {
					if entry.uk {
						return NormalizeUKPostcode(m[1])
					}
					return strings.TrimSpace(m[1])
				}
			}
		}
	}

	if m := genericPostcode.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	return ""
}

// NormalizeUKPostcode upper-cases and re-spaces a UK postcode so the inward
// code (last three characters) is separated by a single space.
func NormalizeUKPostcode(pc string) string {
	s := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(pc)), " ", "")
	if s == "" {
		return ""
	}
	if len(s) > 3 {
		return s[:len(s)-3] + " " + s[len(s)-3:]
	}
	return s
}
