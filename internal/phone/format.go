// Package phone formats phone and fax numbers for display. Numbers with an
// explicit country prefix go through libphonenumber; everything else is
// shaped by a per-country template with a last-six-digits local split, and
// as a last resort the bare digits are kept with a "+" prefix.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Format renders a raw phone number. countryISO is the alpha-2 hint from
// the parsed address; city selects the regional template when one exists.
// The bool reports whether the result looks like a dialable number.
func Format(raw, countryISO, city string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	// Explicit international prefix: libphonenumber knows best.
	if strings.HasPrefix(keepDigitsAndPlus(raw), "+") {
		if num, err := phonenumbers.Parse(keepDigitsAndPlus(raw), ""); err == nil {
			return phonenumbers.Format(num, phonenumbers.INTERNATIONAL), phonenumbers.IsValidNumber(num)
		}
	}

	if tmpl := pickTemplate(countryISO, city); tmpl != "" {
		return applyTemplate(tmpl, digitsOnly(raw))
	}

	if num, err := phonenumbers.Parse(raw, strings.ToUpper(countryISO)); err == nil {
		return phonenumbers.Format(num, phonenumbers.INTERNATIONAL), phonenumbers.IsValidNumber(num)
	}

	digits := digitsOnly(raw)
	if digits == "" {
		return "", false
	}
	return "+" + digits, len(digits) >= 6
}

func pickTemplate(countryISO, city string) string {
	entry, ok := templates[strings.ToUpper(strings.TrimSpace(countryISO))]
	if !ok {
		return ""
	}
	if city != "" && entry.Regional != "" {
		return entry.Regional
	}
	return entry.National
}

// applyTemplate splits digits into area + local (last six) and substitutes
// them into the template.
func applyTemplate(tmpl, digits string) (string, bool) {
	local := digits
	area := ""
	if len(digits) >= 6 {
		local = digits[len(digits)-6:]
		area = digits[:len(digits)-6]
	}
	formatted := strings.ReplaceAll(tmpl, "{area}", area)
	formatted = strings.ReplaceAll(formatted, "{local}", local)
	return formatted, len(digitsOnly(formatted)) >= 6
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func keepDigitsAndPlus(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '+' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
