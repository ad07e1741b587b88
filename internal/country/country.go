// Package country resolves free-text country names to ISO codes and infers
// the local currency. Lookup is backed by the countries dataset; the
// currency path keeps a manual fallback map for the handful of codes the
// original data set cared about.
package country

import (
	"strings"

	"github.com/biter777/countries"
)

// currencyFallback covers known cases where the dataset lookup comes back
// empty.
var currencyFallback = map[string]string{
	"AU": "AUD",
	"CA": "CAD",
	"CN": "CNY",
	"GB": "GBP",
	"IN": "INR",
	"JP": "JPY",
	"SG": "SGD",
	"US": "USD",
}

// Lookup resolves a country name, alpha-2, or alpha-3 token. It returns the
// canonical name, the ISO 3166-1 alpha-2 code, and whether the token was
// recognized.
func Lookup(token string) (name, iso2 string, ok bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", "", false
	}
	cc := countries.ByName(token)
	if cc == countries.Unknown {
		return "", "", false
	}
	return cc.String(), cc.Alpha2(), true
}

// ToISO2 converts a country name to its alpha-2 code, or "" if unknown.
func ToISO2(name string) string {
	_, iso2, ok := Lookup(name)
	if !ok {
		return ""
	}
	return iso2
}

// CurrencyFromISO infers the ISO 4217 currency code for an alpha-2 country
// code, or "" if it cannot be determined.
func CurrencyFromISO(iso2 string) string {
	iso2 = strings.ToUpper(strings.TrimSpace(iso2))
	if iso2 == "" {
		return ""
	}
	cc := countries.ByName(iso2)
	if cc != countries.Unknown {
		if cur := cc.Currency(); cur.IsValid() {
			return cur.Alpha()
		}
	}
	return currencyFallback[iso2]
}
