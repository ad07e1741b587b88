// Package narrative generates the deterministic "About" paragraph for a
// firm profile. The generator is a pure function of its inputs: no I/O, no
// state. It never fails; every missing field has a defined fallback.
package narrative

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// articleA lists vowel-spelled words pronounced with a leading consonant
// sound ("a university", "a European bank"). Literal lookup, not a phonetic
// algorithm.
var articleA = map[string]bool{
	"euro":       true,
	"european":   true,
	"once":       true,
	"one":        true,
	"unicorn":    true,
	"uniform":    true,
	"union":      true,
	"unique":     true,
	"unit":       true,
	"united":     true,
	"universal":  true,
	"university": true,
	"usage":      true,
	"use":        true,
	"used":       true,
	"useful":     true,
	"user":       true,
}

// articleAn lists silent-h words ("an hour", "an honest broker").
var articleAn = map[string]bool{
	"heir":     true,
	"heiress":  true,
	"honest":   true,
	"honor":    true,
	"honorary": true,
	"honour":   true,
	"hour":     true,
	"hourly":   true,
}

// sentenceCase trims s, upper-cases the first code point, and lower-cases
// the remainder. Empty in, empty out. Idempotent.
func sentenceCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// chooseArticle picks "a" or "an" for the first word of phrase. The
// exception tables cover the common cases where spelling and pronunciation
// disagree; everything else goes by the first letter.
func chooseArticle(phrase string) string {
	fields := strings.Fields(strings.ToLower(phrase))
	if len(fields) == 0 {
		return "a"
	}
	word := fields[0]
	if articleA[word] {
		return "a"
	}
	if articleAn[word] {
		return "an"
	}
	switch word[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an"
	}
	return "a"
}

// pickItems trims each element, drops the empties, and truncates to at most
// n items. Relative order is preserved; duplicates are not removed.
func pickItems(items []string, n int) []string {
	out := make([]string, 0, n)
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
		if len(out) == n {
			break
		}
	}
	return out
}

// joinWithOxford joins items as English prose with a serial comma:
// "A", "A and B", "A, B, and C".
func joinWithOxford(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
}

// joinPlain joins items with plain commas and no conjunction. The services
// clause depends on this being distinct from joinWithOxford.
func joinPlain(items []string) string {
	return strings.Join(items, ", ")
}
