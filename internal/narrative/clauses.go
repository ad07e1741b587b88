package narrative

import (
	"strings"
	"unicode"
)

const (
	maxServices = 5
	maxFunds    = 4
)

// servicesClause builds the services sentence fragment. Items are shown in
// insertion order, lower-cased, joined with plain commas (no conjunction).
func servicesClause(services []string) string {
	items := pickItems(services, maxServices)
	if len(items) == 0 {
		return "It provides a wide range of financial services,"
	}
	for i, item := range items {
		items[i] = strings.ToLower(item)
	}
	return "It provides services including " + joinPlain(items) + ", and more."
}

// fundsClause builds the funds sentence. Short all-caps acronyms like CLO
// or ETF keep their casing; other words are lower-cased. Singular/plural
// agreement follows the item count.
func fundsClause(funds []string) string {
	items := pickItems(funds, maxFunds)
	if len(items) == 0 {
		return "The firm advises various types of funds."
	}
	for i, item := range items {
		items[i] = formatFundItem(item)
	}

	noun, verb := "types", "are"
	if len(items) == 1 {
		noun, verb = "type", "is"
	}
	return "The fund " + noun + " advised by the firm " + verb + " " + joinWithOxford(items) + ", among others."
}

// formatFundItem lower-cases each word unless it is a 2-4 letter all-caps
// acronym, which is preserved verbatim.
func formatFundItem(item string) string {
	words := strings.Fields(item)
	for i, w := range words {
		if !isAcronym(w) {
			words[i] = strings.ToLower(w)
		}
	}
	return strings.Join(words, " ")
}

func isAcronym(w string) bool {
	if len(w) < 2 || len(w) > 4 {
		return false
	}
	for _, r := range w {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
