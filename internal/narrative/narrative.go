package narrative

import (
	"strings"

	"github.com/sells-group/enrich-cli/internal/model"
)

// Build turns a firm profile into a three-sentence "About" paragraph:
// identity, services, funds. All three sentences are always present, in
// that order, each terminated, even when every input field is missing.
func Build(profile model.FirmProfile) string {
	name := strings.TrimSpace(profile.Name)
	if name == "" {
		name = "The firm"
	}

	// The article follows the caller's own phrase ("a private equity ..."),
	// not the normalized form with its appended "firm".
	article := chooseArticle(profile.FirmType)
	firmType := normalizeFirmType(profile.FirmType, LowerCase)
	location := resolveLocation(profile.Location, profile.RawAddress)

	identity := name + " is " + article + " " + firmType + " headquartered in " + location + "."
	services := terminate(servicesClause(profile.Services))
	funds := fundsClause(profile.Funds)

	return identity + " " + services + " " + funds
}

// terminate repairs the punctuation of a clause that may have been left
// hanging: a trailing comma becomes " and more.", anything else unfinished
// gets a period.
func terminate(clause string) string {
	switch {
	case strings.HasSuffix(clause, "."):
		return clause
	case strings.HasSuffix(clause, ","):
		return clause + " and more."
	}
	return clause + "."
}
