package scrape

import (
	"regexp"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/biter777/countries"
	"golang.org/x/net/html"

	"github.com/sells-group/enrich-cli/internal/model"
)

var (
	phoneRe  = regexp.MustCompile(`(?:\+?\d{1,3}[\s\-(]?)?(?:\(?\d{2,4}\)?[\s\-)]?){1,4}\d{3,4}`)
	faxHints = regexp.MustCompile(`(?i)\bfax\b|facsimile`)
)

// countryNames is the lowercase name of every known country, used to spot
// address-looking lines in page text.
var countryNames = sync.OnceValue(func() []string {
	all := countries.All()
	names := make([]string, 0, len(all))
	for _, cc := range all {
		names = append(names, strings.ToLower(cc.String()))
	}
	return names
})

// telLink is a tel: href classified as phone or fax by its link text.
type telLink struct {
	fax    bool
	number string
}

// ExtractOffices applies the generic heuristics to a page: address-looking
// blocks become offices, and phones, faxes, and emails found elsewhere on
// the page are backfilled positionally.
func ExtractOffices(doc *goquery.Document, website string, maxOffices int) []model.Office {
	tels := extractTelHrefs(doc)
	emails := extractEmails(doc)
	candidates := extractAddressCandidates(doc)

	var offices []model.Office
	for _, addr := range candidates {
		if len(offices) == maxOffices {
			break
		}
		office := model.Office{Address: addr, Website: website}
		if phones := extractTextPhones(addr); len(phones) > 0 {
			office.Phone = phones[0]
			if len(phones) > 1 {
				office.Fax = phones[1]
			}
		}
		offices = append(offices, office)
	}

	var phonesOnly, faxesOnly []string
	for _, t := range tels {
		if t.fax {
			faxesOnly = append(faxesOnly, t.number)
		} else {
			phonesOnly = append(phonesOnly, t.number)
		}
	}
	for i := range offices {
		if offices[i].Phone == "" && i < len(phonesOnly) {
			offices[i].Phone = phonesOnly[i]
		}
		if offices[i].Fax == "" && i < len(faxesOnly) {
			offices[i].Fax = faxesOnly[i]
		}
	}

	// No address blocks found: fall back to tel: links whose surrounding
	// text mentions a country.
	if len(offices) == 0 {
		doc.Find(`a[href^="tel:"]`).EachWithBreak(func(_ int, a *goquery.Selection) bool {
			parent := a.Parent()
			if parent.Length() == 0 {
				return true
			}
			text := strings.TrimSpace(textWithSeparator(parent, ", "))
			if text != "" && mentionsCountry(text) {
				offices = append(offices, model.Office{
					Address: text,
					Phone:   strings.TrimSpace(strings.SplitN(a.AttrOr("href", ""), ":", 2)[1]),
					Website: website,
				})
			}
			return len(offices) < maxOffices
		})
	}

	if len(emails) > 0 {
		for i := range offices {
			if offices[i].Email == "" {
				offices[i].Email = emails[0]
			}
		}
	}

	return offices
}

// extractTelHrefs collects tel: links, classifying fax numbers by the link
// text.
func extractTelHrefs(doc *goquery.Document) []telLink {
	var found []telLink
	doc.Find(`a[href^="tel:"]`).Each(func(_ int, a *goquery.Selection) {
		href := strings.TrimSpace(a.AttrOr("href", ""))
		parts := strings.SplitN(href, ":", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
			return
		}
		found = append(found, telLink{
			fax:    faxHints.MatchString(strings.ToLower(a.Text())),
			number: strings.TrimSpace(parts[1]),
		})
	})
	return found
}

// extractEmails collects mailto: addresses in document order, deduplicated.
func extractEmails(doc *goquery.Document) []string {
	seen := map[string]bool{}
	var emails []string
	doc.Find(`a[href^="mailto:"]`).Each(func(_ int, a *goquery.Selection) {
		href := a.AttrOr("href", "")
		parts := strings.SplitN(href, ":", 2)
		if len(parts) != 2 {
			return
		}
		email := strings.TrimSpace(strings.SplitN(parts[1], "?", 2)[0])
		if email != "" && !seen[email] {
			seen[email] = true
			emails = append(emails, email)
		}
	})
	return emails
}

// extractTextPhones finds phone-shaped runs in free text, deduplicated in
// order of appearance.
func extractTextPhones(s string) []string {
	seen := map[string]bool{}
	var phones []string
	for _, m := range phoneRe.FindAllString(s, -1) {
		m = strings.TrimSpace(m)
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		phones = append(phones, m)
	}
	return phones
}

// extractAddressCandidates harvests address-looking text: <address> tags,
// elements whose class or id hints at an office block, and body lines that
// mention a country. Results are whitespace-normalized and deduplicated in
// order.
func extractAddressCandidates(doc *goquery.Document) []string {
	var candidates []string

	doc.Find("address").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(textWithSeparator(sel, ", ")); text != "" {
			candidates = append(candidates, text)
		}
	})

	hintWords := []string{"address", "office", "location", "branch"}
	doc.Find("[class],[id]").Each(func(_ int, sel *goquery.Selection) {
		attrs := strings.ToLower(sel.AttrOr("class", "") + " " + sel.AttrOr("id", ""))
		for _, hint := range hintWords {
			if strings.Contains(attrs, hint) {
				if text := strings.TrimSpace(textWithSeparator(sel, ", ")); text != "" {
					candidates = append(candidates, text)
				}
				break
			}
		}
	})

	for _, line := range strings.Split(textWithSeparator(doc.Selection, "\n"), "\n") {
		line = strings.TrimSpace(line)
		if len(line) < 10 || !strings.Contains(line, ",") {
			continue
		}
		if mentionsCountry(line) {
			candidates = append(candidates, line)
		}
	}

	seen := map[string]bool{}
	var out []string
	for _, c := range candidates {
		norm := strings.Join(strings.Fields(c), " ")
		if norm == "" || seen[norm] {
			continue
		}
		seen[norm] = true
		out = append(out, norm)
	}
	return out
}

func mentionsCountry(line string) bool {
	lower := strings.ToLower(line)
	for _, name := range countryNames() {
		if strings.Contains(lower, name) {
			return true
		}
	}
	return false
}

// textWithSeparator collects the text nodes under a selection, joined by
// sep. Unlike Selection.Text it keeps a boundary between sibling elements,
// which matters when flattening address markup to one line.
func textWithSeparator(sel *goquery.Selection, sep string) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		}
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, sep)
}
