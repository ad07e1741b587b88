package scrape

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/sells-group/enrich-cli/internal/model"
)

// OfficeBlocks scrapes sites whose contact pages use explicit office
// blocks:
//
//	<div class="office">
//	  <div class="addr">...</div>
//	  <div class="phone">...</div>
//	  <div class="fax">...</div>
//	  <a class="email" href="mailto:...">...</a>
//	</div>
func OfficeBlocks(doc *goquery.Document, pageURL string) []model.Office {
	var offices []model.Office
	doc.Find("div.office").Each(func(_ int, block *goquery.Selection) {
		office := model.Office{
			Address: strings.TrimSpace(textWithSeparator(block.Find(".addr").First(), ", ")),
			Phone:   strings.TrimSpace(block.Find(".phone").First().Text()),
			Fax:     strings.TrimSpace(block.Find(".fax").First().Text()),
			Email:   mailtoAddress(block.Find(`a.email[href^="mailto:"]`).First()),
			Website: pageURL,
		}
		if office.Address != "" || office.Phone != "" || office.Fax != "" || office.Email != "" {
			offices = append(offices, office)
		}
	})
	return offices
}

// JSONLDContacts scrapes schema.org JSON-LD Organization/LocalBusiness
// contactPoint entries, with a footer office-block fallback.
func JSONLDContacts(doc *goquery.Document, pageURL string) []model.Office {
	var offices []model.Office

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, script *goquery.Selection) {
		var payload any
		if err := json.Unmarshal([]byte(script.Text()), &payload); err != nil {
			// Some pages concatenate multiple JSON objects; skip those.
			return
		}
		docs, ok := payload.([]any)
		if !ok {
			docs = []any{payload}
		}
		for _, d := range docs {
			obj, ok := d.(map[string]any)
			if !ok {
				continue
			}
			typ, _ := obj["@type"].(string)
			if typ == "" {
				typ, _ = obj["type"].(string)
			}
			if typ != "Organization" && typ != "LocalBusiness" {
				continue
			}
			for _, cp := range contactPoints(obj) {
				office := model.Office{
					Address: jsonLDAddress(cp["address"]),
					Phone:   stringField(cp, "telephone"),
					Email:   stringField(cp, "email"),
					Website: pageURL,
				}
				if office.Address != "" || office.Phone != "" || office.Email != "" {
					offices = append(offices, office)
				}
			}
		}
	})

	if len(offices) > 0 {
		return offices
	}

	// Footer fallback: common contact-block selectors.
	doc.Find("footer").First().Find(".office-block, .office, .location, .contact").Each(func(_ int, block *goquery.Selection) {
		office := model.Office{
			Address: strings.TrimSpace(textWithSeparator(block, ", ")),
			Phone:   strings.TrimSpace(block.Find(".phone, .tel").First().Text()),
			Email:   mailtoAddress(block.Find(`a[href^="mailto:"]`).First()),
			Website: pageURL,
		}
		if office.Address != "" || office.Phone != "" {
			offices = append(offices, office)
		}
	})
	return offices
}

// contactPoints normalizes the contactPoint field, which may be a single
// object or a list.
func contactPoints(obj map[string]any) []map[string]any {
	raw, ok := obj["contactPoint"]
	if !ok {
		return nil
	}
	var out []map[string]any
	switch v := raw.(type) {
	case map[string]any:
		out = append(out, v)
	case []any:
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
	}
	return out
}

// jsonLDAddress flattens a schema.org address, which may be a PostalAddress
// object or a plain string.
func jsonLDAddress(raw any) string {
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v)
	case map[string]any:
		var parts []string
		for _, key := range []string{"streetAddress", "addressLocality", "addressRegion", "postalCode", "addressCountry"} {
			if s, _ := v[key].(string); strings.TrimSpace(s) != "" {
				parts = append(parts, strings.TrimSpace(s))
			}
		}
		return strings.Join(parts, ", ")
	}
	return ""
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

func mailtoAddress(a *goquery.Selection) string {
	href := a.AttrOr("href", "")
	parts := strings.SplitN(href, ":", 2)
	if len(parts) != 2 {
		return ""
	}
	return strings.TrimSpace(strings.SplitN(parts[1], "?", 2)[0])
}
