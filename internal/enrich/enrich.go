// Package enrich assembles the full enrichment result for a firm: parsed
// and formatted addresses, display phone and fax numbers, inferred
// currency, and the generated "About" paragraph. It is pure orchestration
// over the address, phone, country, and narrative packages.
package enrich

import (
	"strings"

	"github.com/sells-group/enrich-cli/internal/address"
	"github.com/sells-group/enrich-cli/internal/country"
	"github.com/sells-group/enrich-cli/internal/model"
	"github.com/sells-group/enrich-cli/internal/narrative"
	"github.com/sells-group/enrich-cli/internal/phone"
)

// Enrich processes a full request: the headquarters office, any additional
// offices, currency inference, and the narrative. It cannot fail; missing
// inputs degrade to empty or placeholder outputs.
func Enrich(req model.EnrichRequest) model.EnrichResponse {
	hqParsed := address.Parse(req.HQ.Address)

	offices := make([]model.OfficeOutput, 0, 1+len(req.AltOffices))
	offices = append(offices, enrichOffice(req.HQ, hqParsed.CountryISO))
	for _, alt := range req.AltOffices {
		offices = append(offices, enrichOffice(alt, hqParsed.CountryISO))
	}

	currency := strings.TrimSpace(req.Currency)
	if currency == "" {
		currency = country.CurrencyFromISO(hqParsed.CountryISO)
	}

	about := narrative.Build(model.FirmProfile{
		Name:     req.FirmName,
		FirmType: req.FirmType,
		Location: &model.Location{
			Locality: hqParsed.City,
			Region:   hqParsed.State,
			Country:  hqParsed.Country,
		},
		RawAddress: req.HQ.Address,
		Services:   req.Services,
		Funds:      req.Funds,
	})

	hq := offices[0]
	return model.EnrichResponse{
		FormattedPhone:   hq.FormattedPhone,
		PhoneValid:       hq.PhoneValid,
		FormattedFax:     hq.FormattedFax,
		FaxValid:         hq.FaxValid,
		FormattedAddress: hq.FormattedAddress,
		CountryISO:       hqParsed.CountryISO,
		Currency:         currency,
		About:            about,
		Offices:          offices,
		HQParsed:         &hqParsed,
	}
}

// NormalizeOffices enriches scraped office records: each address is parsed
// and re-assembled, and phones and faxes are formatted against the office's
// own country.
func NormalizeOffices(offices []model.Office) []model.OfficeOutput {
	out := make([]model.OfficeOutput, 0, len(offices))
	for _, office := range offices {
		out = append(out, enrichOffice(office, ""))
	}
	return out
}

// enrichOffice enriches a single office. fallbackISO supplies the country
// for phone formatting when the office address itself does not resolve.
func enrichOffice(office model.Office, fallbackISO string) model.OfficeOutput {
	parsed := address.Parse(office.Address)

	iso := parsed.CountryISO
	if iso == "" {
		iso = fallbackISO
	}

	out := model.OfficeOutput{
		InputAddress:     office.Address,
		FormattedAddress: address.Standard(parsed),
		Parsed:           &parsed,
		Website:          office.Website,
		Email:            office.Email,
		CountryISO:       parsed.CountryISO,
	}
	if office.Phone != "" {
		out.FormattedPhone, out.PhoneValid = phone.Format(office.Phone, iso, parsed.City)
	}
	if office.Fax != "" {
		out.FormattedFax, out.FaxValid = phone.Format(office.Fax, iso, parsed.City)
	}
	return out
}
