package enrich

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/enrich-cli/internal/model"
)

func TestEnrich_FullRequest(t *testing.T) {
	resp := Enrich(model.EnrichRequest{
		FirmName: "Acme Capital",
		FirmType: "private equity",
		HQ: model.Office{
			Address: "100 Park Ave, New York, NY, USA",
			Phone:   "+1 212 555 0100",
			Email:   "info@acme.example",
		},
		Services: []string{"buyout", "venture capital"},
		Funds:    []string{"CLO", "real estate"},
	})

	assert.Equal(t, "US", resp.CountryISO)
	assert.Equal(t, "USD", resp.Currency)
	assert.True(t, strings.HasPrefix(resp.About, "Acme Capital is a private equity firm headquartered in NY,"))
	assert.Contains(t, resp.About, "It provides services including buyout, venture capital, and more.")
	assert.Contains(t, resp.About, "The fund types advised by the firm are CLO and real estate, among others.")

	require.Len(t, resp.Offices, 1)
	assert.Equal(t, "100 Park Ave, New York, NY, USA", resp.Offices[0].InputAddress)
	assert.Contains(t, resp.Offices[0].FormattedAddress, "New York")
	assert.True(t, strings.HasPrefix(resp.Offices[0].FormattedPhone, "+1"))
	require.NotNil(t, resp.HQParsed)
	assert.Equal(t, "New York", resp.HQParsed.City)
	assert.Equal(t, "NY", resp.HQParsed.State)
}

func TestEnrich_CurrencyOverride(t *testing.T) {
	resp := Enrich(model.EnrichRequest{
		HQ:       model.Office{Address: "1 Marina Blvd, Singapore, Singapore"},
		Currency: "EUR",
	})
	assert.Equal(t, "EUR", resp.Currency)
}

func TestEnrich_CurrencyInferredFromHQ(t *testing.T) {
	resp := Enrich(model.EnrichRequest{
		HQ: model.Office{Address: "4 More London Riverside, London, SE1 2AU, United Kingdom"},
	})
	assert.Equal(t, "GB", resp.CountryISO)
	assert.Equal(t, "GBP", resp.Currency)
}

func TestEnrich_EmptyRequest(t *testing.T) {
	resp := Enrich(model.EnrichRequest{})

	require.Len(t, resp.Offices, 1)
	assert.NotEmpty(t, resp.About)
	assert.Equal(t, 3, strings.Count(resp.About, "."))
	assert.True(t, strings.HasPrefix(resp.About, "The firm is a firm headquartered in an unknown location."))
	assert.Equal(t, "", resp.Currency)
	assert.False(t, resp.PhoneValid)
}

func TestEnrich_AltOfficeUsesHQCountryFallback(t *testing.T) {
	resp := Enrich(model.EnrichRequest{
		HQ: model.Office{Address: "100 Park Ave, New York, NY, USA"},
		AltOffices: []model.Office{
			{Address: "5 High Street", Phone: "212 555 0199"},
		},
	})

	require.Len(t, resp.Offices, 2)
	alt := resp.Offices[1]
	assert.True(t, strings.HasPrefix(alt.FormattedPhone, "+1"), "got %q", alt.FormattedPhone)
	assert.True(t, alt.PhoneValid)
}

func TestNormalizeOffices(t *testing.T) {
	out := NormalizeOffices([]model.Office{
		{Address: "Prannerstrasse 15, 80333, Munich, Germany", Phone: "089 123456"},
		{},
	})

	require.Len(t, out, 2)
	assert.Equal(t, "DE", out[0].CountryISO)
	assert.Contains(t, out[0].FormattedAddress, "Munich")
	assert.True(t, strings.HasPrefix(out[0].FormattedPhone, "+49"))
	assert.Equal(t, "", out[1].FormattedAddress)
}
