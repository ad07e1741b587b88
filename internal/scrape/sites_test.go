package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfficeBlocks(t *testing.T) {
	doc := docFrom(t, `
		<html><body>
		<div class="office">
			<div class="addr">1 Raffles Place<br>Singapore 048616</div>
			<div class="phone">+65 6555 0100</div>
			<div class="fax">+65 6555 0200</div>
			<a class="email" href="mailto:sg@firm.example?ref=site">Email</a>
		</div>
		<div class="office"></div>
		</body></html>`)

	offices := OfficeBlocks(doc, "https://firm.example/contact")

	require.Len(t, offices, 1)
	assert.Equal(t, "1 Raffles Place, Singapore 048616", offices[0].Address)
	assert.Equal(t, "+65 6555 0100", offices[0].Phone)
	assert.Equal(t, "+65 6555 0200", offices[0].Fax)
	assert.Equal(t, "sg@firm.example", offices[0].Email)
	assert.Equal(t, "https://firm.example/contact", offices[0].Website)
}

func TestJSONLDContacts_Organization(t *testing.T) {
	doc := docFrom(t, `
		<html><head>
		<script type="application/ld+json">
		{
			"@type": "Organization",
			"contactPoint": [{
				"telephone": "+1-212-555-0100",
				"email": "ny@firm.example",
				"address": {
					"streetAddress": "200 Park Avenue",
					"addressLocality": "New York",
					"addressRegion": "NY",
					"postalCode": "10166",
					"addressCountry": "US"
				}
			}]
		}
		</script>
		</head><body></body></html>`)

	offices := JSONLDContacts(doc, "https://firm.example")

	require.Len(t, offices, 1)
	assert.Equal(t, "200 Park Avenue, New York, NY, 10166, US", offices[0].Address)
	assert.Equal(t, "+1-212-555-0100", offices[0].Phone)
	assert.Equal(t, "ny@firm.example", offices[0].Email)
}

func TestJSONLDContacts_SingleContactPointAndStringAddress(t *testing.T) {
	doc := docFrom(t, `
		<html><head>
		<script type="application/ld+json">
		{"@type": "LocalBusiness", "contactPoint": {"telephone": "+44 20 7946 0000", "address": " 1 Poultry, London "}}
		</script>
		</head><body></body></html>`)

	offices := JSONLDContacts(doc, "https://firm.example")

	require.Len(t, offices, 1)
	assert.Equal(t, "1 Poultry, London", offices[0].Address)
	assert.Equal(t, "+44 20 7946 0000", offices[0].Phone)
}

func TestJSONLDContacts_FooterFallback(t *testing.T) {
	doc := docFrom(t, `
		<html><body>
		<script type="application/ld+json">not valid json</script>
		<footer>
			<div class="contact">5 Mill Lane, Dublin <span class="tel">+353 1 555 0100</span></div>
		</footer>
		</body></html>`)

	offices := JSONLDContacts(doc, "https://firm.example")

	require.Len(t, offices, 1)
	assert.Contains(t, offices[0].Address, "5 Mill Lane, Dublin")
	assert.Equal(t, "+353 1 555 0100", offices[0].Phone)
}

func TestJSONLDContacts_IgnoresOtherTypes(t *testing.T) {
	doc := docFrom(t, `
		<html><head>
		<script type="application/ld+json">{"@type": "WebSite", "contactPoint": {"telephone": "+1 555"}}</script>
		</head><body></body></html>`)

	assert.Empty(t, JSONLDContacts(doc, "https://firm.example"))
}
