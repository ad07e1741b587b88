package narrative

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/enrich-cli/internal/model"
)

func TestParseRawAddress_DigitTokensExcluded(t *testing.T) {
	primary, country := parseRawAddress("1 Main St, Suite 2, New York, NY, USA")
	assert.Equal(t, "NY", primary)
	assert.Equal(t, "USA", country)
}

func TestParseRawAddress_SingleToken(t *testing.T) {
	primary, country := parseRawAddress("France")
	assert.Equal(t, "", primary)
	assert.Equal(t, "France", country)
}

func TestParseRawAddress_Empty(t *testing.T) {
	primary, country := parseRawAddress("")
	assert.Equal(t, "", primary)
	assert.Equal(t, "", country)

	primary, country = parseRawAddress(" , , ")
	assert.Equal(t, "", primary)
	assert.Equal(t, "", country)
}

func TestParseRawAddress_AllDigitBearingFallback(t *testing.T) {
	// No digit-free candidate remains: fall back to the second-to-last raw
	// token with its numeric words stripped.
	primary, country := parseRawAddress("Suite 400, 80333 Munich, Germany")
	assert.Equal(t, "Munich", primary)
	assert.Equal(t, "Germany", country)
}

func TestParseRawAddress_AllNumericToken(t *testing.T) {
	primary, country := parseRawAddress("12345, 67890, Germany")
	assert.Equal(t, "67890", primary)
	assert.Equal(t, "Germany", country)
}

func TestResolveLocation_StructuredPreferred(t *testing.T) {
	loc := &model.Location{Locality: "New York", Region: "NY", Country: "USA"}
	assert.Equal(t, "NY, USA", resolveLocation(loc, "ignored, raw, address"))

	loc = &model.Location{Locality: "London", Country: "United Kingdom"}
	assert.Equal(t, "London, United Kingdom", resolveLocation(loc, ""))
}

func TestResolveLocation_StructuredWithoutCountry(t *testing.T) {
	loc := &model.Location{Region: "Bavaria"}
	assert.Equal(t, "Bavaria", resolveLocation(loc, ""))
}

func TestResolveLocation_EmptyStructuredFallsBack(t *testing.T) {
	assert.Equal(t, "France", resolveLocation(&model.Location{}, "France"))
}

func TestResolveLocation_Unknown(t *testing.T) {
	assert.Equal(t, "an unknown location", resolveLocation(nil, ""))
}

func TestFormatLocation(t *testing.T) {
	assert.Equal(t, "NY, USA", formatLocation("NY", "USA"))
	assert.Equal(t, "NY", formatLocation("NY", ""))
	assert.Equal(t, "USA", formatLocation("", "USA"))
	assert.Equal(t, "an unknown location", formatLocation("", ""))
}
