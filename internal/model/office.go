package model

// Office is a raw office record as read from a request or scraped from a
// firm website. All fields are optional free text.
type Office struct {
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Fax     string `json:"fax,omitempty"`
	Website string `json:"website,omitempty"`
	Email   string `json:"email,omitempty"`
}

// ParsedAddress is the best-effort decomposition of a free-text address.
type ParsedAddress struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Postcode   string `json:"postcode,omitempty"`
	Country    string `json:"country,omitempty"`
	CountryISO string `json:"country_iso,omitempty"`
}

// OfficeOutput is a fully enriched office.
type OfficeOutput struct {
	InputAddress     string         `json:"input_address,omitempty"`
	FormattedAddress string         `json:"formatted_address,omitempty"`
	Parsed           *ParsedAddress `json:"parsed,omitempty"`
	FormattedPhone   string         `json:"formatted_phone,omitempty"`
	PhoneValid       bool           `json:"phone_valid"`
	FormattedFax     string         `json:"formatted_fax,omitempty"`
	FaxValid         bool           `json:"fax_valid"`
	Website          string         `json:"website,omitempty"`
	Email            string         `json:"email,omitempty"`
	CountryISO       string         `json:"country_iso,omitempty"`
}

// EnrichRequest is a full enrichment request: the firm profile plus its
// headquarters and any additional offices.
type EnrichRequest struct {
	FirmName   string   `json:"firm_name,omitempty"`
	FirmType   string   `json:"firm_type,omitempty"`
	HQ         Office   `json:"hq"`
	AltOffices []Office `json:"alt_offices,omitempty"`
	Services   []string `json:"services_offered,omitempty"`
	Funds      []string `json:"funds_serviced,omitempty"`
	Currency   string   `json:"currency,omitempty"`
}

// EnrichResponse is the enrichment result. The HQ-level fields are
// duplicated from Offices[0] for callers that only care about headquarters.
type EnrichResponse struct {
	FormattedPhone   string         `json:"formatted_phone,omitempty"`
	PhoneValid       bool           `json:"phone_valid"`
	FormattedFax     string         `json:"formatted_fax,omitempty"`
	FaxValid         bool           `json:"fax_valid"`
	FormattedAddress string         `json:"formatted_address,omitempty"`
	CountryISO       string         `json:"country_iso,omitempty"`
	Currency         string         `json:"currency,omitempty"`
	About            string         `json:"about"`
	Offices          []OfficeOutput `json:"offices"`
	HQParsed         *ParsedAddress `json:"hq_parsed,omitempty"`
}
