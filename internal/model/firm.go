// Package model holds the shared request, response, and profile types
// exchanged between the CLI, the HTTP surface, and the enrichment core.
package model

// Location is a structured headquarters location, typically supplied by a
// prior enrichment step. Region takes precedence over Locality when both
// are present.
type Location struct {
	Locality string `json:"locality,omitempty"`
	Region   string `json:"region,omitempty"`
	Country  string `json:"country,omitempty"`
}

// FirmProfile is the input to the narrative generator. Every field may be
// absent or empty; the generator defines a fallback for each.
type FirmProfile struct {
	Name       string    `json:"name,omitempty"`
	FirmType   string    `json:"firm_type,omitempty"`
	Location   *Location `json:"location,omitempty"`
	RawAddress string    `json:"raw_address,omitempty"`
	Services   []string  `json:"services,omitempty"`
	Funds      []string  `json:"funds,omitempty"`
}
