package scrape

import (
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"

	"github.com/sells-group/enrich-cli/internal/model"
)

// SiteScraper extracts offices from a page using site-specific knowledge.
// Implementations should be conservative and only return entries they are
// confident in; returning nothing falls back to the generic heuristics.
type SiteScraper func(doc *goquery.Document, pageURL string) []model.Office

var (
	sitesMu sync.RWMutex
	sites   = map[string]SiteScraper{}
)

// RegisterSite associates a scraper with a hostname. Registering the bare
// domain covers the "www." variant as well.
func RegisterSite(host string, fn SiteScraper) {
	sitesMu.Lock()
	defer sitesMu.Unlock()
	sites[strings.ToLower(host)] = fn
}

// LookupSite finds the scraper for a hostname, trying the exact host first
// and then the host with a leading "www." stripped. Nil when no scraper is
// registered.
func LookupSite(host string) SiteScraper {
	host = strings.ToLower(host)

	sitesMu.RLock()
	defer sitesMu.RUnlock()
	if fn, ok := sites[host]; ok {
		return fn
	}
	if fn, ok := sites[strings.TrimPrefix(host, "www.")]; ok {
		return fn
	}
	return nil
}
