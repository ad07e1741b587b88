// Package scrape pulls office contact information out of firm websites.
// A site-specific scraper is used when one is registered for the host;
// otherwise generic heuristics harvest addresses, phones, and emails from
// the page.
package scrape

import (
	"bytes"
	"context"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/time/rate"

	"github.com/sells-group/enrich-cli/internal/model"
)

// Options configures the scraper.
type Options struct {
	UserAgent         string
	Timeout           time.Duration
	MaxBodyBytes      int64
	MaxOffices        int
	RequestsPerSecond float64
}

// Scraper fetches firm websites and extracts office records.
type Scraper struct {
	client     *http.Client
	limiter    *rate.Limiter
	userAgent  string
	maxBody    int64
	maxOffices int
}

// New creates a Scraper, filling in defaults for zero-valued options.
func New(opts Options) *Scraper {
	if opts.UserAgent == "" {
		opts.UserAgent = "Mozilla/5.0 (compatible; EnrichBot/1.0)"
	}
	if opts.Timeout == 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.MaxBodyBytes == 0 {
		opts.MaxBodyBytes = 512 * 1024
	}
	if opts.MaxOffices == 0 {
		opts.MaxOffices = 10
	}
	if opts.RequestsPerSecond == 0 {
		opts.RequestsPerSecond = 2
	}

	return &Scraper{
		client: &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 10 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		limiter:    rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1),
		userAgent:  opts.UserAgent,
		maxBody:    opts.MaxBodyBytes,
		maxOffices: opts.MaxOffices,
	}
}

// ScrapeOffices fetches a website and returns its office records. A
// registered site-specific scraper wins; the generic heuristics are the
// fallback when it returns nothing.
func (s *Scraper) ScrapeOffices(ctx context.Context, website string) ([]model.Office, error) {
	doc, err := s.fetch(ctx, website)
	if err != nil {
		return nil, err
	}

	var offices []model.Office
	if fn := LookupSite(hostnameOf(website)); fn != nil {
		offices = fn(doc, website)
		if len(offices) > 0 {
			zap.L().Debug("site-specific scraper matched",
				zap.String("website", website),
				zap.Int("offices", len(offices)),
			)
		}
	}
	if len(offices) == 0 {
		offices = ExtractOffices(doc, website, s.maxOffices)
	}
	return offices, nil
}

// fetch GETs a URL and parses it into a document, decoding non-UTF-8
// charsets declared in the Content-Type header.
func (s *Scraper) fetch(ctx context.Context, targetURL string) (*goquery.Document, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "scrape: rate limit wait")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "scrape: create request")
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "scrape: fetch")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, eris.Errorf("scrape: status %d for %s", resp.StatusCode, targetURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBody))
	if err != nil {
		return nil, eris.Wrap(err, "scrape: read body")
	}

	body = decodeCharset(body, resp.Header.Get("Content-Type"))

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "scrape: parse html")
	}
	return doc, nil
}

// decodeCharset converts body to UTF-8 when the Content-Type declares a
// different charset. Unknown charsets are passed through untouched.
func decodeCharset(body []byte, contentType string) []byte {
	if contentType == "" {
		return body
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return body
	}
	charset := strings.ToLower(params["charset"])
	if charset == "" || charset == "utf-8" || charset == "utf8" {
		return body
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return body
	}
	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return body
	}
	return decoded
}

func hostnameOf(website string) string {
	u, err := url.Parse(website)
	if err != nil || u.Hostname() == "" {
		return website
	}
	return u.Hostname()
}
