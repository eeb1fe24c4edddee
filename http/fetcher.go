// Package http provides an HTTP-based implementation of salesite.Fetcher
// that classifies response failures into the blocking/retryable/fatal
// taxonomy consumed by the batch circuit breaker.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	salesite "github.com/wellspentstyle/SaleSite-sub000"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 15 * time.Second

// userAgent identifies the scraper politely; some storefronts reject the
// Go default agent outright.
const userAgent = "Mozilla/5.0 (compatible; salesite-scraper/1.0)"

// Ensure Fetcher implements salesite.Fetcher at compile time.
var _ salesite.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves raw product-page HTML over plain HTTP.
// It does not execute JavaScript.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL. Non-200 responses
// are classified: statuses that signal active bot resistance come back as
// EBLOCKED so the batch coordinator can stop hitting the domain.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", salesite.Errorf(salesite.EINVALID, "invalid request URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", err
		}
		return "", salesite.Errorf(salesite.ERETRYABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", classifyStatus(resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", salesite.Errorf(salesite.ERETRYABLE, "read body of %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. No-op for the plain HTTP client.
func (f *Fetcher) Close() error {
	return nil
}

// classifyStatus maps a non-200 status to an error kind.
//
//	401/403/429: the site resists automated access; implicates the domain
//	408/5xx: transient; unrelated same-domain URLs may still succeed
//	anything else: this URL only
func classifyStatus(status int, url string) error {
	switch {
	case status == http.StatusUnauthorized,
		status == http.StatusForbidden,
		status == http.StatusTooManyRequests:
		return salesite.Errorf(salesite.EBLOCKED, "HTTP %d for %s", status, url)
	case status == http.StatusRequestTimeout, status >= 500:
		return salesite.Errorf(salesite.ERETRYABLE, "HTTP %d for %s", status, url)
	default:
		return salesite.Errorf(salesite.EFATAL, "HTTP %d for %s", status, url)
	}
}
