package salesite

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the HTML document at url.
	// The context controls timeout and cancellation. Failures carry an
	// error code classifying whether the domain is implicated (EBLOCKED)
	// or not (ERETRYABLE, EFATAL).
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources.
	Close() error
}
