package salesite

import "context"

// Extractor converts one product URL into a structured sale record.
// Implementations sequence the extraction phases; the first phase that
// yields a valid result wins.
type Extractor interface {
	// ExtractProduct runs the full per-URL pipeline.
	// Failures carry an error code from the BLOCKING/RETRYABLE/FATAL
	// taxonomy; low-confidence results are rejected with EINVALID unless
	// opts.Diagnostics is set.
	ExtractProduct(ctx context.Context, url string, opts Options) (*Extraction, error)
}
