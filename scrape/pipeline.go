package scrape

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	salesite "github.com/wellspentstyle/SaleSite-sub000"
	"github.com/wellspentstyle/SaleSite-sub000/goquery"
)

// DefaultTimeout bounds one URL's full pipeline: fetch, reduction, the
// completion call, and scoring. The HTTP fetch keeps its own shorter
// client timeout.
const DefaultTimeout = 90 * time.Second

// Ensure Pipeline implements salesite.Extractor at compile time.
var _ salesite.Extractor = (*Pipeline)(nil)

// Pipeline is the per-URL orchestrator. Phases run in order and the first
// phase that yields a valid result wins; there is no retry between phases.
type Pipeline struct {
	Fetcher   salesite.Fetcher
	Completer salesite.Completer

	// Timeout for the whole per-URL pipeline. Defaults to DefaultTimeout.
	Timeout time.Duration
}

// ExtractProduct converts a product URL into a structured sale record:
// fetch, structured-data extraction (short-circuits on success), preview
// image pre-extraction, relevance reduction, one completion call, and
// confidence scoring.
func (p *Pipeline) ExtractProduct(ctx context.Context, url string, opts salesite.Options) (*salesite.Extraction, error) {
	if salesite.Domain(url) == "" {
		return nil, salesite.Errorf(salesite.EINVALID, "invalid product URL %q", url)
	}

	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var diag *salesite.Diagnostics
	if opts.Diagnostics {
		diag = &salesite.Diagnostics{}
	}

	fetchStart := time.Now()
	html, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, classifyTimeout(err, "fetch %s", url)
	}
	if diag != nil {
		diag.FetchMillis = time.Since(fetchStart).Milliseconds()
		diag.HTMLHash = fmt.Sprintf("%x", xxhash.Sum64String(html))
		diag.HTMLLen = len(html)
	}

	if record := goquery.StructuredProduct(html, url); record != nil {
		return &salesite.Extraction{
			Product:     *record,
			Method:      salesite.MethodStructuredData,
			Confidence:  record.Confidence,
			Diagnostics: diag,
		}, nil
	}

	imageHint := goquery.PreviewImage(html)
	reduced := goquery.ReduceHTML(html)
	if diag != nil {
		diag.PreviewImage = imageHint
		diag.ReducedLen = len(reduced)
	}

	completeStart := time.Now()
	reply, err := p.Completer.Complete(ctx, systemInstruction, buildPrompt(url, reduced, imageHint))
	if err != nil {
		return nil, classifyTimeout(err, "completion for %s", url)
	}
	if diag != nil {
		diag.CompleteMillis = time.Since(completeStart).Milliseconds()
	}

	parsed, err := parseReply(reply)
	if err != nil {
		return nil, err
	}

	record, err := scoreCandidate(parsed, html, url, opts, diag)
	if err != nil {
		return nil, err
	}

	return &salesite.Extraction{
		Product:     *record,
		Method:      salesite.MethodAIExtraction,
		Confidence:  record.Confidence,
		Diagnostics: diag,
	}, nil
}

// classifyTimeout maps deadline expiry to ERETRYABLE so the breaker does
// not punish a slow domain; other errors keep their own classification.
func classifyTimeout(err error, format string, args ...any) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return salesite.Errorf(salesite.ERETRYABLE, "%s timed out", fmt.Sprintf(format, args...))
	}
	return err
}
