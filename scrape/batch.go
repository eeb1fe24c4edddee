package scrape

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	salesite "github.com/wellspentstyle/SaleSite-sub000"
)

// Batch drives the per-URL extractor over an ordered URL list. URLs are
// processed strictly in input order, one at a time, so the circuit breaker
// never races a concurrent attempt against the same domain.
type Batch struct {
	Extractor salesite.Extractor

	// Limiter, if set, enforces per-domain politeness delays between
	// attempts. It only delays; ordering is unaffected.
	Limiter salesite.DomainLimiter
}

// Run processes urls in order and returns the collected outcomes. The emit
// callback, if provided, receives one event per state transition; passing
// nil yields the identical per-URL behavior without streaming.
//
// The failed-domain set lives only for this call: once a URL fails with
// EBLOCKED, every later URL on the same domain is skipped with zero
// network or LLM calls. A canceled context stops the loop and returns the
// partial result alongside the context error.
func (b *Batch) Run(ctx context.Context, urls []string, opts salesite.Options, emit salesite.EventFunc) (*salesite.BatchResult, error) {
	result := &salesite.BatchResult{
		BatchID: uuid.NewString(),
		Items:   make([]salesite.BatchItem, 0, len(urls)),
		Total:   len(urls),
	}
	failedDomains := make(map[string]struct{})

	send := func(event salesite.Event) {
		if emit != nil {
			event.BatchID = result.BatchID
			event.Total = len(urls)
			emit(event)
		}
	}

	send(salesite.Event{Type: salesite.EventStart})

	for i, url := range urls {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		domain := salesite.Domain(url)
		if _, failed := failedDomains[domain]; domain != "" && failed {
			item := salesite.BatchItem{
				Index:      i,
				URL:        url,
				Status:     salesite.StatusSkipped,
				SkipReason: fmt.Sprintf("domain %s failed on a previous URL in this batch", domain),
			}
			result.Items = append(result.Items, item)
			result.Skipped++
			send(salesite.Event{Type: salesite.EventSkip, Index: i, URL: url, Current: i + 1, Item: &item})
			continue
		}

		send(salesite.Event{Type: salesite.EventScraping, Index: i, URL: url, Current: i + 1})

		if b.Limiter != nil && domain != "" {
			if err := b.Limiter.Wait(ctx, domain); err != nil {
				return result, err
			}
		}

		start := time.Now()
		extraction, err := b.Extractor.ExtractProduct(ctx, url, opts)
		item := salesite.BatchItem{
			Index:  i,
			URL:    url,
			Millis: time.Since(start).Milliseconds(),
		}

		if err != nil {
			kind := salesite.ErrorCode(err)
			if kind == salesite.EBLOCKED && domain != "" {
				failedDomains[domain] = struct{}{}
			}
			item.Status = salesite.StatusFailure
			item.Err = salesite.ErrorMessage(err)
			item.ErrKind = kind
			result.Items = append(result.Items, item)
			result.Failures++
			send(salesite.Event{Type: salesite.EventError, Index: i, URL: url, Current: i + 1, Item: &item})
			continue
		}

		item.Status = salesite.StatusSuccess
		item.Extraction = extraction
		result.Items = append(result.Items, item)
		result.Successes++
		send(salesite.Event{Type: salesite.EventSuccess, Index: i, URL: url, Current: i + 1, Item: &item})
	}

	send(salesite.Event{Type: salesite.EventComplete, Current: len(urls), Result: result})

	return result, nil
}
