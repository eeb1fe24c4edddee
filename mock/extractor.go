package mock

import (
	"context"

	salesite "github.com/wellspentstyle/SaleSite-sub000"
)

var _ salesite.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of salesite.Extractor.
type Extractor struct {
	ExtractProductFn func(ctx context.Context, url string, opts salesite.Options) (*salesite.Extraction, error)
}

func (e *Extractor) ExtractProduct(ctx context.Context, url string, opts salesite.Options) (*salesite.Extraction, error) {
	return e.ExtractProductFn(ctx, url, opts)
}
