// Package slog provides logging decorators for salesite interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	salesite "github.com/wellspentstyle/SaleSite-sub000"
)

// Ensure LoggingExtractor implements salesite.Extractor.
var _ salesite.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with structured per-URL logging.
type LoggingExtractor struct {
	next   salesite.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next salesite.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractProduct delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) ExtractProduct(ctx context.Context, url string, opts salesite.Options) (*salesite.Extraction, error) {
	begin := time.Now()
	extraction, err := e.next.ExtractProduct(ctx, url, opts)
	if err != nil {
		e.logger.Warn("extraction failed",
			"url", url,
			"kind", salesite.ErrorCode(err),
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	e.logger.Info("extraction succeeded",
		"url", url,
		"method", string(extraction.Method),
		"confidence", extraction.Confidence,
		"percentOff", extraction.Product.PercentOff,
		"duration", time.Since(begin),
	)
	return extraction, nil
}
