package slog

import (
	"context"
	"log/slog"
	"time"

	salesite "github.com/wellspentstyle/SaleSite-sub000"
)

// Ensure LoggingFetcher implements salesite.Fetcher.
var _ salesite.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging of fetch timing and size.
type LoggingFetcher struct {
	next   salesite.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next salesite.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the result.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Debug("fetch failed",
			"url", url,
			"kind", salesite.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return "", err
	}
	f.logger.Debug("fetch succeeded",
		"url", url,
		"bytes", len(html),
		"duration", time.Since(begin),
	)
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
