// Package slog provides log/slog decorators for the pincraft interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pincraft"
)

// Ensure LoggingFetcher implements pincraft.Fetcher.
var _ pincraft.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   pincraft.Fetcher
	method pincraft.ExtractionMethod
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher. Method labels the log
// lines with the strategy the fetcher serves.
func NewLoggingFetcher(next pincraft.Fetcher, method pincraft.ExtractionMethod, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, method: method, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the attempt.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"method", f.method,
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
