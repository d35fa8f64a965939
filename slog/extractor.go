package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pincraft"
)

// Ensure LoggingExtractor implements pincraft.Extractor.
var _ pincraft.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   pincraft.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pincraft.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs what it found.
func (e *LoggingExtractor) Extract(html, url string) (content *pincraft.ExtractedContent, err error) {
	defer func(begin time.Time) {
		var title string
		var length, headings int
		if content != nil {
			title = content.Title
			length = len(content.Content)
			headings = len(content.Headings)
		}
		e.logger.Info("extract",
			"url", url,
			"title", title,
			"content_bytes", length,
			"headings", headings,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, url)
}
