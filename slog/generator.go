package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pincraft"
)

// Ensure LoggingGenerator implements pincraft.Generator.
var _ pincraft.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with logging.
type LoggingGenerator struct {
	next     pincraft.Generator
	provider string
	logger   *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator. Provider names the
// backend in log lines, e.g. "anthropic" or "template".
func NewLoggingGenerator(next pincraft.Generator, provider string, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, provider: provider, logger: logger}
}

// Generate delegates to the wrapped generator and logs the outcome.
func (g *LoggingGenerator) Generate(ctx context.Context, content *pincraft.ExtractedContent, niche pincraft.Niche, insights string) (out *pincraft.GeneratedContent, err error) {
	defer func(begin time.Time) {
		var titles, descriptions int
		if out != nil {
			titles = len(out.PinTitles)
			descriptions = len(out.Descriptions)
		}
		g.logger.Info("generate",
			"provider", g.provider,
			"niche", string(niche),
			"titles", titles,
			"descriptions", descriptions,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, content, niche, insights)
}
