// Package pipeline wires fetchers, an extractor and generators into the
// scrape-then-generate flow behind a single request.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/fwojciec/pincraft"
)

// Strategy is one way of retrieving article HTML, tagged with the
// extraction method recorded when it succeeds.
type Strategy struct {
	Method  pincraft.ExtractionMethod
	Fetcher pincraft.Fetcher
}

// Scraper tries each strategy once, in order, and extracts content from the
// first HTML it gets. When nothing can be fetched or extracted it falls
// back to pincraft.Synthesize.
type Scraper struct {
	strategies []Strategy
	extractor  pincraft.Extractor
	logger     *slog.Logger
}

// NewScraper creates a Scraper. A nil logger discards log output.
func NewScraper(extractor pincraft.Extractor, logger *slog.Logger, strategies ...Strategy) *Scraper {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scraper{strategies: strategies, extractor: extractor, logger: logger}
}

// Scrape returns content for url. It never fails: the synthesized record
// is the last resort.
func (s *Scraper) Scrape(ctx context.Context, url string) *pincraft.ExtractedContent {
	for _, st := range s.strategies {
		if ctx.Err() != nil {
			break
		}
		html, err := st.Fetcher.Fetch(ctx, url)
		if err != nil {
			s.logger.Debug("strategy failed", "method", st.Method, "url", url, "err", err)
			continue
		}

		content, err := s.extractor.Extract(html, url)
		if err != nil {
			// Unparseable HTML goes straight to the synthesizer.
			s.logger.Debug("extraction failed", "method", st.Method, "url", url, "err", err)
			break
		}
		if content == nil {
			s.logger.Debug("extraction returned no content", "method", st.Method, "url", url)
			break
		}
		content.ExtractionMethod = st.Method
		return content
	}

	content := pincraft.Synthesize(url)
	s.logger.Info("using synthesized content", "url", url, "method", content.ExtractionMethod)
	return content
}

// Close closes every strategy's fetcher and returns the first error.
func (s *Scraper) Close() error {
	var first error
	for _, st := range s.strategies {
		if err := st.Fetcher.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
