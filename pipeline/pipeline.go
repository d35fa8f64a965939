package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/fwojciec/pincraft"
	"github.com/google/uuid"
)

// Pipeline turns a Request into a Result: scrape the article, ask the AI
// generator for pin copy and fall back to the template generator when the
// AI is not configured or fails.
//
// A Pipeline handles one request at a time. Run returns ECONFLICT while
// another call is in flight.
type Pipeline struct {
	scraper  *Scraper
	ai       pincraft.Generator
	fallback pincraft.Generator
	logger   *slog.Logger
	newID    func() string

	busy atomic.Bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithAIGenerator sets the language-model generator tried first.
func WithAIGenerator(g pincraft.Generator) Option {
	return func(p *Pipeline) {
		p.ai = g
	}
}

// WithLogger sets the logger used for fallback decisions.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = l
	}
}

// WithIDGenerator overrides how request IDs are created.
func WithIDGenerator(fn func() string) Option {
	return func(p *Pipeline) {
		p.newID = fn
	}
}

// New creates a Pipeline. Fallback is the generator used when the AI
// generator is absent or fails; it is expected to always succeed.
func New(scraper *Scraper, fallback pincraft.Generator, opts ...Option) *Pipeline {
	p := &Pipeline{
		scraper:  scraper,
		fallback: fallback,
		logger:   slog.New(slog.DiscardHandler),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run processes req. Only an invalid request, a concurrent call, a
// canceled context or a failing fallback generator produce an error.
func (p *Pipeline) Run(ctx context.Context, req pincraft.Request) (*pincraft.Result, error) {
	req.URL = strings.TrimSpace(req.URL)
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !p.busy.CompareAndSwap(false, true) {
		return nil, pincraft.Errorf(pincraft.ECONFLICT, "a request is already being processed")
	}
	defer p.busy.Store(false)

	id := p.newID()
	logger := p.logger.With("request_id", id)

	extracted := p.scraper.Scrape(ctx, req.URL)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger.Info("scraped", "url", req.URL, "method", extracted.ExtractionMethod)

	result := &pincraft.Result{RequestID: id, Extracted: extracted}

	if p.ai != nil {
		content, err := p.ai.Generate(ctx, extracted, req.Niche, req.Insights)
		if err == nil {
			result.Content = content
			result.AIGenerated = true
			logger.Info("generated", "ai", true)
			return result, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		logger.Warn("AI generation failed, using templates", "err", err)
	}

	content, err := p.fallback.Generate(ctx, extracted, req.Niche, req.Insights)
	if err != nil {
		logger.Error("template generation failed", "err", err)
		return nil, pincraft.Errorf(pincraft.EINTERNAL, "failed to generate content")
	}
	result.Content = content
	logger.Info("generated", "ai", false)
	return result, nil
}
