package pipeline

import (
	"context"
	"time"

	"github.com/fwojciec/pincraft"
	"golang.org/x/time/rate"
)

// DefaultGenerateInterval is the minimum spacing between AI requests.
const DefaultGenerateInterval = 2 * time.Second

var _ pincraft.Generator = (*RateLimitedGenerator)(nil)

// RateLimitedGenerator spaces calls to the wrapped generator using a token
// bucket with a burst of 1.
type RateLimitedGenerator struct {
	next    pincraft.Generator
	limiter *rate.Limiter
}

// NewRateLimitedGenerator allows one call per interval. A non-positive
// interval selects DefaultGenerateInterval.
func NewRateLimitedGenerator(next pincraft.Generator, interval time.Duration) *RateLimitedGenerator {
	if interval <= 0 {
		interval = DefaultGenerateInterval
	}
	return &RateLimitedGenerator{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Generate waits for a token, then delegates. It returns the context error
// if ctx is done before a token is available.
func (g *RateLimitedGenerator) Generate(ctx context.Context, content *pincraft.ExtractedContent, niche pincraft.Niche, insights string) (*pincraft.GeneratedContent, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return g.next.Generate(ctx, content, niche, insights)
}
