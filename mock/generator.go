package mock

import (
	"context"

	"github.com/fwojciec/pincraft"
)

var _ pincraft.Generator = (*Generator)(nil)

// Generator is a mock implementation of pincraft.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, content *pincraft.ExtractedContent, niche pincraft.Niche, insights string) (*pincraft.GeneratedContent, error)
}

func (g *Generator) Generate(ctx context.Context, content *pincraft.ExtractedContent, niche pincraft.Niche, insights string) (*pincraft.GeneratedContent, error) {
	return g.GenerateFn(ctx, content, niche, insights)
}
