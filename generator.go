package pincraft

import "context"

// Generator produces pin copy from extracted article content.
type Generator interface {
	// Generate returns pin titles, descriptions, hashtags and insights for
	// content, targeted at niche. Insights is free text from the user and
	// may be ignored by generators that do not use it.
	Generate(ctx context.Context, content *ExtractedContent, niche Niche, insights string) (*GeneratedContent, error)
}
