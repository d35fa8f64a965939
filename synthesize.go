package pincraft

import (
	"fmt"
	"strings"
)

// Synthesize builds an ExtractedContent from the URL alone. It is the
// terminal strategy when no HTML could be retrieved or parsed, and it
// always returns a valid record.
func Synthesize(rawURL string) *ExtractedContent {
	u, ok := ParseArticleURL(rawURL)
	if !ok {
		return NewExtractedContent(ExtractedContent{
			Title:            "Article Content for Pinterest",
			Description:      "Content optimized for Pinterest sharing",
			Content:          "This content has been prepared for Pinterest optimization with engaging titles, descriptions, and strategic hashtags.",
			Headings:         []string{"Main Content"},
			URL:              rawURL,
			ExtractionMethod: MethodBasicFallback,
		})
	}

	domain := strings.TrimPrefix(u.Hostname(), "www.")
	title := TitleFromURL(rawURL)
	topic := strings.ToLower(title)

	content := fmt.Sprintf("This article from %s covers important topics related to %s. ", domain, topic) +
		"The content provides valuable insights and practical information that can be optimized for Pinterest sharing. " +
		"Key topics likely include tips, strategies, and actionable advice for readers interested in this subject."

	return NewExtractedContent(ExtractedContent{
		Title:            title,
		Description:      fmt.Sprintf("Valuable content from %s about %s", domain, topic),
		Content:          content,
		Headings:         []string{"Introduction", "Key Points", "Conclusion"},
		URL:              rawURL,
		ExtractionMethod: MethodIntelligentFallback,
	})
}
