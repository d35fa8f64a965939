package pincraft

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Length caps enforced on ExtractedContent fields.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 300
	MaxContentLength     = 2000
	MaxHeadingLength     = 200
	MaxHeadings          = 10
)

// ThinContentLength is the body length under which extracted content is
// augmented with a filler sentence referencing the source host.
const ThinContentLength = 200

// ExtractionMethod records which fetch/parse path produced an ExtractedContent.
type ExtractionMethod string

// ExtractionMethod constants.
const (
	MethodDirectScrape        ExtractionMethod = "direct-scrape"
	MethodProxyScrape         ExtractionMethod = "proxy-scrape"
	MethodIntelligentFallback ExtractionMethod = "intelligent-fallback"
	MethodBasicFallback       ExtractionMethod = "basic-fallback"
)

// ExtractedContent is the normalized article record handed to generators.
type ExtractedContent struct {
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	Content          string           `json:"content"`
	Headings         []string         `json:"headings"`
	URL              string           `json:"url"`
	ExtractionMethod ExtractionMethod `json:"extractionMethod"`
}

// NewExtractedContent returns a copy of c with all length caps applied.
// An empty title is derived from the URL and an empty body is replaced with
// the host filler sentence, so the result always has a title and content.
func NewExtractedContent(c ExtractedContent) *ExtractedContent {
	title := strings.TrimSpace(c.Title)
	if title == "" {
		title = TitleFromURL(c.URL)
	}

	content := strings.TrimSpace(c.Content)
	if content == "" {
		content = AugmentContent("", c.URL)
	}

	headings := make([]string, 0, min(len(c.Headings), MaxHeadings))
	for _, h := range c.Headings {
		if len(headings) == MaxHeadings {
			break
		}
		headings = append(headings, Truncate(h, MaxHeadingLength))
	}

	return &ExtractedContent{
		Title:            Truncate(title, MaxTitleLength),
		Description:      Truncate(c.Description, MaxDescriptionLength),
		Content:          Truncate(content, MaxContentLength),
		Headings:         headings,
		URL:              c.URL,
		ExtractionMethod: c.ExtractionMethod,
	}
}

// AugmentContent appends a sentence naming the source host when content is
// shorter than ThinContentLength characters.
func AugmentContent(content, rawURL string) string {
	if utf8.RuneCountInString(content) >= ThinContentLength {
		return content
	}
	filler := fmt.Sprintf("This article from %s provides valuable insights on the topic.", Hostname(rawURL))
	if content == "" {
		return filler
	}
	return content + " " + filler
}

// CollapseWhitespace replaces every run of whitespace with a single space
// and trims the result.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate returns at most n runes of s.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
