// Package readability implements pincraft.Extractor with go-readability,
// a port of Mozilla's Readability article scorer.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/pincraft"
	"github.com/fwojciec/pincraft/goquery"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements pincraft.Extractor at compile time.
var _ pincraft.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to find the article body. Title,
// description and headings come from the page markup so the record has the
// same shape as the selector-based extractor's.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article content. When
// readability cannot score the page, paragraph text is used instead.
func (e *Extractor) Extract(rawHTML, pageURL string) (*pincraft.ExtractedContent, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pincraft.Errorf(pincraft.EINVALID, "empty HTML input")
	}

	meta, err := goquery.ParseMetadata(rawHTML, pageURL)
	if err != nil {
		return nil, err
	}

	u, err := url.Parse(pageURL)
	if err != nil {
		u = nil
	}

	title := meta.Title
	description := meta.Description
	body := meta.Paragraphs

	article, err := readability.FromReader(strings.NewReader(rawHTML), u)
	if err == nil {
		if t := pincraft.CollapseWhitespace(article.Title); t != "" && title == pincraft.TitleFromURL(pageURL) {
			title = t
		}
		if description == "" {
			description = pincraft.CollapseWhitespace(article.Excerpt)
		}
		if text := pincraft.CollapseWhitespace(article.TextContent); text != "" {
			body = text
		}
	}

	return pincraft.NewExtractedContent(pincraft.ExtractedContent{
		Title:       title,
		Description: description,
		Content:     pincraft.AugmentContent(body, pageURL),
		Headings:    meta.Headings,
		URL:         pageURL,
	}), nil
}
