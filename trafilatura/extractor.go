// Package trafilatura implements pincraft.Extractor with go-trafilatura.
package trafilatura

import (
	"net/url"
	"strings"

	"github.com/fwojciec/pincraft"
	"github.com/fwojciec/pincraft/goquery"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements pincraft.Extractor at compile time.
var _ pincraft.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the article body. Title,
// description and headings come from the page markup, with trafilatura's
// own metadata filling gaps.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article content. Pages that
// trafilatura rejects as too short fall back to paragraph text.
func (e *Extractor) Extract(rawHTML, pageURL string) (*pincraft.ExtractedContent, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pincraft.Errorf(pincraft.EINVALID, "empty HTML input")
	}

	meta, err := goquery.ParseMetadata(rawHTML, pageURL)
	if err != nil {
		return nil, err
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if u, err := url.Parse(pageURL); err == nil {
		opts.OriginalURL = u
	}

	title := meta.Title
	description := meta.Description
	body := meta.Paragraphs

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err == nil && result != nil {
		if t := pincraft.CollapseWhitespace(result.Metadata.Title); t != "" && title == pincraft.TitleFromURL(pageURL) {
			title = t
		}
		if description == "" {
			description = pincraft.CollapseWhitespace(result.Metadata.Description)
		}
		if text := pincraft.CollapseWhitespace(result.ContentText); text != "" {
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
