package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pincraft"
)

// Ensure Extractor implements pincraft.Extractor at compile time.
var _ pincraft.Extractor = (*Extractor)(nil)

// DefaultContentSelectors lists common article containers in priority order.
var DefaultContentSelectors = []string{
	"article",
	`[role="main"]`,
	"main",
	".post-content",
	".entry-content",
	".content",
	".article-content",
	".post-body",
	".story-body",
	"#content",
	".main-content",
}

// noiseSelector matches subtrees dropped from a content container before
// its text is measured.
const noiseSelector = "script, style, nav, header, footer, aside"

// minContainerLength is the amount of text a content container needs to be
// used as the article body.
const minContainerLength = 100

// Extractor extracts article content with CSS selector heuristics.
type Extractor struct {
	selectors []string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithContentSelectors replaces the prioritized list of body containers.
func WithContentSelectors(selectors ...string) Option {
	return func(e *Extractor) {
		e.selectors = selectors
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{selectors: DefaultContentSelectors}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses rawHTML and returns the article title, description, body
// text and headings.
//
// The body is the text of the first content container holding at least
// 100 characters once scripts, styles and page chrome are removed. When no
// container qualifies, paragraphs longer than 30 characters are joined
// instead. Thin bodies are padded with a sentence naming the source host.
func (e *Extractor) Extract(rawHTML, pageURL string) (*pincraft.ExtractedContent, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, pincraft.Errorf(pincraft.EINVALID, "failed to parse HTML: %v", err)
	}

	body := e.containerText(doc)
	if body == "" {
		body = Paragraphs(doc)
	}

	return pincraft.NewExtractedContent(pincraft.ExtractedContent{
		Title:       Title(doc, pageURL),
		Description: Description(doc),
		Content:     pincraft.AugmentContent(body, pageURL),
		Headings:    Headings(doc),
		URL:         pageURL,
	}), nil
}

// containerText returns the cleaned text of the first selector match that
// reaches minContainerLength, or "" when none does.
func (e *Extractor) containerText(doc *goquery.Document) string {
	for _, selector := range e.selectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		// Work on a copy so Title and Headings still see the full document.
		clean := sel.Clone()
		clean.Find(noiseSelector).Remove()
		if t := text(clean); utf8.RuneCountInString(t) >= minContainerLength {
			return t
		}
	}
	return ""
}
