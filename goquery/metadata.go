package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pincraft"
)

// Paragraphs shorter than or equal to this many characters are skipped
// when body text is assembled from <p> elements.
const minParagraphLength = 30

// Metadata is the page-level information every extractor reads the same
// way, whichever library finds the article body.
type Metadata struct {
	Title       string
	Description string
	Headings    []string
	Paragraphs  string
}

// ParseMetadata parses rawHTML and resolves its title, description,
// headings and paragraph text.
func ParseMetadata(rawHTML, pageURL string) (*Metadata, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, pincraft.Errorf(pincraft.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Metadata{
		Title:       Title(doc, pageURL),
		Description: Description(doc),
		Headings:    Headings(doc),
		Paragraphs:  Paragraphs(doc),
	}, nil
}

// Title resolves the article title: <title>, then the first <h1>, then
// og:title, then twitter:title, then a title derived from pageURL.
func Title(doc *goquery.Document, pageURL string) string {
	candidates := []func() string{
		func() string { return text(doc.Find("title").First()) },
		func() string { return text(doc.Find("h1").First()) },
		func() string { return meta(doc, `meta[property="og:title"]`) },
		func() string { return meta(doc, `meta[name="twitter:title"]`) },
	}
	for _, c := range candidates {
		if title := c(); title != "" {
			return title
		}
	}
	return pincraft.TitleFromURL(pageURL)
}

// Description resolves the article summary from the description,
// og:description and twitter:description meta tags, in that order.
func Description(doc *goquery.Document) string {
	for _, selector := range []string{
		`meta[name="description"]`,
		`meta[property="og:description"]`,
		`meta[name="twitter:description"]`,
	} {
		if d := meta(doc, selector); d != "" {
			return d
		}
	}
	return ""
}

// Headings returns the text of h1-h6 elements in document order, skipping
// empty headings and headings of MaxHeadingLength characters or more.
func Headings(doc *goquery.Document) []string {
	var headings []string
	doc.Find("h1, h2, h3, h4, h5, h6").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		h := text(s)
		if n := utf8.RuneCountInString(h); n > 0 && n < pincraft.MaxHeadingLength {
			headings = append(headings, h)
		}
		return len(headings) < pincraft.MaxHeadings
	})
	return headings
}

// Paragraphs joins the text of every <p> longer than 30 characters.
func Paragraphs(doc *goquery.Document) string {
	var parts []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		if p := text(s); utf8.RuneCountInString(p) > minParagraphLength {
			parts = append(parts, p)
		}
	})
	return strings.Join(parts, " ")
}

func text(s *goquery.Selection) string {
	return pincraft.CollapseWhitespace(s.Text())
}

func meta(doc *goquery.Document, selector string) string {
	return strings.TrimSpace(doc.Find(selector).First().AttrOr("content", ""))
}
