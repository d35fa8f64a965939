package pincraft

// Extractor turns raw article HTML into an ExtractedContent.
type Extractor interface {
	// Extract parses html fetched from url. Missing elements fall back to
	// textual defaults, so an error is returned only when the document
	// cannot be parsed at all. The returned record has ExtractionMethod unset;
	// callers tag it with the strategy that fetched the HTML.
	Extract(html, url string) (*ExtractedContent, error)
}
