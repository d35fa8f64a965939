package mock

import "github.com/fwojciec/pincraft"

var _ pincraft.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pincraft.Extractor.
type Extractor struct {
	ExtractFn func(html, url string) (*pincraft.ExtractedContent, error)
}

func (e *Extractor) Extract(html, url string) (*pincraft.ExtractedContent, error) {
	return e.ExtractFn(html, url)
}
