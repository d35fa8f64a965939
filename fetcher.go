package pincraft

import "context"

// Fetcher retrieves raw HTML for a URL.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML.
	// Each call is a single attempt; implementations do not retry.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the Fetcher.
	Close() error
}
