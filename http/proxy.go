package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/pincraft"
)

// DefaultProxyURL is the public CORS relay used when no proxy is configured.
const DefaultProxyURL = "https://api.allorigins.win/get"

// Ensure ProxyFetcher implements pincraft.Fetcher at compile time.
var _ pincraft.Fetcher = (*ProxyFetcher)(nil)

// ProxyFetcher retrieves article HTML through a CORS relay. The relay is
// called as {proxy}?url={target} and answers with {"contents": "<html>"}.
type ProxyFetcher struct {
	client    *http.Client
	proxyURL  string
	timeout   time.Duration
	userAgent string
}

// ProxyOption configures a ProxyFetcher.
type ProxyOption func(*ProxyFetcher)

// WithProxyURL sets the relay endpoint.
// Defaults to DefaultProxyURL if not specified.
func WithProxyURL(u string) ProxyOption {
	return func(f *ProxyFetcher) {
		f.proxyURL = u
	}
}

// WithProxyTimeout sets the timeout for relay requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithProxyTimeout(d time.Duration) ProxyOption {
	return func(f *ProxyFetcher) {
		f.timeout = d
	}
}

// NewProxyFetcher creates a new ProxyFetcher.
func NewProxyFetcher(opts ...ProxyOption) *ProxyFetcher {
	f := &ProxyFetcher{
		proxyURL:  DefaultProxyURL,
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// envelope is the relay response. Status is reported by allorigins and
// carries the upstream status code when the relay could reach the target.
type envelope struct {
	Contents *string `json:"contents"`
	Status   struct {
		HTTPCode int `json:"http_code"`
	} `json:"status"`
}

// Fetch retrieves target through the relay and unwraps the envelope.
func (f *ProxyFetcher) Fetch(ctx context.Context, target string) (string, error) {
	relay, err := url.Parse(f.proxyURL)
	if err != nil {
		return "", fmt.Errorf("invalid proxy URL: %w", err)
	}
	q := relay.Query()
	q.Set("url", target)
	relay.RawQuery = q.Encode()

	body, _, err := get(ctx, f.client, relay.String(), f.userAgent)
	if err != nil {
		return "", err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return "", fmt.Errorf("decode proxy response for %s: %w", target, err)
	}
	if code := env.Status.HTTPCode; code != 0 && (code < 200 || code > 299) {
		return "", fmt.Errorf("proxy reported HTTP %d for %s", code, target)
	}
	if env.Contents == nil || *env.Contents == "" {
		return "", fmt.Errorf("proxy returned no contents for %s", target)
	}

	return *env.Contents, nil
}

// Close releases resources. It is a no-op for the same reason as Fetcher.Close.
func (f *ProxyFetcher) Close() error {
	return nil
}
