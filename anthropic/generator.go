// Package anthropic implements pincraft.Generator against the Anthropic
// messages API.
package anthropic

import (
	"context"
	"errors"
	"net/http"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/fwojciec/pincraft"
)

// Defaults for the messages API.
const (
	DefaultBaseURL   = "https://api.anthropic.com"
	DefaultModel     = "claude-3-sonnet-20240229"
	DefaultMaxTokens = 4000
	DefaultTimeout   = 60 * time.Second
)

// Ensure Generator implements pincraft.Generator at compile time.
var _ pincraft.Generator = (*Generator)(nil)

// Generator asks a Claude model for pin copy.
type Generator struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	model      string
	maxTokens  int
}

// Option configures a Generator.
type Option func(*Generator)

// WithBaseURL overrides the API host, e.g. for a gateway or tests.
func WithBaseURL(u string) Option {
	return func(g *Generator) {
		if u != "" {
			g.baseURL = u
		}
	}
}

// WithModel sets the model name.
func WithModel(model string) Option {
	return func(g *Generator) {
		if model != "" {
			g.model = model
		}
	}
}

// WithMaxTokens sets the response token limit.
func WithMaxTokens(n int) Option {
	return func(g *Generator) {
		g.maxTokens = n
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Generator) {
		g.httpClient = c
	}
}

// NewGenerator creates a Generator authenticating with apiKey.
func NewGenerator(apiKey string, opts ...Option) *Generator {
	g := &Generator{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		model:      DefaultModel,
		maxTokens:  DefaultMaxTokens,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate sends the pin prompt as a single user message and decodes the
// JSON object in the reply.
func (g *Generator) Generate(ctx context.Context, content *pincraft.ExtractedContent, niche pincraft.Niche, insights string) (*pincraft.GeneratedContent, error) {
	if g.apiKey == "" {
		return nil, pincraft.Errorf(pincraft.EUNAUTHORIZED, "anthropic API key required")
	}
	if content == nil {
		return nil, pincraft.Errorf(pincraft.EINVALID, "no content to generate from")
	}

	// Retries are off: the pipeline falls back to templates instead.
	client := sdk.NewClient(
		option.WithAPIKey(g.apiKey),
		option.WithBaseURL(g.baseURL),
		option.WithHTTPClient(g.httpClient),
		option.WithMaxRetries(0),
	)

	msg, err := client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(g.model),
		MaxTokens: int64(g.maxTokens),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(pincraft.BuildPrompt(content, niche, insights))),
		},
	})
	if err != nil {
		return nil, apiError(err)
	}

	text := replyText(msg)
	if text == "" {
		return nil, pincraft.Errorf(pincraft.EINVALID, "anthropic response has no text")
	}
	return pincraft.DecodeGeneratedContent(text)
}

// apiError maps SDK failures onto pincraft error codes.
func apiError(err error) error {
	var apiErr *sdk.Error
	if !errors.As(err, &apiErr) {
		return pincraft.Errorf(pincraft.EUNAVAILABLE, "anthropic request failed: %v", err)
	}
	code := pincraft.EUNAVAILABLE
	switch apiErr.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		code = pincraft.EUNAUTHORIZED
	case http.StatusBadRequest:
		code = pincraft.EINVALID
	}
	return pincraft.Errorf(code, "anthropic API returned HTTP %d: %v", apiErr.StatusCode, err)
}

// replyText returns the first non-empty text block of the reply.
func replyText(msg *sdk.Message) string {
	if msg == nil {
		return ""
	}
	for _, block := range msg.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text
		}
	}
	return ""
}
