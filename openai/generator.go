// Package openai implements pincraft.Generator for OpenAI and
// OpenAI-compatible chat completion endpoints.
package openai

import (
	"context"
	"errors"
	"net/http"

	"github.com/fwojciec/pincraft"
	goopenai "github.com/sashabaranov/go-openai"
)

// DefaultModel is the chat model used when none is configured.
const DefaultModel = "gpt-4o-mini"

// DefaultMaxTokens bounds the reply length.
const DefaultMaxTokens = 4000

const systemPrompt = "You are a Pinterest marketing strategist. Reply only with the requested JSON object."

// Ensure Generator implements pincraft.Generator at compile time.
var _ pincraft.Generator = (*Generator)(nil)

// Client is the subset of *goopenai.Client used by Generator.
type Client interface {
	CreateChatCompletion(ctx context.Context, request goopenai.ChatCompletionRequest) (goopenai.ChatCompletionResponse, error)
}

// NewClient returns a go-openai client for apiKey. A non-empty baseURL
// points it at an OpenAI-compatible server.
func NewClient(apiKey, baseURL string) *goopenai.Client {
	cfg := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return goopenai.NewClientWithConfig(cfg)
}

// Generator asks a chat model for pin copy.
type Generator struct {
	client    Client
	apiKey    string
	model     string
	maxTokens int
}

// NewGenerator creates a Generator for a client built with apiKey. An
// empty model selects DefaultModel.
func NewGenerator(client Client, apiKey, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, apiKey: apiKey, model: model, maxTokens: DefaultMaxTokens}
}

// Generate sends the pin prompt and decodes the JSON object in the reply.
func (g *Generator) Generate(ctx context.Context, content *pincraft.ExtractedContent, niche pincraft.Niche, insights string) (*pincraft.GeneratedContent, error) {
	if g.apiKey == "" {
		return nil, pincraft.Errorf(pincraft.EUNAUTHORIZED, "openai API key required")
	}
	if content == nil {
		return nil, pincraft.Errorf(pincraft.EINVALID, "no content to generate from")
	}

	resp, err := g.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:     g.model,
		MaxTokens: g.maxTokens,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: goopenai.ChatMessageRoleUser, Content: pincraft.BuildPrompt(content, niche, insights)},
		},
		ResponseFormat: &goopenai.ChatCompletionResponseFormat{
			Type: goopenai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		var apiErr *goopenai.APIError
		if errors.As(err, &apiErr) && (apiErr.HTTPStatusCode == http.StatusUnauthorized || apiErr.HTTPStatusCode == http.StatusForbidden) {
			return nil, pincraft.Errorf(pincraft.EUNAUTHORIZED, "openai rejected the API key: %v", err)
		}
		return nil, pincraft.Errorf(pincraft.EUNAVAILABLE, "openai request failed: %v", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, pincraft.Errorf(pincraft.EINVALID, "openai response has no text")
	}
	return pincraft.DecodeGeneratedContent(resp.Choices[0].Message.Content)
}
