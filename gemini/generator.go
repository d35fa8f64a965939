// Package gemini implements pincraft.Generator using Google Gemini.
package gemini

import (
	"context"

	"github.com/fwojciec/pincraft"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Generator implements pincraft.Generator at compile time.
var _ pincraft.Generator = (*Generator)(nil)

// ContentGenerator is the subset of *genai.Models used by Generator.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Generator implements pincraft.Generator using Google Gemini.
type Generator struct {
	models ContentGenerator
	apiKey string
	model  string
}

// NewGenerator creates a new Generator. Pass client.Models from a
// *genai.Client built with apiKey. An empty model selects DefaultModel.
func NewGenerator(models ContentGenerator, apiKey, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{models: models, apiKey: apiKey, model: model}
}

// Generate sends the pin prompt and decodes the JSON object in the reply.
func (g *Generator) Generate(ctx context.Context, content *pincraft.ExtractedContent, niche pincraft.Niche, insights string) (*pincraft.GeneratedContent, error) {
	if g.apiKey == "" {
		return nil, pincraft.Errorf(pincraft.EUNAUTHORIZED, "gemini API key required")
	}
	if content == nil {
		return nil, pincraft.Errorf(pincraft.EINVALID, "no content to generate from")
	}

	result, err := g.models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Role:  "user",
			Parts: []*genai.Part{{Text: pincraft.BuildPrompt(content, niche, insights)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, pincraft.Errorf(pincraft.EUNAVAILABLE, "gemini request failed: %v", err)
	}
	if result == nil {
		return nil, pincraft.Errorf(pincraft.EINTERNAL, "gemini returned nil result")
	}

	text := result.Text()
	if text == "" {
		return nil, pincraft.Errorf(pincraft.EINVALID, "gemini response has no text")
	}
	return pincraft.DecodeGeneratedContent(text)
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// The reply is requested as JSON so the model skips prose around it.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.7)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a Pinterest marketing strategist. Reply only with the requested JSON object.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}
