package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/pincraft/pipeline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Scraper  *pipeline.Scraper
	Pipeline *pipeline.Pipeline
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Provider         string        `default:"anthropic" enum:"anthropic,gemini,openai,none" env:"PINCRAFT_PROVIDER" help:"AI provider (${enum})"`
	Model            string        `env:"PINCRAFT_MODEL" help:"Model name for the AI provider"`
	AnthropicAPIKey  string        `name:"anthropic-api-key" env:"ANTHROPIC_API_KEY" help:"Anthropic API key"`
	AnthropicBaseURL string        `name:"anthropic-base-url" env:"ANTHROPIC_BASE_URL" help:"Anthropic API base URL"`
	GeminiAPIKey     string        `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
	OpenAIAPIKey     string        `name:"openai-api-key" env:"OPENAI_API_KEY" help:"OpenAI API key"`
	OpenAIBaseURL    string        `name:"openai-base-url" env:"OPENAI_BASE_URL" help:"OpenAI-compatible API base URL"`
	Timeout          time.Duration `default:"10s" help:"Timeout for each fetch attempt"`
	ProxyURL         string        `name:"proxy-url" default:"https://api.allorigins.win/get" help:"CORS proxy endpoint used when direct fetching fails"`
	Extractor        string        `default:"goquery" enum:"goquery,readability,trafilatura" help:"Content extractor (${enum})"`
	Vocabulary       string        `type:"path" help:"YAML vocabulary for the template generator"`
	Verbose          bool          `short:"v" help:"Log pipeline steps to stderr"`

	Generate GenerateCmd `cmd:"" help:"Generate Pinterest pin copy for an article"`
	Extract  ExtractCmd  `cmd:"" help:"Show the content extracted from an article"`
	Niches   NichesCmd   `cmd:"" help:"List supported niches"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	URL      string `arg:"" help:"Article URL"`
	Niche    string `short:"n" help:"Content niche, see 'pincraft niches'"`
	Insights string `short:"i" help:"Extra context for the AI, e.g. target audience"`
	Format   string `short:"f" default:"text" enum:"text,json" help:"Output format (${enum})"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL string `arg:"" help:"Article URL"`
}

// NichesCmd is the "niches" subcommand.
type NichesCmd struct{}
