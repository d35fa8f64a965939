package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pincraft"
	"github.com/fwojciec/pincraft/anthropic"
	"github.com/fwojciec/pincraft/gemini"
	"github.com/fwojciec/pincraft/goquery"
	pinhttp "github.com/fwojciec/pincraft/http"
	"github.com/fwojciec/pincraft/openai"
	"github.com/fwojciec/pincraft/pipeline"
	"github.com/fwojciec/pincraft/readability"
	pinslog "github.com/fwojciec/pincraft/slog"
	"github.com/fwojciec/pincraft/template"
	"github.com/fwojciec/pincraft/trafilatura"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Dotenv file loaded into the environment before flags are parsed.
	// A missing file is ignored. Empty disables loading.
	EnvFile string

	Scraper *pipeline.Scraper
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		EnvFile: ".env",
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Scraper != nil {
		return m.Scraper.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if err := loadEnv(m.EnvFile); err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pincraft"),
		kong.Description("Turn an article URL into Pinterest pin titles, descriptions and hashtags."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pincraft --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose)

	if kongCtx.Command() == "niches" {
		return kongCtx.Run(deps)
	}

	m.Scraper = newScraper(cli, deps.Logger)
	defer m.Close()
	deps.Scraper = m.Scraper

	if strings.HasPrefix(kongCtx.Command(), "generate") {
		p, err := newPipeline(ctx, cli, m.Scraper, deps.Logger, stderr)
		if err != nil {
			return err
		}
		deps.Pipeline = p
	}

	return kongCtx.Run(deps)
}

func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newExtractor(name string) pincraft.Extractor {
	switch name {
	case "readability":
		return readability.NewExtractor()
	case "trafilatura":
		return trafilatura.NewExtractor()
	default:
		return goquery.NewExtractor()
	}
}

func newScraper(cli *CLI, logger *slog.Logger) *pipeline.Scraper {
	direct := pinhttp.NewFetcher(pinhttp.WithTimeout(cli.Timeout))
	proxy := pinhttp.NewProxyFetcher(
		pinhttp.WithProxyURL(cli.ProxyURL),
		pinhttp.WithProxyTimeout(cli.Timeout),
	)
	return pipeline.NewScraper(
		pinslog.NewLoggingExtractor(newExtractor(cli.Extractor), logger),
		logger,
		pipeline.Strategy{
			Method:  pincraft.MethodDirectScrape,
			Fetcher: pinslog.NewLoggingFetcher(direct, pincraft.MethodDirectScrape, logger),
		},
		pipeline.Strategy{
			Method:  pincraft.MethodProxyScrape,
			Fetcher: pinslog.NewLoggingFetcher(proxy, pincraft.MethodProxyScrape, logger),
		},
	)
}

func newPipeline(ctx context.Context, cli *CLI, scraper *pipeline.Scraper, logger *slog.Logger, stderr io.Writer) (*pipeline.Pipeline, error) {
	vocab := template.DefaultVocabulary()
	if cli.Vocabulary != "" {
		f, err := os.Open(cli.Vocabulary)
		if err != nil {
			return nil, fmt.Errorf("failed to open vocabulary: %w", err)
		}
		defer f.Close()
		if vocab, err = template.LoadVocabulary(f); err != nil {
			fmt.Fprintf(stderr, "error: %s\n", pincraft.ErrorMessage(err))
			return nil, err
		}
	}
	fallback, err := template.NewGenerator(vocab)
	if err != nil {
		return nil, err
	}

	opts := []pipeline.Option{pipeline.WithLogger(logger)}

	ai, err := newAIGenerator(ctx, cli)
	if err != nil {
		return nil, err
	}
	if ai != nil {
		limited := pipeline.NewRateLimitedGenerator(ai, pipeline.DefaultGenerateInterval)
		opts = append(opts, pipeline.WithAIGenerator(pinslog.NewLoggingGenerator(limited, cli.Provider, logger)))
	} else if cli.Provider != "none" {
		fmt.Fprintf(stderr, "No API key for %s; using offline templates.\n", cli.Provider)
	}

	return pipeline.New(scraper, pinslog.NewLoggingGenerator(fallback, "template", logger), opts...), nil
}

// newAIGenerator returns nil when the provider is disabled or has no
// credential.
func newAIGenerator(ctx context.Context, cli *CLI) (pincraft.Generator, error) {
	switch cli.Provider {
	case "anthropic":
		if cli.AnthropicAPIKey == "" {
			return nil, nil
		}
		opts := []anthropic.Option{anthropic.WithModel(cli.Model)}
		if cli.AnthropicBaseURL != "" {
			opts = append(opts, anthropic.WithBaseURL(cli.AnthropicBaseURL))
		}
		return anthropic.NewGenerator(cli.AnthropicAPIKey, opts...), nil
	case "gemini":
		if cli.GeminiAPIKey == "" {
			return nil, nil
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cli.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewGenerator(client.Models, cli.GeminiAPIKey, cli.Model), nil
	case "openai":
		if cli.OpenAIAPIKey == "" {
			return nil, nil
		}
		return openai.NewGenerator(openai.NewClient(cli.OpenAIAPIKey, cli.OpenAIBaseURL), cli.OpenAIAPIKey, cli.Model), nil
	default:
		return nil, nil
	}
}
