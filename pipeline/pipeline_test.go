package pipeline_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/pincraft"
	"github.com/fwojciec/pincraft/mock"
	"github.com/fwojciec/pincraft/pipeline"
	"github.com/fwojciec/pincraft/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aiContent() *pincraft.GeneratedContent {
	c := &pincraft.GeneratedContent{
		Hashtags: pincraft.Hashtags{
			Primary:  []string{"#mealprep"},
			Niche:    []string{"#food"},
			Longtail: []string{"#budgetmealprep"},
		},
		StrategicInsights: []string{"Lead with savings"},
	}
	for i := range 5 {
		c.PinTitles = append(c.PinTitles, pincraft.PinTitle{Title: fmt.Sprintf("AI title %d", i+1), Strategy: "Curiosity"})
		c.Descriptions = append(c.Descriptions, pincraft.PinDescription{Description: strings.Repeat("a", 220), Strategy: "CTA"})
	}
	return c
}

func templateGenerator(t *testing.T) *template.Generator {
	t.Helper()
	g, err := template.NewGenerator(nil)
	require.NoError(t, err)
	return g
}

// unreachable returns a scraper whose strategies fail like a blocked
// direct request followed by a proxy network error.
func unreachable() *pipeline.Scraper {
	var direct, proxy int
	return pipeline.NewScraper(echoExtractor(), nil,
		pipeline.Strategy{Method: pincraft.MethodDirectScrape, Fetcher: failingFetcher(errors.New("HTTP 403 for "+articleURL), &direct)},
		pipeline.Strategy{Method: pincraft.MethodProxyScrape, Fetcher: failingFetcher(errors.New("dial tcp: connection refused"), &proxy)},
	)
}

func TestPipeline_Run(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty URL before fetching", func(t *testing.T) {
		t.Parallel()

		fetched := 0
		s := pipeline.NewScraper(echoExtractor(), nil,
			pipeline.Strategy{Method: pincraft.MethodDirectScrape, Fetcher: staticFetcher("x", &fetched)},
		)
		p := pipeline.New(s, templateGenerator(t))

		_, err := p.Run(context.Background(), pincraft.Request{URL: "  "})

		assert.Equal(t, pincraft.EINVALID, pincraft.ErrorCode(err))
		assert.Equal(t, "Please enter a valid URL", pincraft.ErrorMessage(err))
		assert.Equal(t, 0, fetched)
	})

	t.Run("trims URL before fetching", func(t *testing.T) {
		t.Parallel()

		var fetchedURLs []string
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				fetchedURLs = append(fetchedURLs, url)
				return "", errors.New("HTTP 403")
			},
			CloseFn: func() error { return nil },
		}
		s := pipeline.NewScraper(echoExtractor(), nil,
			pipeline.Strategy{Method: pincraft.MethodDirectScrape, Fetcher: fetcher},
			pipeline.Strategy{Method: pincraft.MethodProxyScrape, Fetcher: fetcher},
		)
		p := pipeline.New(s, templateGenerator(t))

		got, err := p.Run(context.Background(), pincraft.Request{URL: "  " + articleURL + "\n"})
		require.NoError(t, err)

		assert.Equal(t, []string{articleURL, articleURL}, fetchedURLs)
		assert.Equal(t, articleURL, got.Extracted.URL)
	})

	t.Run("unreachable site without AI uses synthesized content and templates", func(t *testing.T) {
		t.Parallel()

		p := pipeline.New(unreachable(), templateGenerator(t), pipeline.WithIDGenerator(func() string { return "req-1" }))

		got, err := p.Run(context.Background(), pincraft.Request{URL: articleURL, Niche: pincraft.NicheFood})
		require.NoError(t, err)

		assert.Equal(t, "req-1", got.RequestID)
		assert.False(t, got.AIGenerated)
		assert.Equal(t, pincraft.MethodIntelligentFallback, got.Extracted.ExtractionMethod)
		require.NoError(t, got.Content.Validate())
		assert.Len(t, got.Content.PinTitles, 6)
		assert.Equal(t, "Applied Food & Recipes niche targeting strategies", got.Content.StrategicInsights[1])
	})

	t.Run("AI success", func(t *testing.T) {
		t.Parallel()

		var gotNiche pincraft.Niche
		var gotInsights string
		ai := &mock.Generator{
			GenerateFn: func(_ context.Context, _ *pincraft.ExtractedContent, niche pincraft.Niche, insights string) (*pincraft.GeneratedContent, error) {
				gotNiche = niche
				gotInsights = insights
				return aiContent(), nil
			},
		}
		p := pipeline.New(unreachable(), templateGenerator(t), pipeline.WithAIGenerator(ai))

		got, err := p.Run(context.Background(), pincraft.Request{URL: articleURL, Niche: pincraft.NicheFood, Insights: "students"})
		require.NoError(t, err)

		assert.True(t, got.AIGenerated)
		assert.Equal(t, "AI title 1", got.Content.PinTitles[0].Title)
		assert.Equal(t, pincraft.NicheFood, gotNiche)
		assert.Equal(t, "students", gotInsights)
		assert.NotEmpty(t, got.RequestID)
	})

	t.Run("AI failure falls back to templates", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		ai := &mock.Generator{
			GenerateFn: func(context.Context, *pincraft.ExtractedContent, pincraft.Niche, string) (*pincraft.GeneratedContent, error) {
				return nil, pincraft.Errorf(pincraft.EINVALID, "no JSON object found in model reply")
			},
		}
		p := pipeline.New(unreachable(), templateGenerator(t),
			pipeline.WithAIGenerator(ai),
			pipeline.WithLogger(logger),
			pipeline.WithIDGenerator(func() string { return "req-42" }),
		)

		got, err := p.Run(context.Background(), pincraft.Request{URL: articleURL})
		require.NoError(t, err)

		assert.False(t, got.AIGenerated)
		assert.Equal(t, "10 budget meal Tips That Actually Work", got.Content.PinTitles[0].Title)
		output := buf.String()
		assert.Contains(t, output, "request_id=req-42")
		assert.Contains(t, output, "AI generation failed")
		assert.Contains(t, output, "ai=false")
	})

	t.Run("fallback failure is internal", func(t *testing.T) {
		t.Parallel()

		broken := &mock.Generator{
			GenerateFn: func(context.Context, *pincraft.ExtractedContent, pincraft.Niche, string) (*pincraft.GeneratedContent, error) {
				return nil, errors.New("boom")
			},
		}
		p := pipeline.New(unreachable(), broken)

		_, err := p.Run(context.Background(), pincraft.Request{URL: articleURL})

		assert.Equal(t, pincraft.EINTERNAL, pincraft.ErrorCode(err))
		assert.Equal(t, "failed to generate content", pincraft.ErrorMessage(err))
	})

	t.Run("concurrent call conflicts", func(t *testing.T) {
		t.Parallel()

		started := make(chan struct{})
		release := make(chan struct{})
		ai := &mock.Generator{
			GenerateFn: func(context.Context, *pincraft.ExtractedContent, pincraft.Niche, string) (*pincraft.GeneratedContent, error) {
				close(started)
				<-release
				return aiContent(), nil
			},
		}
		p := pipeline.New(unreachable(), templateGenerator(t), pipeline.WithAIGenerator(ai))

		done := make(chan error, 1)
		go func() {
			_, err := p.Run(context.Background(), pincraft.Request{URL: articleURL})
			done <- err
		}()
		<-started

		_, err := p.Run(context.Background(), pincraft.Request{URL: articleURL})
		assert.Equal(t, pincraft.ECONFLICT, pincraft.ErrorCode(err))

		close(release)
		require.NoError(t, <-done)

		// The guard is released once the first run finishes.
		ai.GenerateFn = func(context.Context, *pincraft.ExtractedContent, pincraft.Niche, string) (*pincraft.GeneratedContent, error) {
			return aiContent(), nil
		}
		_, err = p.Run(context.Background(), pincraft.Request{URL: articleURL})
		assert.NoError(t, err)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
		defer cancel()
		ai := &mock.Generator{
			GenerateFn: func(ctx context.Context, _ *pincraft.ExtractedContent, _ pincraft.Niche, _ string) (*pincraft.GeneratedContent, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			},
		}
		p := pipeline.New(unreachable(), templateGenerator(t), pipeline.WithAIGenerator(ai))

		_, err := p.Run(ctx, pincraft.Request{URL: articleURL})

		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
