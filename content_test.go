package pincraft_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/pincraft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExtractedContent(t *testing.T) {
	t.Parallel()

	t.Run("truncates fields to their caps", func(t *testing.T) {
		t.Parallel()

		headings := make([]string, 12)
		for i := range headings {
			headings[i] = strings.Repeat("h", 250)
		}

		c := pincraft.NewExtractedContent(pincraft.ExtractedContent{
			Title:       strings.Repeat("t", 250),
			Description: strings.Repeat("d", 350),
			Content:     strings.Repeat("c", 2500),
			Headings:    headings,
			URL:         "https://example.com/post",
		})

		assert.Len(t, c.Title, pincraft.MaxTitleLength)
		assert.Len(t, c.Description, pincraft.MaxDescriptionLength)
		assert.Len(t, c.Content, pincraft.MaxContentLength)
		require.Len(t, c.Headings, pincraft.MaxHeadings)
		for _, h := range c.Headings {
			assert.Len(t, h, pincraft.MaxHeadingLength)
		}
	})

	t.Run("derives empty title from URL", func(t *testing.T) {
		t.Parallel()

		c := pincraft.NewExtractedContent(pincraft.ExtractedContent{
			Title:   "   ",
			Content: "body",
			URL:     "https://example.com/blog/easy-weeknight-pasta",
		})

		assert.Equal(t, "Easy Weeknight Pasta", c.Title)
	})

	t.Run("fills empty content with host sentence", func(t *testing.T) {
		t.Parallel()

		c := pincraft.NewExtractedContent(pincraft.ExtractedContent{
			Title: "Title",
			URL:   "https://example.com/post",
		})

		assert.Equal(t, "This article from example.com provides valuable insights on the topic.", c.Content)
	})

	t.Run("keeps URL and method unchanged", func(t *testing.T) {
		t.Parallel()

		c := pincraft.NewExtractedContent(pincraft.ExtractedContent{
			Title:            "Title",
			Content:          "body",
			URL:              "https://Example.com/Post?x=1",
			ExtractionMethod: pincraft.MethodProxyScrape,
		})

		assert.Equal(t, "https://Example.com/Post?x=1", c.URL)
		assert.Equal(t, pincraft.MethodProxyScrape, c.ExtractionMethod)
	})
}

func TestAugmentContent(t *testing.T) {
	t.Parallel()

	t.Run("appends host sentence to thin content", func(t *testing.T) {
		t.Parallel()

		got := pincraft.AugmentContent("Short body.", "https://blog.example.com/a")

		assert.Equal(t, "Short body. This article from blog.example.com provides valuable insights on the topic.", got)
	})

	t.Run("leaves long content unchanged", func(t *testing.T) {
		t.Parallel()

		body := strings.Repeat("x", pincraft.ThinContentLength)

		assert.Equal(t, body, pincraft.AugmentContent(body, "https://example.com"))
	})
}

func TestCollapseWhitespace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b c", pincraft.CollapseWhitespace("  a \n\t b   c  "))
	assert.Empty(t, pincraft.CollapseWhitespace(" \n "))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hé", pincraft.Truncate("héllo", 2))
	assert.Equal(t, "abc", pincraft.Truncate("abc", 10))

	s := pincraft.Truncate(strings.Repeat("📌", 10), 3)
	assert.True(t, utf8.ValidString(s))
	assert.Equal(t, 3, utf8.RuneCountInString(s))
}
