package goquery_test

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/pincraft"
	"github.com/fwojciec/pincraft/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleText = "Meal prep on a budget starts with a plan. Pick three recipes that share ingredients, " +
	"shop once for the whole week, and cook in batches on Sunday so weekday dinners take minutes."

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title description body and headings", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
	<title>10 Budget Meal Prep Tips</title>
	<meta name="description" content="Save money with weekly meal prep.">
</head>
<body>
<nav><a href="/">Home</a> Navigation text that should not appear</nav>
<article>
	<h1>10 Budget Meal Prep Tips</h1>
	<script>var tracking = "ignore me";</script>
	<p>` + articleText + `</p>
	<h2>Plan Your Week</h2>
	<aside>Sponsored: buy containers</aside>
	<p>` + articleText + `</p>
</article>
</body>
</html>`

		c, err := goquery.NewExtractor().Extract(html, "https://example.com/blog/meal-prep")

		require.NoError(t, err)
		assert.Equal(t, "10 Budget Meal Prep Tips", c.Title)
		assert.Equal(t, "Save money with weekly meal prep.", c.Description)
		assert.Contains(t, c.Content, "Meal prep on a budget starts with a plan.")
		assert.NotContains(t, c.Content, "ignore me")
		assert.NotContains(t, c.Content, "Sponsored")
		assert.NotContains(t, c.Content, "Navigation text")
		assert.NotContains(t, c.Content, "provides valuable insights")
		assert.Equal(t, []string{"10 Budget Meal Prep Tips", "Plan Your Week"}, c.Headings)
		assert.Equal(t, "https://example.com/blog/meal-prep", c.URL)
		assert.Empty(t, c.ExtractionMethod)
	})

	t.Run("collapses whitespace in body", func(t *testing.T) {
		t.Parallel()

		html := "<main>\n\n   " + strings.ReplaceAll(articleText, " ", " \n\t ") + "   </main>"

		c, err := goquery.NewExtractor().Extract(html, "https://example.com/a")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(c.Content, articleText))
		assert.NotContains(t, c.Content, "  ")
		assert.NotContains(t, c.Content, "\n")
	})

	t.Run("skips short containers in priority order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<article>Too short.</article>
<div class="entry-content">` + articleText + `</div>
</body></html>`

		c, err := goquery.NewExtractor().Extract(html, "https://example.com/a")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(c.Content, "Meal prep on a budget"))
		assert.NotContains(t, c.Content, "Too short.")
	})

	t.Run("falls back to long paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div><p>Short line.</p><p>This paragraph is comfortably longer than thirty characters.</p></div>
<div><p>Another paragraph that easily clears the thirty character bar.</p></div>
</body></html>`

		c, err := goquery.NewExtractor().Extract(html, "https://example.com/a")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(c.Content,
			"This paragraph is comfortably longer than thirty characters. Another paragraph that easily clears the thirty character bar."))
		assert.NotContains(t, c.Content, "Short line.")
	})

	t.Run("uses host sentence when no text qualifies", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div><p>Tiny.</p><p>Also tiny.</p></div></body></html>`

		c, err := goquery.NewExtractor().Extract(html, "https://recipes.example.com/a")

		require.NoError(t, err)
		assert.Equal(t, "This article from recipes.example.com provides valuable insights on the topic.", c.Content)
	})

	t.Run("augments thin body", func(t *testing.T) {
		t.Parallel()

		body := "A short article body that is just over thirty characters long."
		html := `<html><body><p>` + body + `</p></body></html>`

		c, err := goquery.NewExtractor().Extract(html, "https://example.com/a")

		require.NoError(t, err)
		assert.Equal(t, body+" This article from example.com provides valuable insights on the topic.", c.Content)
		assert.Greater(t, utf8.RuneCountInString(c.Content), utf8.RuneCountInString(body))
	})

	t.Run("honors custom content selectors", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<article>` + articleText + `</article>
<section id="story">Story body: ` + articleText + `</section>
</body></html>`

		c, err := goquery.NewExtractor(goquery.WithContentSelectors("#story")).Extract(html, "https://example.com/a")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(c.Content, "Story body:"))
	})

	t.Run("returns defaults for empty document", func(t *testing.T) {
		t.Parallel()

		c, err := goquery.NewExtractor().Extract("", "https://example.com/recipes/easy-pasta")

		require.NoError(t, err)
		assert.Equal(t, "Easy Pasta", c.Title)
		assert.Empty(t, c.Description)
		assert.Equal(t, "This article from example.com provides valuable insights on the topic.", c.Content)
		assert.Empty(t, c.Headings)
	})

	t.Run("enforces caps", func(t *testing.T) {
		t.Parallel()

		var sb strings.Builder
		sb.WriteString("<html><head><title>" + strings.Repeat("T", 300) + "</title>")
		sb.WriteString(`<meta name="description" content="` + strings.Repeat("D", 400) + `"></head><body><article>`)
		for i := range 15 {
			fmt.Fprintf(&sb, "<h2>Section %d</h2><p>%s</p>", i+1, articleText)
		}
		sb.WriteString("<h3>" + strings.Repeat("H", 250) + "</h3></article></body></html>")

		c, err := goquery.NewExtractor().Extract(sb.String(), "https://example.com/a")

		require.NoError(t, err)
		assert.Equal(t, pincraft.MaxTitleLength, utf8.RuneCountInString(c.Title))
		assert.Equal(t, pincraft.MaxDescriptionLength, utf8.RuneCountInString(c.Description))
		assert.Equal(t, pincraft.MaxContentLength, utf8.RuneCountInString(c.Content))
		require.Len(t, c.Headings, pincraft.MaxHeadings)
		assert.Equal(t, "Section 1", c.Headings[0])
		assert.Equal(t, "Section 10", c.Headings[9])
	})

	t.Run("skips empty and overlong headings", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><h1> </h1><h2>` + strings.Repeat("x", 200) + `</h2><h3>Kept</h3></body></html>`

		c, err := goquery.NewExtractor().Extract(html, "https://example.com/a")

		require.NoError(t, err)
		assert.Equal(t, []string{"Kept"}, c.Headings)
	})
}

func TestTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{"title element", `<title> Page Title </title><h1>Heading</h1>`, "Page Title"},
		{"first h1", `<h1>First</h1><h1>Second</h1><meta property="og:title" content="OG">`, "First"},
		{"open graph", `<meta property="og:title" content="OG Title"><meta name="twitter:title" content="TW">`, "OG Title"},
		{"twitter card", `<meta name="twitter:title" content="Twitter Title">`, "Twitter Title"},
		{"url slug", `<p>no title anywhere</p>`, "Slow Cooker Chili"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := goquery.NewExtractor().Extract("<html><head></head><body>"+tt.html+"</body></html>", "https://example.com/post/slow-cooker-chili.html")

			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Title)
		})
	}
}

func TestDescription(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{"meta description", `<meta name="description" content="Plain"><meta property="og:description" content="OG">`, "Plain"},
		{"open graph", `<meta name="description" content=""><meta property="og:description" content="OG">`, "OG"},
		{"twitter card", `<meta name="twitter:description" content="TW">`, "TW"},
		{"none", ``, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := goquery.NewExtractor().Extract("<html><head>"+tt.html+"</head><body></body></html>", "https://example.com/a")

			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Description)
		})
	}
}
