package pincraft

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	sectionPrefixRe = regexp.MustCompile(`(?i)^/(blog|article|post|news)/`)
	pageExtRe       = regexp.MustCompile(`(?i)\.(html|php|aspx?)$`)
)

// ParseArticleURL parses rawURL and reports whether it is an absolute URL
// with a host. Relative references and opaque strings return false.
func ParseArticleURL(rawURL string) (*url.URL, bool) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, false
	}
	return u, true
}

// Hostname returns the host part of rawURL, or "this website" when the URL
// has no host.
func Hostname(rawURL string) string {
	u, ok := ParseArticleURL(rawURL)
	if !ok {
		return "this website"
	}
	return u.Hostname()
}

// TitleFromURL derives a readable title from the last path segment of
// rawURL: "/blog/10-budget-meal-prep.html" becomes "10 Budget Meal Prep".
// It falls back to "Article from {host}" when the path has no usable
// segment and to "Article Content" when rawURL is not an absolute URL.
func TitleFromURL(rawURL string) string {
	u, ok := ParseArticleURL(rawURL)
	if !ok {
		return "Article Content"
	}

	path := sectionPrefixRe.ReplaceAllString(u.Path, "")
	path = pageExtRe.ReplaceAllString(path, "")

	var last string
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			last = segment
		}
	}

	last = strings.NewReplacer("-", " ", "_", " ").Replace(last)
	words := strings.Fields(last)
	for i, w := range words {
		words[i] = capitalize(w)
	}

	if title := strings.Join(words, " "); title != "" {
		return title
	}
	return "Article from " + u.Hostname()
}

func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(r)) + w[size:]
}
