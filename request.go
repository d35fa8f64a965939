package pincraft

import "strings"

// Request is a single user action: one article URL plus targeting options.
type Request struct {
	URL      string
	Niche    Niche
	Insights string
}

// Validate returns an error if the request cannot enter the pipeline.
// This is the only check that blocks a request before network activity.
func (r *Request) Validate() error {
	if strings.TrimSpace(r.URL) == "" {
		return Errorf(EINVALID, "Please enter a valid URL")
	}
	u, ok := ParseArticleURL(r.URL)
	if !ok || (u.Scheme != "http" && u.Scheme != "https") {
		return Errorf(EINVALID, "invalid URL %q: must be an absolute http(s) URL", r.URL)
	}
	if !r.Niche.Valid() {
		return Errorf(EINVALID, "unknown niche %q", r.Niche)
	}
	return nil
}
