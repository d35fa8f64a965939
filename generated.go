package pincraft

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Length and count limits for GeneratedContent.
const (
	MaxPinTitleLength       = 100
	MinPinDescriptionLength = 200 // authoring target; Validate does not enforce it
	MaxPinDescriptionLength = 500
	MinVariants             = 5
	MaxVariants             = 8
)

// PinTitle is a pin title variant tagged with its copywriting technique.
type PinTitle struct {
	Title    string `json:"title"`
	Strategy string `json:"strategy"`
}

// PinDescription is a pin description variant tagged with its copywriting technique.
type PinDescription struct {
	Description string `json:"description"`
	Strategy    string `json:"strategy"`
}

// Hashtags groups generated tags by reach.
type Hashtags struct {
	Primary  []string `json:"primary"`
	Niche    []string `json:"niche"`
	Longtail []string `json:"longtail"`
}

// All returns every tag in primary, niche, longtail order.
func (h Hashtags) All() []string {
	all := make([]string, 0, len(h.Primary)+len(h.Niche)+len(h.Longtail))
	all = append(all, h.Primary...)
	all = append(all, h.Niche...)
	return append(all, h.Longtail...)
}

// GeneratedContent is the pin copy produced by a Generator. The shape is
// the same whichever generator produced it.
type GeneratedContent struct {
	PinTitles         []PinTitle       `json:"pinTitles"`
	Descriptions      []PinDescription `json:"descriptions"`
	Hashtags          Hashtags         `json:"hashtags"`
	StrategicInsights []string         `json:"strategicInsights"`
}

var hashtagRe = regexp.MustCompile(`^#[^\s#]+$`)

// IsHashtag reports whether tag is a single well-formed hashtag.
func IsHashtag(tag string) bool {
	return hashtagRe.MatchString(tag)
}

// Validate returns an EINVALID error if the content does not match the
// GeneratedContent schema.
func (g *GeneratedContent) Validate() error {
	if n := len(g.PinTitles); n < MinVariants || n > MaxVariants {
		return Errorf(EINVALID, "expected %d-%d pin titles, got %d", MinVariants, MaxVariants, n)
	}
	for i, t := range g.PinTitles {
		if strings.TrimSpace(t.Title) == "" {
			return Errorf(EINVALID, "pin title %d is empty", i+1)
		}
		if utf8.RuneCountInString(t.Title) > MaxPinTitleLength {
			return Errorf(EINVALID, "pin title %d exceeds %d characters", i+1, MaxPinTitleLength)
		}
	}

	if n := len(g.Descriptions); n < MinVariants || n > MaxVariants {
		return Errorf(EINVALID, "expected %d-%d descriptions, got %d", MinVariants, MaxVariants, n)
	}
	for i, d := range g.Descriptions {
		if strings.TrimSpace(d.Description) == "" {
			return Errorf(EINVALID, "description %d is empty", i+1)
		}
		if utf8.RuneCountInString(d.Description) > MaxPinDescriptionLength {
			return Errorf(EINVALID, "description %d exceeds %d characters", i+1, MaxPinDescriptionLength)
		}
	}

	groups := []struct {
		name string
		tags []string
	}{
		{"primary", g.Hashtags.Primary},
		{"niche", g.Hashtags.Niche},
		{"longtail", g.Hashtags.Longtail},
	}
	for _, group := range groups {
		if len(group.tags) == 0 {
			return Errorf(EINVALID, "%s hashtags missing", group.name)
		}
		for _, tag := range group.tags {
			if !IsHashtag(tag) {
				return Errorf(EINVALID, "malformed %s hashtag %q", group.name, tag)
			}
		}
	}
	return nil
}

// ExtractJSONObject returns the first balanced {...} region of text.
// Braces inside JSON string literals are ignored. It reports false when
// text has no opening brace or the first object is never closed.
func ExtractJSONObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}

// DecodeGeneratedContent locates the first JSON object in a free-text model
// reply and decodes it strictly: unknown fields, trailing data and schema
// violations are rejected rather than coerced.
func DecodeGeneratedContent(reply string) (*GeneratedContent, error) {
	raw, ok := ExtractJSONObject(reply)
	if !ok {
		return nil, Errorf(EINVALID, "no JSON object found in model reply")
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.DisallowUnknownFields()

	var content GeneratedContent
	if err := dec.Decode(&content); err != nil {
		return nil, Errorf(EINVALID, "invalid JSON in model reply: %v", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, Errorf(EINVALID, "unexpected data after JSON object in model reply")
	}

	if err := content.Validate(); err != nil {
		return nil, err
	}
	return &content, nil
}

// Result is the outcome of one pipeline run. AIGenerated records whether
// Content came from a language model or from the template generator.
type Result struct {
	RequestID   string            `json:"requestId"`
	Extracted   *ExtractedContent `json:"extracted"`
	Content     *GeneratedContent `json:"content"`
	AIGenerated bool              `json:"aiGenerated"`
}
