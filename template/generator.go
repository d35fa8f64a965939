// Package template implements an offline pincraft.Generator that fills
// copywriting templates from a Vocabulary. It needs no network access and
// is used when no AI provider is configured or the provider fails.
package template

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	tmpl "text/template"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/pincraft"
)

// Ensure Generator implements pincraft.Generator.
var _ pincraft.Generator = (*Generator)(nil)

const (
	defaultTopic   = "content"
	topicWords     = 2
	minTopicWord   = 4
	benefitScan    = 10
	maxBenefits    = 3
	defaultBenefit = "improve"
)

var numberRe = regexp.MustCompile(`\d+`)

var funcs = tmpl.FuncMap{
	"capitalize": capitalize,
}

// Analysis is what the generator learns from extracted content before
// filling templates.
type Analysis struct {
	MainTopic string
	Benefits  []string
	Audience  string
	Number    string
	Listicle  bool
}

// data is the value templates are executed against.
type data struct {
	Number        string
	Topic         string
	Audience      string
	Benefit       string
	SecondBenefit string
}

type variant struct {
	tmpl     *tmpl.Template
	strategy string
}

// Generator produces pin copy from templates. It is pure: the same input
// always yields the same output.
type Generator struct {
	vocab        *Vocabulary
	stopWords    map[string]struct{}
	benefitVerbs []string
	titles       []variant
	descriptions []variant
}

// NewGenerator compiles the templates in v. A nil v selects
// DefaultVocabulary.
func NewGenerator(v *Vocabulary) (*Generator, error) {
	if v == nil {
		v = DefaultVocabulary()
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		vocab:     v,
		stopWords: make(map[string]struct{}, len(v.StopWords)),
	}
	for _, w := range v.StopWords {
		g.stopWords[strings.ToLower(w)] = struct{}{}
	}
	for _, w := range v.BenefitVerbs {
		g.benefitVerbs = append(g.benefitVerbs, strings.ToLower(w))
	}

	var err error
	if g.titles, err = compile("title", v.Titles); err != nil {
		return nil, err
	}
	if g.descriptions, err = compile("description", v.Descriptions); err != nil {
		return nil, err
	}

	// Content with no title, number or benefits is the leanest input the
	// templates will see.
	sample, err := g.Generate(context.Background(), &pincraft.ExtractedContent{}, "", "")
	if err != nil {
		return nil, pincraft.Errorf(pincraft.EINVALID, "vocabulary renders invalid pin copy: %s", pincraft.ErrorMessage(err))
	}
	if err := sample.Validate(); err != nil {
		return nil, pincraft.Errorf(pincraft.EINVALID, "vocabulary renders invalid pin copy: %s", pincraft.ErrorMessage(err))
	}
	return g, nil
}

func compile(kind string, variants []Variant) ([]variant, error) {
	out := make([]variant, 0, len(variants))
	for i, v := range variants {
		t, err := tmpl.New(kind).Funcs(funcs).Option("missingkey=error").Parse(v.Template)
		if err != nil {
			return nil, pincraft.Errorf(pincraft.EINVALID, "%s template %d: %v", kind, i+1, err)
		}
		if _, err := render(t, data{}); err != nil {
			return nil, pincraft.Errorf(pincraft.EINVALID, "%s template %d: %v", kind, i+1, err)
		}
		out = append(out, variant{tmpl: t, strategy: v.Strategy})
	}
	return out, nil
}

// Analyze derives the topic, benefits, audience and list number used to
// fill templates.
func (g *Generator) Analyze(content *pincraft.ExtractedContent, niche pincraft.Niche) Analysis {
	number := numberRe.FindString(content.Title)
	return Analysis{
		MainTopic: g.mainTopic(content.Title),
		Benefits:  g.benefits(content.Content),
		Audience:  g.vocab.audience(niche),
		Number:    number,
		Listicle:  number != "",
	}
}

func (g *Generator) mainTopic(title string) string {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(title)) {
		w = strings.TrimFunc(w, func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSymbol(r)
		})
		if _, stop := g.stopWords[w]; stop {
			continue
		}
		if utf8.RuneCountInString(w) < minTopicWord {
			continue
		}
		words = append(words, w)
		if len(words) == topicWords {
			break
		}
	}
	if len(words) == 0 {
		return defaultTopic
	}
	return strings.Join(words, " ")
}

func (g *Generator) benefits(content string) []string {
	sentences := strings.Split(content, ".")
	if len(sentences) > benefitScan {
		sentences = sentences[:benefitScan]
	}

	var found []string
	seen := make(map[string]bool)
	for _, s := range sentences {
		s = strings.ToLower(s)
		for _, verb := range g.benefitVerbs {
			if !seen[verb] && strings.Contains(s, verb) {
				seen[verb] = true
				found = append(found, verb)
			}
		}
	}
	if len(found) > maxBenefits {
		found = found[:maxBenefits]
	}
	return found
}

// Generate fills every title and description template and derives
// hashtags and insights from the analysis.
func (g *Generator) Generate(_ context.Context, content *pincraft.ExtractedContent, niche pincraft.Niche, _ string) (*pincraft.GeneratedContent, error) {
	if content == nil {
		return nil, pincraft.Errorf(pincraft.EINVALID, "no content to generate from")
	}
	a := g.Analyze(content, niche)
	d := data{
		Number:   a.Number,
		Topic:    a.MainTopic,
		Audience: a.Audience,
	}
	if len(a.Benefits) > 0 {
		d.Benefit = a.Benefits[0]
	}
	if len(a.Benefits) > 1 {
		d.SecondBenefit = a.Benefits[1]
	}

	out := &pincraft.GeneratedContent{
		PinTitles:         make([]pincraft.PinTitle, 0, len(g.titles)),
		Descriptions:      make([]pincraft.PinDescription, 0, len(g.descriptions)),
		Hashtags:          g.hashtags(a, niche),
		StrategicInsights: insights(a, niche),
	}
	for _, v := range g.titles {
		s, err := render(v.tmpl, d)
		if err != nil {
			return nil, pincraft.Errorf(pincraft.EINTERNAL, "render title: %v", err)
		}
		out.PinTitles = append(out.PinTitles, pincraft.PinTitle{
			Title:    pincraft.Truncate(s, pincraft.MaxPinTitleLength),
			Strategy: v.strategy,
		})
	}
	for _, v := range g.descriptions {
		s, err := render(v.tmpl, d)
		if err != nil {
			return nil, pincraft.Errorf(pincraft.EINTERNAL, "render description: %v", err)
		}
		out.Descriptions = append(out.Descriptions, pincraft.PinDescription{
			Description: pincraft.Truncate(s, pincraft.MaxPinDescriptionLength),
			Strategy:    v.strategy,
		})
	}
	return out, nil
}

func (g *Generator) hashtags(a Analysis, niche pincraft.Niche) pincraft.Hashtags {
	words := strings.Fields(a.MainTopic)
	word := func(i int) string {
		if i < len(words) {
			return tagText(words[i])
		}
		return ""
	}
	orDefault := func(s, def string) string {
		if s == "" {
			return def
		}
		return s
	}

	benefit := defaultBenefit
	if len(a.Benefits) > 0 {
		benefit = orDefault(tagText(a.Benefits[0]), defaultBenefit)
	}
	joined := orDefault(tagText(a.MainTopic), defaultTopic)

	return pincraft.Hashtags{
		Primary: []string{
			"#" + orDefault(word(0), "tips"),
			"#" + orDefault(word(1), "guide"),
			"#pinterest",
			"#viral",
		},
		Niche: g.vocab.nicheHashtags(niche),
		Longtail: []string{
			"#" + joined + "tips",
			"#" + joined + "guide",
			"#" + benefit + word(0),
			"#" + orDefault(word(0), defaultTopic) + "hacks",
		},
	}
}

func insights(a Analysis, niche pincraft.Niche) []string {
	nicheLabel := "general"
	if niche != "" {
		nicheLabel = string(niche)
	}
	format := "article"
	if a.Listicle {
		format = "listicle"
	}
	return []string{
		"Used template-based optimization for " + a.MainTopic + " content",
		"Applied " + nicheLabel + " niche targeting strategies",
		"Incorporated " + format + " format optimization",
		"Generated variants testing different emotional triggers",
		"Focused on benefit-driven messaging for better engagement",
	}
}

// tagText removes characters that cannot appear inside a hashtag.
func tagText(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '#' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func render(t *tmpl.Template, d data) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, d); err != nil {
		return "", err
	}
	return pincraft.CollapseWhitespace(buf.String()), nil
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
