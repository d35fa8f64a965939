package template

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/fwojciec/pincraft"
	"gopkg.in/yaml.v3"
)

// VariantCount is the number of title and description variants a
// vocabulary must define.
const VariantCount = 6

//go:embed vocabulary.yaml
var defaultVocabulary []byte

// Variant pairs a copy template with the strategy label it demonstrates.
type Variant struct {
	Template string `yaml:"template"`
	Strategy string `yaml:"strategy"`
}

// Vocabulary is the word lists, niche dictionaries and copy templates
// driving the template generator.
type Vocabulary struct {
	StopWords            []string            `yaml:"stopWords"`
	BenefitVerbs         []string            `yaml:"benefitVerbs"`
	DefaultAudience      string              `yaml:"defaultAudience"`
	Audiences            map[string]string   `yaml:"audiences"`
	DefaultNicheHashtags []string            `yaml:"defaultNicheHashtags"`
	NicheHashtags        map[string][]string `yaml:"nicheHashtags"`
	Titles               []Variant           `yaml:"titles"`
	Descriptions         []Variant           `yaml:"descriptions"`
}

// DefaultVocabulary returns the built-in vocabulary.
func DefaultVocabulary() *Vocabulary {
	v, err := LoadVocabulary(bytes.NewReader(defaultVocabulary))
	if err != nil {
		panic(fmt.Sprintf("template: invalid built-in vocabulary: %v", err))
	}
	return v
}

// LoadVocabulary decodes and validates a YAML vocabulary. Unknown keys
// are rejected.
func LoadVocabulary(r io.Reader) (*Vocabulary, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var v Vocabulary
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, pincraft.Errorf(pincraft.EINVALID, "vocabulary is empty")
		}
		return nil, pincraft.Errorf(pincraft.EINVALID, "invalid vocabulary: %v", err)
	}
	v.StopWords = lowerAll(v.StopWords)
	v.BenefitVerbs = lowerAll(v.BenefitVerbs)
	if err := v.Validate(); err != nil {
		return nil, err
	}
	if _, err := NewGenerator(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

func lowerAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(w)
	}
	return out
}

// Validate returns an error if the vocabulary cannot produce valid pin copy.
func (v *Vocabulary) Validate() error {
	if len(v.Titles) != VariantCount {
		return pincraft.Errorf(pincraft.EINVALID, "vocabulary needs %d title templates, got %d", VariantCount, len(v.Titles))
	}
	if len(v.Descriptions) != VariantCount {
		return pincraft.Errorf(pincraft.EINVALID, "vocabulary needs %d description templates, got %d", VariantCount, len(v.Descriptions))
	}
	for i, variant := range append(append([]Variant{}, v.Titles...), v.Descriptions...) {
		if variant.Template == "" || variant.Strategy == "" {
			return pincraft.Errorf(pincraft.EINVALID, "variant %d needs both template and strategy", i+1)
		}
	}
	if err := validateWords("stop word", v.StopWords); err != nil {
		return err
	}
	if err := validateWords("benefit verb", v.BenefitVerbs); err != nil {
		return err
	}
	if v.DefaultAudience == "" {
		return pincraft.Errorf(pincraft.EINVALID, "vocabulary needs a default audience")
	}
	if len(v.DefaultNicheHashtags) == 0 {
		return pincraft.Errorf(pincraft.EINVALID, "vocabulary needs default niche hashtags")
	}
	for niche := range v.Audiences {
		if n := pincraft.Niche(niche); n == "" || !n.Valid() {
			return pincraft.Errorf(pincraft.EINVALID, "audience for unknown niche %q", niche)
		}
	}
	for niche, tags := range v.NicheHashtags {
		if n := pincraft.Niche(niche); n == "" || !n.Valid() {
			return pincraft.Errorf(pincraft.EINVALID, "hashtags for unknown niche %q", niche)
		}
		if err := validateTags(tags); err != nil {
			return err
		}
	}
	return validateTags(v.DefaultNicheHashtags)
}

// validateWords rejects entries that could not be matched as one word or
// spliced into a hashtag.
func validateWords(kind string, words []string) error {
	for _, w := range words {
		if w == "" || strings.ContainsFunc(w, func(r rune) bool { return r == '#' || unicode.IsSpace(r) }) {
			return pincraft.Errorf(pincraft.EINVALID, "%s %q must be a single word without '#'", kind, w)
		}
	}
	return nil
}

func validateTags(tags []string) error {
	for _, tag := range tags {
		if !pincraft.IsHashtag(tag) {
			return pincraft.Errorf(pincraft.EINVALID, "malformed hashtag %q", tag)
		}
	}
	return nil
}

// audience returns the audience phrase for niche.
func (v *Vocabulary) audience(niche pincraft.Niche) string {
	if a, ok := v.Audiences[string(niche)]; ok && a != "" {
		return a
	}
	return v.DefaultAudience
}

// nicheHashtags returns a copy of the hashtags for niche.
func (v *Vocabulary) nicheHashtags(niche pincraft.Niche) []string {
	tags, ok := v.NicheHashtags[string(niche)]
	if !ok || len(tags) == 0 {
		tags = v.DefaultNicheHashtags
	}
	return append([]string(nil), tags...)
}
