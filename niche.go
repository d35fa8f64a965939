package pincraft

import "strings"

// Niche is a content category used to tailor audience and hashtag targeting.
// The zero value means no niche was selected.
type Niche string

// Niche constants.
const (
	NicheHealth     Niche = "Health & Wellness"
	NicheFinance    Niche = "Finance & Money"
	NicheLifestyle  Niche = "Lifestyle & Home"
	NicheFood       Niche = "Food & Recipes"
	NicheFashion    Niche = "Fashion & Beauty"
	NicheTravel     Niche = "Travel & Adventure"
	NicheBusiness   Niche = "Business & Productivity"
	NicheParenting  Niche = "Parenting & Family"
	NicheDIY        Niche = "DIY & Crafts"
	NicheTechnology Niche = "Technology"
	NicheEducation  Niche = "Education & Learning"
	NicheFitness    Niche = "Fitness & Exercise"
	NichePets       Niche = "Animals & Pets"
)

// Niches returns all supported niches in display order.
func Niches() []Niche {
	return []Niche{
		NicheHealth,
		NicheFinance,
		NicheLifestyle,
		NicheFood,
		NicheFashion,
		NicheTravel,
		NicheBusiness,
		NicheParenting,
		NicheDIY,
		NicheTechnology,
		NicheEducation,
		NicheFitness,
		NichePets,
	}
}

// Valid reports whether n is empty or one of the supported niches.
func (n Niche) Valid() bool {
	if n == "" {
		return true
	}
	for _, known := range Niches() {
		if n == known {
			return true
		}
	}
	return false
}

// ParseNiche matches s against the supported niche labels, ignoring case
// and surrounding whitespace. An empty string parses to the zero Niche.
func ParseNiche(s string) (Niche, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	for _, n := range Niches() {
		if strings.EqualFold(s, string(n)) {
			return n, nil
		}
	}
	return "", Errorf(EINVALID, "unknown niche %q", s)
}
