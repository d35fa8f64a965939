package pincraft

import (
	"fmt"
	"strings"
)

// PromptFramework describes the analysis steps, headline formulas and
// output requirements sent to language-model generators.
const PromptFramework = `ANALYSIS FRAMEWORK:

STEP 1: CONTENT ANALYSIS
Identify the main topic and subtopics, the benefits and outcomes promised,
actionable tips or steps, the target audience, unique angles, statistics or
research findings, authority markers, and the emotional hooks and pain points
the article addresses.

STEP 2: PINTEREST OPTIMIZATION
Apply high-performing pin formats for this content type, search-friendly
keyword patterns, seasonal relevance, gaps left by competing content,
solution-focused messaging, text-overlay readability and the engagement
signals Pinterest rewards.

STEP 3: VARIANT CREATION
Use these formulas:

Curiosity:
- "The [Number] [Topic] That [Outcome]"
- "[Number] [Topic] [Authority] Don't Want You to Know"
- "What Happens When You [Action] - The Results Will [Emotion]"

Benefit-driven:
- "[Number] Ways to [Desired Outcome] in [Timeframe]"
- "How to [Achievement] Without [Common Obstacle]"
- "[Process] That Actually Works (Proven Results)"

Problem-solution:
- "Stop [Bad Habit] - Try This [Solution] Instead"
- "Why [Common Approach] Fails (And What Works Better)"
- "[Number] Mistakes Everyone Makes With [Topic]"

Authority and social proof:
- "What [Number]+ [People/Experts] Learned About [Topic]"
- "[Expert/Study] Reveals [Surprising Finding]"
- "The [Topic] Method That Changed [Number] Lives"

OUTPUT REQUIREMENTS:

PIN TITLES (5-8 variants): at most 100 characters each, strong curiosity or
emotional pull, numbers for listicles, readable as a text overlay, each
variant testing a different psychological trigger.

PIN DESCRIPTIONS (5-8 variants): 200-500 characters each, natural keyword
use, a clear call to action, benefit-focused language matching search intent,
addressing specific pain points from the article.

HASHTAGS: a mix of high-traffic and niche tags plus long-tail tags matching
the article precisely. Every tag starts with # and contains no spaces.

STRATEGIC INSIGHTS: the decisions behind the variants and the optimization
techniques used.

QUALITY: every variant must accurately represent the article. No clickbait
that the article does not deliver on. Use accessible, inclusive language.

Reply with a single JSON object in exactly this shape:

{
  "pinTitles": [
    {"title": "Generated Title 1", "strategy": "Curiosity Gap + Number Hook"},
    {"title": "Generated Title 2", "strategy": "Benefit-Driven + Timeframe"}
  ],
  "descriptions": [
    {"description": "Generated description 1...", "strategy": "Problem-Solution + CTA"},
    {"description": "Generated description 2...", "strategy": "Social Proof + Keywords"}
  ],
  "hashtags": {
    "primary": ["#maintag1", "#maintag2"],
    "niche": ["#nichetag1", "#nichetag2"],
    "longtail": ["#longtailtag1", "#longtailtag2"]
  },
  "strategicInsights": [
    "Used a curiosity gap because the article reveals surprising statistics"
  ]
}`

// BuildPrompt builds the single user message sent to language-model
// generators. It embeds the extracted article fields, the niche, the
// user's insights and PromptFramework.
func BuildPrompt(content *ExtractedContent, niche Niche, insights string) string {
	nicheLabel := string(niche)
	if nicheLabel == "" {
		nicheLabel = "General"
	}
	if strings.TrimSpace(insights) == "" {
		insights = "None provided"
	}

	var sb strings.Builder
	sb.WriteString("You are a Pinterest marketing strategist and content optimization expert. ")
	sb.WriteString("Analyze the article below and create high-performing Pinterest pin variants.\n\n")
	sb.WriteString("ARTICLE CONTENT:\n")
	fmt.Fprintf(&sb, "Title: %s\n", content.Title)
	fmt.Fprintf(&sb, "Description: %s\n", content.Description)
	fmt.Fprintf(&sb, "Content: %s\n", content.Content)
	fmt.Fprintf(&sb, "Headings: %s\n", strings.Join(content.Headings, ", "))
	fmt.Fprintf(&sb, "Niche: %s\n", nicheLabel)
	fmt.Fprintf(&sb, "Additional Insights: %s\n\n", insights)
	sb.WriteString(PromptFramework)
	return sb.String()
}
