// internal/roadmap/focus.go
package roadmap

import (
	"fmt"
	"strings"
)

// DefaultFocus is used when no keyword matches the goals text.
const DefaultFocus = "business value"

// focusRule maps goal keywords to a focus phrase. Order matters: the
// first rule with any matching keyword wins, so earlier rules shadow
// later ones when goals mention several themes.
type focusRule struct {
	keywords []string
	phrase   string
}

var focusRules = []focusRule{
	{keywords: []string{"customer", "client", "user experience", "satisfaction"}, phrase: "customer experience"},
	{keywords: []string{"efficien", "productivity", "streamlin"}, phrase: "operational efficiency"},
	{keywords: []string{"cost", "saving", "expense", "reduce spend"}, phrase: "cost reduction"},
	{keywords: []string{"innovat", "new market", "disrupt"}, phrase: "innovation"},
	{keywords: []string{"product", "launch", "feature"}, phrase: "product development"},
}

// FocusPhrase selects a focus phrase from the free-text business goals
// using a case-insensitive first-match-wins substring scan. Keyword
// matching is deliberately coarse: this is a templating aid, not NLP.
func FocusPhrase(goals string) string {
	lowered := strings.ToLower(goals)
	for _, rule := range focusRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return rule.phrase
			}
		}
	}
	return DefaultFocus
}

// stageTemplates are the four description sentences keyed by stage
// index: assess, develop framework, implement, optimize.
var stageTemplates = []string{
	"Assess current capabilities and define a baseline oriented toward %s.",
	"Develop the framework, standards, and plans needed to advance %s.",
	"Implement the planned initiatives and embed them to deliver %s.",
	"Optimize and scale what works, compounding gains in %s.",
}

// StageDescription synthesizes the templated description for a stage
// index, interpolating the focus phrase derived from the goals text.
// Indices beyond the template set reuse the final (optimize) template.
func StageDescription(goals string, stageIndex int) string {
	if stageIndex < 0 {
		stageIndex = 0
	}
	if stageIndex >= len(stageTemplates) {
		stageIndex = len(stageTemplates) - 1
	}
	return fmt.Sprintf(stageTemplates[stageIndex], FocusPhrase(goals))
}
