// internal/provider/prompt.go
package provider

import (
	"encoding/json"
	"fmt"
	"strings"

	"ai-navigator/internal/roadmap"
)

// BuildRoadmapPrompt assembles the generation prompt from the form
// input. The instructions pin the exact document shape so the response
// can be schema-validated after extraction.
func BuildRoadmapPrompt(goals string, current, target roadmap.MaturityScores, start roadmap.Quarter) string {
	var parts []string

	parts = append(parts, "You are an AI adoption advisor. Produce an implementation roadmap for the organization described below.")
	parts = append(parts, fmt.Sprintf("\nBusiness Goals: %s", goals))

	currentJSON, _ := json.MarshalIndent(current, "", "  ")
	parts = append(parts, "\nCurrent maturity levels (1-5 per pillar):")
	parts = append(parts, string(currentJSON))

	targetJSON, _ := json.MarshalIndent(target, "", "  ")
	parts = append(parts, "\nTarget maturity levels (1-5 per pillar):")
	parts = append(parts, string(targetJSON))

	parts = append(parts, fmt.Sprintf("\nThe first stage of every pillar starts in %s.", start))

	parts = append(parts, "\nInstructions:")
	parts = append(parts, "- Only include pillars whose target level is above their current level")
	parts = append(parts, "- Give each such pillar 2 to 4 stages, one calendar quarter per stage")
	parts = append(parts, `- Quarters use the format "Q<1-4> <year>", e.g. "Q2 2026"`)
	parts = append(parts, `- The first stage of a pillar has status "in-progress", all others "planned"`)
	parts = append(parts, "- Give each stage 2-4 concrete milestones and each pillar 3 measurable KPIs")
	parts = append(parts, "- Respond with a single JSON object and nothing else, shaped as:")
	parts = append(parts, `{"pillars":[{"name":"...","currentLevel":1,"targetLevel":3,"stages":[{"name":"...","startQuarter":"Q1 2026","endQuarter":"Q2 2026","description":"...","milestones":["..."],"status":"in-progress"}],"kpis":["..."]}]}`)

	return strings.Join(parts, "\n")
}
