// internal/provider/prompt_test.go
package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ai-navigator/internal/roadmap"
)

func TestBuildRoadmapPrompt(t *testing.T) {
	prompt := BuildRoadmapPrompt(
		"reduce operating cost",
		roadmap.MaturityScores{"Data": 1, "Technology": 2},
		roadmap.MaturityScores{"Data": 3, "Technology": 4},
		roadmap.Quarter{Q: 2, Year: 2026},
	)

	assert.Contains(t, prompt, "reduce operating cost")
	assert.Contains(t, prompt, `"Data": 1`)
	assert.Contains(t, prompt, `"Technology": 4`)
	assert.Contains(t, prompt, "starts in Q2 2026")
	assert.Contains(t, prompt, `"in-progress"`)
	assert.Contains(t, prompt, `{"pillars":`)
}
