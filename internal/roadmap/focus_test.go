// internal/roadmap/focus_test.go
package roadmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFocusPhrase(t *testing.T) {
	tests := []struct {
		name     string
		goals    string
		expected string
	}{
		{"customer keyword", "Improve customer retention in EMEA", "customer experience"},
		{"efficiency keyword", "Drive efficiency through automation", "operational efficiency"},
		{"cost keyword", "reduce cost", "cost reduction"},
		{"innovation keyword", "Innovate faster than competitors", "innovation"},
		{"product keyword", "Ship our next product line", "product development"},
		{"case insensitive", "REDUCE COST ACROSS THE BOARD", "cost reduction"},
		{"no match falls back", "Grow market share in APAC", DefaultFocus},
		{"empty goals fall back", "", DefaultFocus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FocusPhrase(tt.goals))
		})
	}
}

func TestFocusPhrase_FirstMatchWins(t *testing.T) {
	// Rule order decides when goals mention several themes: customer
	// rules precede cost rules.
	assert.Equal(t, "customer experience", FocusPhrase("cut costs and delight customers"))
	// Productivity is claimed by the efficiency rule before the product
	// rule can see its substring.
	assert.Equal(t, "operational efficiency", FocusPhrase("boost team productivity"))
}

func TestStageDescription(t *testing.T) {
	goals := "reduce cost"

	for i := 0; i < MaxStages; i++ {
		desc := StageDescription(goals, i)
		assert.Contains(t, desc, "cost reduction", "stage %d interpolates the focus phrase", i)
	}

	// Distinct template per stage index.
	assert.NotEqual(t, StageDescription(goals, 0), StageDescription(goals, 1))
	assert.NotEqual(t, StageDescription(goals, 1), StageDescription(goals, 2))
	assert.NotEqual(t, StageDescription(goals, 2), StageDescription(goals, 3))

	// Out-of-range indices clamp rather than panic.
	assert.Equal(t, StageDescription(goals, 3), StageDescription(goals, 9))
	assert.Equal(t, StageDescription(goals, 0), StageDescription(goals, -1))
}
