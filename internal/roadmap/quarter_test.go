// internal/roadmap/quarter_test.go
package roadmap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuarter_Add(t *testing.T) {
	tests := []struct {
		name     string
		base     Quarter
		offset   int
		expected Quarter
	}{
		{"zero offset", Quarter{Q: 2, Year: 2026}, 0, Quarter{Q: 2, Year: 2026}},
		{"same year", Quarter{Q: 1, Year: 2026}, 2, Quarter{Q: 3, Year: 2026}},
		{"wrap Q4 to Q1", Quarter{Q: 4, Year: 2026}, 1, Quarter{Q: 1, Year: 2027}},
		{"wrap across two years", Quarter{Q: 3, Year: 2026}, 6, Quarter{Q: 1, Year: 2028}},
		{"max observed span", Quarter{Q: 2, Year: 2026}, 7, Quarter{Q: 1, Year: 2028}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.base.Add(tt.offset))
		})
	}
}

func TestQuarter_Add_ConsistentSequence(t *testing.T) {
	// Offsets 0..7 must produce a strictly increasing sequence that
	// advances exactly one quarter per step.
	base := Quarter{Q: 3, Year: 2026}
	prev := base
	for offset := 1; offset <= 7; offset++ {
		next := base.Add(offset)
		assert.True(t, prev.Before(next), "offset %d: %s should follow %s", offset, next, prev)
		assert.Equal(t, next, prev.Add(1), "offset %d advances by exactly one quarter", offset)
		prev = next
	}
}

func TestQuarterOf(t *testing.T) {
	tests := []struct {
		month    time.Month
		expected int
	}{
		{time.January, 1},
		{time.March, 1},
		{time.April, 2},
		{time.June, 2},
		{time.July, 3},
		{time.September, 3},
		{time.October, 4},
		{time.December, 4},
	}

	for _, tt := range tests {
		now := time.Date(2026, tt.month, 15, 0, 0, 0, 0, time.UTC)
		q := QuarterOf(now)
		assert.Equal(t, tt.expected, q.Q, "month %s", tt.month)
		assert.Equal(t, 2026, q.Year)
	}
}

func TestQuarter_StringAndParse(t *testing.T) {
	q := Quarter{Q: 4, Year: 2027}
	assert.Equal(t, "Q4 2027", q.String())

	parsed, err := ParseQuarter("Q4 2027")
	require.NoError(t, err)
	assert.Equal(t, q, parsed)

	_, err = ParseQuarter("Q5 2027")
	assert.Error(t, err)

	_, err = ParseQuarter("fourth quarter")
	assert.Error(t, err)
}
