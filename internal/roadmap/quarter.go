// internal/roadmap/quarter.go
package roadmap

import (
	"fmt"
	"time"
)

// Quarter identifies a calendar quarter.
type Quarter struct {
	Q    int // 1-4
	Year int
}

// QuarterOf returns the quarter containing t.
func QuarterOf(t time.Time) Quarter {
	return Quarter{
		Q:    (int(t.Month())-1)/3 + 1,
		Year: t.Year(),
	}
}

// Add advances the quarter by offset quarters, wrapping Q4 into Q1 of
// the next year. Offsets are always non-negative here (derived from a
// stage index), but negative offsets are handled for completeness.
func (q Quarter) Add(offset int) Quarter {
	total := (q.Year*4 + (q.Q - 1)) + offset
	return Quarter{
		Q:    total%4 + 1,
		Year: total / 4,
	}
}

// String renders the wire format, e.g. "Q3 2026".
func (q Quarter) String() string {
	return fmt.Sprintf("Q%d %d", q.Q, q.Year)
}

// ParseQuarter parses the "Q<1-4> <year>" wire format.
func ParseQuarter(s string) (Quarter, error) {
	var q Quarter
	if _, err := fmt.Sscanf(s, "Q%d %d", &q.Q, &q.Year); err != nil {
		return Quarter{}, fmt.Errorf("invalid quarter %q: %w", s, err)
	}
	if q.Q < 1 || q.Q > 4 {
		return Quarter{}, fmt.Errorf("invalid quarter %q: quarter must be 1-4", s)
	}
	return q, nil
}

// Before reports whether q precedes other in calendar order.
func (q Quarter) Before(other Quarter) bool {
	if q.Year != other.Year {
		return q.Year < other.Year
	}
	return q.Q < other.Q
}
