// internal/roadmap/models.go
package roadmap

// StageStatus is the execution state of a roadmap stage.
type StageStatus string

const (
	StatusInProgress StageStatus = "in-progress"
	StatusPlanned    StageStatus = "planned"
)

// MaturityScores maps pillar name to a 1-5 ordinal maturity level.
type MaturityScores map[string]int

// Stage is a time-boxed phase within a pillar's roadmap.
type Stage struct {
	Name         string      `json:"name"`
	StartQuarter string      `json:"startQuarter"`
	EndQuarter   string      `json:"endQuarter"`
	Description  string      `json:"description"`
	Milestones   []string    `json:"milestones"`
	Status       StageStatus `json:"status"`
}

// PillarRoadmap is the per-pillar improvement plan.
type PillarRoadmap struct {
	Name         string   `json:"name"`
	CurrentLevel int      `json:"currentLevel"`
	TargetLevel  int      `json:"targetLevel"`
	Stages       []Stage  `json:"stages"`
	KPIs         []string `json:"kpis"`
}

// Roadmap is the full generated document. Built fresh per generation
// request; never persisted.
type Roadmap struct {
	Pillars []PillarRoadmap `json:"pillars"`
}

// MinLevel and MaxLevel bound the ordinal maturity scale.
const (
	MinLevel = 1
	MaxLevel = 5
)

// MinStages and MaxStages bound the stage-count policy: every roadmap
// has at least an assessment and an action stage, and never more than
// four stages regardless of the level gap.
const (
	MinStages = 2
	MaxStages = 4
)

// StageCount returns the number of stages for a level gap that is
// guaranteed >= 1 by pillar selection: clamp(gap+1, 2, 4).
func StageCount(currentLevel, targetLevel int) int {
	n := targetLevel - currentLevel + 1
	if n < MinStages {
		return MinStages
	}
	if n > MaxStages {
		return MaxStages
	}
	return n
}
