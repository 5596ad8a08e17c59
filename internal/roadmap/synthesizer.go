// internal/roadmap/synthesizer.go
package roadmap

import "sort"

// SynthesisInput carries everything the deterministic generator needs.
// Start anchors the first stage of every pillar; callers derive it from
// the clock so tests can pin it.
type SynthesisInput struct {
	Goals   string
	Current MaturityScores
	Target  MaturityScores
	Start   Quarter
}

// SelectPillars returns the pillars eligible for a roadmap: those with
// both a current and a target level where target > current. Known
// pillars come first in canonical catalog order, then any free-text
// pillars in lexical order, so output is deterministic.
func SelectPillars(current, target MaturityScores) []string {
	eligible := func(name string) bool {
		c, okC := current[name]
		t, okT := target[name]
		return okC && okT && t > c
	}

	var selected []string
	seen := make(map[string]bool)
	for _, name := range CanonicalPillars {
		if eligible(name) {
			selected = append(selected, name)
			seen[name] = true
		}
	}

	var extra []string
	for name := range current {
		if !seen[name] && eligible(name) {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)

	return append(selected, extra...)
}

// Synthesize deterministically expands the maturity scores and goals
// into a full roadmap document. Pillars without a valid improving
// (current, target) pair contribute nothing; an input with no such pair
// yields an empty pillar list, which callers must treat as
// non-actionable rather than a result.
func Synthesize(in SynthesisInput) Roadmap {
	var out Roadmap
	for _, name := range SelectPillars(in.Current, in.Target) {
		out.Pillars = append(out.Pillars, synthesizePillar(name, in))
	}
	return out
}

func synthesizePillar(name string, in SynthesisInput) PillarRoadmap {
	currentLevel := in.Current[name]
	targetLevel := in.Target[name]
	numStages := StageCount(currentLevel, targetLevel)

	stages := make([]Stage, 0, numStages)
	for i := 0; i < numStages; i++ {
		status := StatusPlanned
		if i == 0 {
			status = StatusInProgress
		}
		stages = append(stages, Stage{
			Name:         StageName(name, i),
			StartQuarter: in.Start.Add(i).String(),
			EndQuarter:   in.Start.Add(i + 1).String(),
			Description:  StageDescription(in.Goals, i),
			Milestones:   StageMilestones(name, i),
			Status:       status,
		})
	}

	return PillarRoadmap{
		Name:         name,
		CurrentLevel: currentLevel,
		TargetLevel:  targetLevel,
		Stages:       stages,
		KPIs:         PillarKPIs(name),
	}
}
