// internal/handlers/generate-roadmap/validation.go
package generateroadmap

import (
	"fmt"
	"strings"

	apperrors "ai-navigator/internal/common/errors"
	"ai-navigator/internal/roadmap"
)

// Validate checks the form submission. Levels must sit in the 1-5
// ordinal scale; at least one pillar must have a target level above its
// current level, otherwise the roadmap would be empty.
func Validate(input *Input) *apperrors.StandardError {
	var problems []string

	if strings.TrimSpace(input.ClientID) == "" {
		problems = append(problems, "clientId is required")
	}
	if len(input.CurrentMaturity) == 0 {
		problems = append(problems, "currentMaturity must not be empty")
	}
	if len(input.TargetMaturity) == 0 {
		problems = append(problems, "targetMaturity must not be empty")
	}

	problems = append(problems, checkLevels("currentMaturity", input.CurrentMaturity)...)
	problems = append(problems, checkLevels("targetMaturity", input.TargetMaturity)...)

	if len(problems) > 0 {
		return apperrors.NewValidationFailedError(strings.Join(problems, "; "))
	}

	if len(roadmap.SelectPillars(input.CurrentMaturity, input.TargetMaturity)) == 0 {
		return apperrors.NewNoEligiblePillarError()
	}

	return nil
}

func checkLevels(field string, scores roadmap.MaturityScores) []string {
	var problems []string
	for pillar, level := range scores {
		if level < roadmap.MinLevel || level > roadmap.MaxLevel {
			problems = append(problems, fmt.Sprintf(
				"%s[%s] = %d is outside the %d-%d scale",
				field, pillar, level, roadmap.MinLevel, roadmap.MaxLevel))
		}
	}
	return problems
}
