// internal/handlers/generate-roadmap/models.go
package generateroadmap

import (
	"time"

	"ai-navigator/internal/roadmap"
)

// Input is the form submission. APIKey, when present, is the client's
// own provider key; such requests bypass the free-quota gate. Provider
// optionally selects which configured backend serves the request.
type Input struct {
	ClientID        string                 `json:"clientId"`
	BusinessGoals   string                 `json:"businessGoals"`
	CurrentMaturity roadmap.MaturityScores `json:"currentMaturity"`
	TargetMaturity  roadmap.MaturityScores `json:"targetMaturity"`
	APIKey          string                 `json:"apiKey,omitempty"`
	Provider        string                 `json:"provider,omitempty"`
}

// SourceProvider and SourceSynthesized tag where a roadmap came from.
const (
	SourceProvider    = "provider"
	SourceSynthesized = "synthesized"
)

type Output struct {
	Roadmap     *roadmap.Roadmap `json:"roadmap"`
	Source      string           `json:"source"`
	GeneratedAt time.Time        `json:"generatedAt"`
	RequestID   string           `json:"requestId"`
}
