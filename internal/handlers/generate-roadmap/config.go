// internal/handlers/generate-roadmap/config.go
package generateroadmap

import (
	"time"

	"ai-navigator/internal/common/config"
)

// Config holds the generation settings for the handler.
type Config struct {
	Mode            string // "provider" or "local"
	DefaultProvider string
	Timeout         time.Duration
	MaxTokens       int
	Temperature     float64
}

// ConfigFromGenAI derives the handler config from the genai section.
func ConfigFromGenAI(genai config.GenAIConfig) *Config {
	return &Config{
		Mode:            genai.Mode,
		DefaultProvider: genai.Provider,
		Timeout:         time.Duration(genai.Timeout) * time.Millisecond,
		MaxTokens:       genai.MaxTokens,
		Temperature:     genai.Temperature,
	}
}
