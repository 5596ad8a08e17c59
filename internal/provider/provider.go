// internal/provider/provider.go
package provider

import (
	"context"
	"errors"
)

var (
	ErrProviderTimeout    = errors.New("PROVIDER_TIMEOUT")
	ErrProviderCallFailed = errors.New("PROVIDER_CALL_FAILED")
)

// GenerateRequest is a single text-generation call. APIKey, when set,
// is a user-supplied (BYOK) key that overrides the configured default
// for this request only.
type GenerateRequest struct {
	Prompt      string
	APIKey      string
	MaxTokens   int
	Temperature float64
}

// GenerateResponse carries the raw provider text. Extraction of the
// roadmap JSON from it is the caller's concern.
type GenerateResponse struct {
	Text         string
	FinishReason string
}

// Provider is the abstraction over generative-AI backends.
type Provider interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)
	Name() string
}
