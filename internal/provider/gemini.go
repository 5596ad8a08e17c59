// internal/provider/gemini.go
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// GeminiConfig holds the settings for the Gemini HTTP provider.
type GeminiConfig struct {
	BaseURL    string
	Model      string
	APIKey     string // default key; requests may carry their own
	MaxRetries int
}

// GeminiProvider calls the Gemini generateContent REST endpoint with a
// hand-rolled HTTP client. The HTTP client itself has no timeout; the
// request context carries the deadline.
type GeminiProvider struct {
	config GeminiConfig
	client *http.Client
}

func NewGeminiProvider(config GeminiConfig) *GeminiProvider {
	return &GeminiProvider{
		config: config,
		client: &http.Client{},
	}
}

func (p *GeminiProvider) Name() string {
	return fmt.Sprintf("gemini-%s", p.config.Model)
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
	Config   *geminiGenCfg   `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenCfg struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

// Generate executes one generation with bounded retry and exponential
// backoff. Context expiry maps to ErrProviderTimeout; everything else
// to ErrProviderCallFailed.
func (p *GeminiProvider) Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error) {
	apiKey := req.APIKey
	if apiKey == "" {
		apiKey = p.config.APIKey
	}
	if apiKey == "" {
		return GenerateResponse{}, fmt.Errorf("%w: no API key available", ErrProviderCallFailed)
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: req.Prompt}}}},
		Config: &geminiGenCfg{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		},
	})
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("%w: %v", ErrProviderCallFailed, err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", p.config.BaseURL, p.config.Model)

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt <= p.config.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return GenerateResponse{}, ErrProviderTimeout
			}
		}

		// The body is consumed per attempt, so the request is rebuilt
		// each time around.
		httpReq, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if reqErr != nil {
			return GenerateResponse{}, fmt.Errorf("%w: %v", ErrProviderCallFailed, reqErr)
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("x-goog-api-key", apiKey)

		resp, lastErr = p.client.Do(httpReq)

		if ctx.Err() != nil ||
			errors.Is(lastErr, context.DeadlineExceeded) ||
			errors.Is(lastErr, context.Canceled) {
			return GenerateResponse{}, ErrProviderTimeout
		}

		if lastErr == nil {
			if resp.StatusCode == http.StatusOK {
				break
			}
			errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			resp.Body.Close()
			lastErr = fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(errBody))
			resp = nil

			// Client errors (bad key, bad request) will not improve with
			// retries.
			if status := statusFromError(lastErr); status >= 400 && status < 500 && status != http.StatusTooManyRequests {
				break
			}
		}
	}

	if lastErr != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return GenerateResponse{}, ErrProviderTimeout
		}
		return GenerateResponse{}, fmt.Errorf("%w: %v", ErrProviderCallFailed, lastErr)
	}

	if resp == nil {
		return GenerateResponse{}, fmt.Errorf("%w: no successful response after retries", ErrProviderCallFailed)
	}
	defer resp.Body.Close()

	var apiResponse geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return GenerateResponse{}, fmt.Errorf("%w: decode error: %v", ErrProviderCallFailed, err)
	}

	if len(apiResponse.Candidates) == 0 || len(apiResponse.Candidates[0].Content.Parts) == 0 {
		return GenerateResponse{}, fmt.Errorf("%w: empty candidates in response", ErrProviderCallFailed)
	}

	return GenerateResponse{
		Text:         apiResponse.Candidates[0].Content.Parts[0].Text,
		FinishReason: apiResponse.Candidates[0].FinishReason,
	}, nil
}

// statusFromError recovers the HTTP status from the "status %d" error
// formed above; 0 when absent.
func statusFromError(err error) int {
	var status int
	if _, scanErr := fmt.Sscanf(err.Error(), "status %d", &status); scanErr != nil {
		return 0
	}
	return status
}
