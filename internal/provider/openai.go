// internal/provider/openai.go
package provider

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIConfig holds the settings for the OpenAI chat-completions
// provider.
type OpenAIConfig struct {
	BaseURL string // optional; defaults to the public API
	Model   string
	APIKey  string // default key; requests may carry their own
}

// OpenAIProvider implements Provider using the official openai-go SDK.
// The client is constructed per call because BYOK requests swap the key.
type OpenAIProvider struct {
	config OpenAIConfig
}

func NewOpenAIProvider(config OpenAIConfig) *OpenAIProvider {
	return &OpenAIProvider{config: config}
}

func (p *OpenAIProvider) Name() string {
	return fmt.Sprintf("openai-%s", p.config.Model)
}

func (p *OpenAIProvider) Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error) {
	apiKey := req.APIKey
	if apiKey == "" {
		apiKey = p.config.APIKey
	}
	if apiKey == "" {
		return GenerateResponse{}, fmt.Errorf("%w: no API key available", ErrProviderCallFailed)
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if p.config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(p.config.BaseURL))
	}
	client := openai.NewClient(opts...)

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.config.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		},
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}

	resp, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || ctx.Err() != nil {
			return GenerateResponse{}, ErrProviderTimeout
		}
		return GenerateResponse{}, fmt.Errorf("%w: %v", ErrProviderCallFailed, err)
	}
	if len(resp.Choices) == 0 {
		return GenerateResponse{}, fmt.Errorf("%w: empty choices in response", ErrProviderCallFailed)
	}

	return GenerateResponse{
		Text:         resp.Choices[0].Message.Content,
		FinishReason: string(resp.Choices[0].FinishReason),
	}, nil
}
