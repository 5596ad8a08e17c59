// internal/handlers/generate-roadmap/handler.go
package generateroadmap

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	apperrors "ai-navigator/internal/common/errors"
	"ai-navigator/internal/common/logger"
	"ai-navigator/internal/common/metrics"
	"ai-navigator/internal/provider"
	"ai-navigator/internal/quota"
	"ai-navigator/internal/roadmap"
)

type Handler struct {
	config    *Config
	providers map[string]provider.Provider
	quota     quota.Store
	logger    logger.Logger
	now       func() time.Time
}

// NewHandler wires the generation endpoint. providers may be empty in
// local mode; quota gates the default-key path only.
func NewHandler(config *Config, providers map[string]provider.Provider, store quota.Store, log logger.Logger) *Handler {
	return &Handler{
		config:    config,
		providers: providers,
		quota:     store,
		logger:    log.WithFields(map[string]interface{}{"handler": "generate-roadmap"}),
		now:       time.Now,
	}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	requestID := r.Header.Get("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	log := h.logger.WithFields(map[string]interface{}{"requestId": requestID})

	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.fail(w, log, apperrors.NewValidationFailedError("request body is not valid JSON: "+err.Error()))
		return
	}

	if stdErr := Validate(&input); stdErr != nil {
		h.fail(w, log, stdErr)
		return
	}

	byok := input.APIKey != ""
	if !byok {
		used, err := h.quota.Used(r.Context(), input.ClientID)
		if err != nil {
			h.fail(w, log, apperrors.NewQuotaCheckFailedError(err))
			return
		}
		if used {
			h.fail(w, log, apperrors.NewQuotaExhaustedError())
			return
		}
	}

	result, source, stdErr := h.generate(r.Context(), &input)
	if stdErr != nil {
		h.fail(w, log, stdErr)
		return
	}

	// The free generation is spent only after a successful result. A
	// failed mark must not void a roadmap the client already earned, so
	// it is logged rather than surfaced.
	if !byok {
		if err := h.quota.MarkUsed(r.Context(), input.ClientID); err != nil {
			log.WithError(err).Warn("failed to mark free quota as used", map[string]interface{}{
				"clientId": input.ClientID,
			})
		}
	}

	metrics.RoadmapGenerations.WithLabelValues(source).Inc()
	metrics.RoadmapGenerationDuration.WithLabelValues(source).Observe(time.Since(started).Seconds())

	log.Info("roadmap generated", map[string]interface{}{
		"clientId": input.ClientID,
		"source":   source,
		"pillars":  len(result.Pillars),
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(Output{
		Roadmap:     result,
		Source:      source,
		GeneratedAt: h.now().UTC(),
		RequestID:   requestID,
	})
}

// generate runs either deterministic synthesis or a provider round trip.
func (h *Handler) generate(ctx context.Context, input *Input) (*roadmap.Roadmap, string, *apperrors.StandardError) {
	if h.config.Mode != "provider" {
		return h.synthesize(input), SourceSynthesized, nil
	}

	p, stdErr := h.selectProvider(input.Provider)
	if stdErr != nil {
		return nil, "", stdErr
	}

	ctx, cancel := context.WithTimeout(ctx, h.config.Timeout)
	defer cancel()

	start := roadmap.QuarterOf(h.now())
	prompt := provider.BuildRoadmapPrompt(input.BusinessGoals, input.CurrentMaturity, input.TargetMaturity, start)

	resp, err := p.Generate(ctx, provider.GenerateRequest{
		Prompt:      prompt,
		APIKey:      input.APIKey,
		MaxTokens:   h.config.MaxTokens,
		Temperature: h.config.Temperature,
	})
	if err != nil {
		metrics.ProviderRequests.WithLabelValues(p.Name(), "error").Inc()
		if errors.Is(err, provider.ErrProviderTimeout) {
			return nil, "", apperrors.NewProviderTimeoutError()
		}
		return nil, "", apperrors.NewProviderCallFailedError(err)
	}
	metrics.ProviderRequests.WithLabelValues(p.Name(), "success").Inc()

	raw, err := roadmap.ExtractJSON(resp.Text)
	if err != nil {
		return nil, "", apperrors.NewResponseParseFailedError(err)
	}
	if err := roadmap.ValidateRoadmapJSON(raw); err != nil {
		return nil, "", apperrors.NewResponseParseFailedError(err)
	}

	var result roadmap.Roadmap
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, "", apperrors.NewResponseParseFailedError(err)
	}

	return &result, SourceProvider, nil
}

func (h *Handler) synthesize(input *Input) *roadmap.Roadmap {
	result := roadmap.Synthesize(roadmap.SynthesisInput{
		Goals:   input.BusinessGoals,
		Current: input.CurrentMaturity,
		Target:  input.TargetMaturity,
		Start:   roadmap.QuarterOf(h.now()),
	})
	return &result
}

func (h *Handler) selectProvider(name string) (provider.Provider, *apperrors.StandardError) {
	if name == "" {
		name = h.config.DefaultProvider
	}
	p, ok := h.providers[name]
	if !ok {
		return nil, apperrors.NewValidationFailedError("unknown provider: " + name)
	}
	return p, nil
}

func (h *Handler) fail(w http.ResponseWriter, log logger.Logger, stdErr *apperrors.StandardError) {
	metrics.RoadmapGenerationFailures.WithLabelValues(string(stdErr.Code)).Inc()
	log.WithError(stdErr).Error("roadmap generation failed", map[string]interface{}{
		"errorCode": string(stdErr.Code),
	})
	apperrors.WriteError(w, stdErr)
}
