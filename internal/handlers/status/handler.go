// internal/handlers/status/handler.go
package status

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	apperrors "ai-navigator/internal/common/errors"
	"ai-navigator/internal/common/logger"
)

const (
	// listKey is the redis list holding recent checks, newest first.
	listKey = "status:checks"

	// maxChecks caps the list; older entries fall off.
	maxChecks = 1000
)

type Handler struct {
	redis  *redis.Client
	logger logger.Logger
	now    func() time.Time
}

func NewHandler(client *redis.Client, log logger.Logger) *Handler {
	return &Handler{
		redis:  client,
		logger: log.WithFields(map[string]interface{}{"handler": "status"}),
		now:    time.Now,
	}
}

// Root answers GET /api.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello World"})
}

// Create answers POST /api/status with the stored record.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var input CreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		apperrors.WriteError(w, apperrors.NewValidationFailedError("request body is not valid JSON: "+err.Error()))
		return
	}
	if strings.TrimSpace(input.ClientName) == "" {
		apperrors.WriteError(w, apperrors.NewValidationFailedError("client_name is required"))
		return
	}

	check := Check{
		ID:         uuid.NewString(),
		ClientName: input.ClientName,
		Timestamp:  h.now().UTC(),
	}

	payload, err := json.Marshal(check)
	if err != nil {
		apperrors.WriteError(w, apperrors.NewInternalError(err))
		return
	}

	pipe := h.redis.TxPipeline()
	pipe.LPush(r.Context(), listKey, payload)
	pipe.LTrim(r.Context(), listKey, 0, maxChecks-1)
	if _, err := pipe.Exec(r.Context()); err != nil {
		h.logger.WithError(err).Error("failed to store status check", nil)
		apperrors.WriteError(w, apperrors.NewStorageFailedError(err))
		return
	}

	writeJSON(w, http.StatusOK, check)
}

// List answers GET /api/status with checks newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.redis.LRange(r.Context(), listKey, 0, maxChecks-1).Result()
	if err != nil {
		h.logger.WithError(err).Error("failed to list status checks", nil)
		apperrors.WriteError(w, apperrors.NewStorageFailedError(err))
		return
	}

	checks := make([]Check, 0, len(entries))
	for _, entry := range entries {
		var check Check
		if err := json.Unmarshal([]byte(entry), &check); err != nil {
			// A corrupt entry is skipped, not fatal for the listing.
			h.logger.WithError(err).Warn("skipping unreadable status check entry", nil)
			continue
		}
		checks = append(checks, check)
	}

	writeJSON(w, http.StatusOK, checks)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
