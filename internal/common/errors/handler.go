// internal/common/errors/handler.go
package errors

import (
	"encoding/json"
	"errors"
	"net/http"
)

// httpStatusMapping maps internal error codes to HTTP status codes.
var httpStatusMapping = map[ErrorCode]int{
	ErrCodeValidationFailed:    http.StatusUnprocessableEntity,
	ErrCodeNoEligiblePillar:    http.StatusUnprocessableEntity,
	ErrCodeQuotaExhausted:      http.StatusPaymentRequired,
	ErrCodeQuotaCheckFailed:    http.StatusServiceUnavailable,
	ErrCodeProviderCallFailed:  http.StatusBadGateway,
	ErrCodeProviderTimeout:     http.StatusGatewayTimeout,
	ErrCodeResponseParseFailed: http.StatusBadGateway,
	ErrCodeStorageFailed:       http.StatusServiceUnavailable,
	ErrCodeInternal:            http.StatusInternalServerError,
}

// HTTPStatus returns the HTTP status for an error code, defaulting to
// 500 for unmapped codes.
func HTTPStatus(code ErrorCode) int {
	if status, ok := httpStatusMapping[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ErrorResponse is the JSON error envelope returned by every endpoint.
type ErrorResponse struct {
	Error *StandardError `json:"error"`
}

// WriteError renders err as the JSON error envelope. Non-StandardError
// values are wrapped as internal errors so the envelope shape is stable.
func WriteError(w http.ResponseWriter, err error) {
	var stdErr *StandardError
	if !errors.As(err, &stdErr) {
		stdErr = NewInternalError(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(HTTPStatus(stdErr.Code))
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: stdErr})
}

// IsRetryable reports whether the error is marked retryable.
func IsRetryable(err error) bool {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Retryable
	}
	return false
}
