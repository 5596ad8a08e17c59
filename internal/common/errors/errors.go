// Package errors provides standardized error handling for the roadmap
// generation API.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeNoEligiblePillar ErrorCode = "NO_ELIGIBLE_PILLAR"

	ErrCodeQuotaExhausted   ErrorCode = "FREE_QUOTA_EXHAUSTED"
	ErrCodeQuotaCheckFailed ErrorCode = "QUOTA_CHECK_FAILED"

	ErrCodeProviderCallFailed  ErrorCode = "PROVIDER_CALL_FAILED"
	ErrCodeProviderTimeout     ErrorCode = "PROVIDER_TIMEOUT"
	ErrCodeResponseParseFailed ErrorCode = "RESPONSE_PARSE_FAILED"

	ErrCodeStorageFailed ErrorCode = "STORAGE_FAILED"
	ErrCodeInternal      ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewValidationFailedError creates a non-retryable request validation error.
func NewValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Request validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNoEligiblePillarError is returned when no pillar has a target level
// above its current level; a roadmap for such input would be empty.
func NewNoEligiblePillarError() *StandardError {
	return &StandardError{
		Code:      ErrCodeNoEligiblePillar,
		Message:   "No pillar has a target level above its current level",
		Details:   "set at least one target level higher than the current level",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewQuotaExhaustedError is returned when the free generation was already
// consumed and the request carries no user-supplied key.
func NewQuotaExhaustedError() *StandardError {
	return &StandardError{
		Code:      ErrCodeQuotaExhausted,
		Message:   "Free roadmap generation already used",
		Details:   "supply your own provider API key to continue",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewQuotaCheckFailedError creates a retryable quota store error.
func NewQuotaCheckFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeQuotaCheckFailed,
		Message:   "Could not check free generation quota",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewProviderCallFailedError creates a retryable provider error.
func NewProviderCallFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeProviderCallFailed,
		Message:   "AI provider request failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewProviderTimeoutError creates a retryable provider timeout error.
func NewProviderTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeProviderTimeout,
		Message:   "AI provider request timed out",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewResponseParseFailedError marks a provider response that did not
// contain a valid roadmap document. Distinct from a provider call
// failure so clients can tell the two apart.
func NewResponseParseFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeResponseParseFailed,
		Message:   "Failed to parse roadmap from provider response",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewStorageFailedError creates a retryable storage error.
func NewStorageFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStorageFailed,
		Message:   "Storage operation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError wraps an unclassified failure.
func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Internal error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
