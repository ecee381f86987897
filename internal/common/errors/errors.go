// Package errors provides standardized error handling for the API layer.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInvalidRequest   ErrorCode = "INVALID_REQUEST"
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	ErrCodeAPIKeyMissing ErrorCode = "OPENAI_KEY_MISSING"

	ErrCodeUpstreamAuthFailed    ErrorCode = "OPENAI_AUTH_FAILED"
	ErrCodeUpstreamQuotaExceeded ErrorCode = "OPENAI_QUOTA_EXCEEDED"
	ErrCodeUpstreamRequestFailed ErrorCode = "OPENAI_REQUEST_FAILED"

	ErrCodeEmptyCompletion        ErrorCode = "COMPLETION_EMPTY"
	ErrCodeMalformedCompletion    ErrorCode = "COMPLETION_MALFORMED"
	ErrCodeNoValidRecommendations ErrorCode = "NO_VALID_RECOMMENDATIONS"

	ErrCodeWebhookNotConfigured ErrorCode = "WEBHOOK_NOT_CONFIGURED"
	ErrCodeWebhookCallFailed    ErrorCode = "WEBHOOK_CALL_FAILED"
)

// AppError represents a structured application error. Message is safe to
// return to the caller; Details is diagnostic and stays in the logs.
type AppError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("AppError[%s]: %s", e.Code, e.Message)
}

// NewInvalidRequestError creates a client-input error.
func NewInvalidRequestError(message string) *AppError {
	return &AppError{
		Code:      ErrCodeInvalidRequest,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// NewAPIKeyMissingError creates a server-misconfiguration error for an
// absent model credential.
func NewAPIKeyMissingError() *AppError {
	return &AppError{
		Code:      ErrCodeAPIKeyMissing,
		Message:   "OpenAI API key is not configured. Please check your environment variables.",
		Timestamp: time.Now().UTC(),
	}
}

// NewUpstreamAuthError creates an error for a provider authorization failure.
func NewUpstreamAuthError(err error) *AppError {
	return &AppError{
		Code:      ErrCodeUpstreamAuthFailed,
		Message:   "Invalid OpenAI API key. Please check your configuration.",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// NewUpstreamQuotaError creates an error for provider quota exhaustion.
func NewUpstreamQuotaError(err error) *AppError {
	return &AppError{
		Code:      ErrCodeUpstreamQuotaExceeded,
		Message:   "OpenAI API quota exceeded. Please check your usage limits.",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// NewUpstreamRequestFailedError creates a generic provider failure.
func NewUpstreamRequestFailedError(err error) *AppError {
	return &AppError{
		Code:      ErrCodeUpstreamRequestFailed,
		Message:   "Failed to generate recommendations. Please try again.",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// NewEmptyCompletionError creates an error for a completion with no text content.
func NewEmptyCompletionError() *AppError {
	return &AppError{
		Code:      ErrCodeEmptyCompletion,
		Message:   "Failed to generate recommendations. Please try again.",
		Details:   "empty response from OpenAI",
		Timestamp: time.Now().UTC(),
	}
}

// NewMalformedCompletionError creates an error for model output that is not
// valid JSON after normalization.
func NewMalformedCompletionError(err error) *AppError {
	return &AppError{
		Code:      ErrCodeMalformedCompletion,
		Message:   "Failed to generate recommendations. Please try again.",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// NewNoValidRecommendationsError creates an error for a parsed array in which
// no element survived field filtering.
func NewNoValidRecommendationsError() *AppError {
	return &AppError{
		Code:      ErrCodeNoValidRecommendations,
		Message:   "Failed to generate recommendations. Please try again.",
		Details:   "no valid recommendations generated",
		Timestamp: time.Now().UTC(),
	}
}

// NewWebhookNotConfiguredError creates a server-misconfiguration error for an
// absent lead-delivery webhook URL.
func NewWebhookNotConfiguredError() *AppError {
	return &AppError{
		Code:      ErrCodeWebhookNotConfigured,
		Message:   "Failed to process consultation request. Please try again.",
		Details:   "webhook URL is not configured",
		Timestamp: time.Now().UTC(),
	}
}

// NewWebhookCallFailedError creates an error for a non-success response from
// the lead-delivery webhook.
func NewWebhookCallFailedError(details string) *AppError {
	return &AppError{
		Code:      ErrCodeWebhookCallFailed,
		Message:   "Failed to process consultation request. Please try again.",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// httpStatusMapping maps internal error codes to HTTP response statuses.
var httpStatusMapping = map[ErrorCode]int{
	ErrCodeInvalidRequest:         http.StatusBadRequest,
	ErrCodeValidationFailed:       http.StatusBadRequest,
	ErrCodeAPIKeyMissing:          http.StatusInternalServerError,
	ErrCodeUpstreamAuthFailed:     http.StatusUnauthorized,
	ErrCodeUpstreamQuotaExceeded:  http.StatusTooManyRequests,
	ErrCodeUpstreamRequestFailed:  http.StatusInternalServerError,
	ErrCodeEmptyCompletion:        http.StatusInternalServerError,
	ErrCodeMalformedCompletion:    http.StatusInternalServerError,
	ErrCodeNoValidRecommendations: http.StatusInternalServerError,
	ErrCodeWebhookNotConfigured:   http.StatusInternalServerError,
	ErrCodeWebhookCallFailed:      http.StatusInternalServerError,
}

// HTTPStatus returns the HTTP status for an error code. Unknown codes map to 500.
func HTTPStatus(code ErrorCode) int {
	if status, ok := httpStatusMapping[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// IsClientError reports whether the code maps to a 4xx status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatus(code)
	return status >= 400 && status < 500
}
