package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected int
	}{
		{ErrCodeInvalidRequest, http.StatusBadRequest},
		{ErrCodeValidationFailed, http.StatusBadRequest},
		{ErrCodeAPIKeyMissing, http.StatusInternalServerError},
		{ErrCodeUpstreamAuthFailed, http.StatusUnauthorized},
		{ErrCodeUpstreamQuotaExceeded, http.StatusTooManyRequests},
		{ErrCodeUpstreamRequestFailed, http.StatusInternalServerError},
		{ErrCodeEmptyCompletion, http.StatusInternalServerError},
		{ErrCodeMalformedCompletion, http.StatusInternalServerError},
		{ErrCodeNoValidRecommendations, http.StatusInternalServerError},
		{ErrCodeWebhookNotConfigured, http.StatusInternalServerError},
		{ErrCodeWebhookCallFailed, http.StatusInternalServerError},
		{ErrorCode("SOMETHING_NEW"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, HTTPStatus(tt.code), string(tt.code))
	}
}

func TestIsClientError(t *testing.T) {
	assert.True(t, IsClientError(ErrCodeInvalidRequest))
	assert.True(t, IsClientError(ErrCodeUpstreamAuthFailed))
	assert.False(t, IsClientError(ErrCodeWebhookCallFailed))
}

func TestAppErrorMessagesAreClientSafe(t *testing.T) {
	appErr := NewWebhookCallFailedError("webhook failed: 503 Service Unavailable")

	assert.Equal(t, "Failed to process consultation request. Please try again.", appErr.Message)
	assert.Contains(t, appErr.Details, "503")
	assert.NotContains(t, appErr.Message, "503")
	assert.False(t, appErr.Timestamp.IsZero())
}

func TestAppErrorError(t *testing.T) {
	appErr := NewInvalidRequestError("Business description is required")

	assert.Equal(t, "AppError[INVALID_REQUEST]: Business description is required", appErr.Error())
}
