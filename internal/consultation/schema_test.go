package consultation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brighterbiz-api/internal/common/validation"
)

func validSubmission() map[string]interface{} {
	payload := `{
		"contactInfo": {
			"firstName": "Jane",
			"lastName": "Doe",
			"email": "jane@example.com",
			"phone": "+1 555 123 4567",
			"preferredContactMethod": "email"
		},
		"businessInfo": {
			"businessName": "Bright Bakery",
			"website": "https://brightbakery.example.com",
			"businessDescription": "Artisan bakery with delivery",
			"companySize": "2-5",
			"industry": "Food"
		},
		"projectDetails": {
			"selectedRecommendations": ["AI Chatbot for Orders"],
			"timeline": "1-3 months",
			"budget": "$100-250"
		},
		"metadata": {
			"source": "brighterbiz-funnel",
			"timestamp": "2025-06-01T12:00:00Z",
			"sessionId": "sess-123",
			"originalRecommendations": [{"id": 1, "title": "AI Chatbot for Orders"}]
		}
	}`
	var input map[string]interface{}
	if err := json.Unmarshal([]byte(payload), &input); err != nil {
		panic(err)
	}
	return input
}

func TestRequestSchema_ValidSubmission(t *testing.T) {
	result := validation.ValidateInput(validSubmission(), RequestSchema())

	assert.True(t, result.Valid, "errors: %v", result.GetErrorMessages())
}

func TestRequestSchema_MissingSection(t *testing.T) {
	input := validSubmission()
	delete(input, "metadata")

	result := validation.ValidateInput(input, RequestSchema())

	assert.False(t, result.Valid)
	assert.True(t, result.HasErrors("metadata"))
}

func TestRequestSchema_InvalidEmail(t *testing.T) {
	input := validSubmission()
	input["contactInfo"].(map[string]interface{})["email"] = "jane-at-example"

	result := validation.ValidateInput(input, RequestSchema())

	require.False(t, result.Valid)
	assert.True(t, result.HasErrors("contactInfo"))
	assert.Equal(t, "contactInfo.email", result.Errors[0].Field)
}

func TestRequestSchema_EmptySelectedRecommendations(t *testing.T) {
	input := validSubmission()
	input["projectDetails"].(map[string]interface{})["selectedRecommendations"] = []interface{}{}

	result := validation.ValidateInput(input, RequestSchema())

	require.False(t, result.Valid)
	assert.Equal(t, "projectDetails.selectedRecommendations", result.Errors[0].Field)
	assert.Equal(t, "MIN_ITEMS_VIOLATION", result.Errors[0].Code)
}

func TestRequestSchema_EmptyWebsiteAccepted(t *testing.T) {
	input := validSubmission()
	input["businessInfo"].(map[string]interface{})["website"] = ""

	result := validation.ValidateInput(input, RequestSchema())

	assert.True(t, result.Valid)
}

func TestRequestSchema_InvalidWebsite(t *testing.T) {
	input := validSubmission()
	input["businessInfo"].(map[string]interface{})["website"] = "brightbakery dot com"

	result := validation.ValidateInput(input, RequestSchema())

	assert.False(t, result.Valid)
	assert.True(t, result.HasErrors("businessInfo"))
}

func TestRequestSchema_BadContactMethod(t *testing.T) {
	input := validSubmission()
	input["contactInfo"].(map[string]interface{})["preferredContactMethod"] = "carrier pigeon"

	result := validation.ValidateInput(input, RequestSchema())

	require.False(t, result.Valid)
	assert.Equal(t, "INVALID_ENUM_VALUE", result.Errors[0].Code)
}

func TestRequestSchema_ExtraFieldsIgnored(t *testing.T) {
	input := validSubmission()
	input["utmCampaign"] = "spring-launch"
	input["contactInfo"].(map[string]interface{})["nickname"] = "JD"

	result := validation.ValidateInput(input, RequestSchema())

	assert.True(t, result.Valid)
}
