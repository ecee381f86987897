package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brighterbiz-api/internal/common/config"
	"brighterbiz-api/internal/common/logger"
	"brighterbiz-api/internal/consultation"
	"brighterbiz-api/internal/recommend"
)

type stubCompletionClient struct {
	output string
	err    error
}

func (s *stubCompletionClient) Complete(context.Context, string, string, int) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.output, nil
}

const stubCompletion = `[
	{"title": "AI Chatbot for Orders", "description": "Answer order questions automatically.",
	 "category": "Customer Service", "difficulty": "Easy",
	 "estimatedCost": "$30-80/month", "timeToImplement": "1-2 weeks"},
	{"title": "Social Media Scheduler", "description": "Generate posts about daily specials.",
	 "category": "Marketing", "difficulty": "Easy",
	 "estimatedCost": "$20-50/month", "timeToImplement": "1-2 weeks"},
	{"title": "Inventory Forecasting", "description": "Predict ingredient demand.",
	 "category": "Operations", "difficulty": "Medium",
	 "estimatedCost": "$50-150/month", "timeToImplement": "2-4 weeks"}
]`

func newTestRouter(t *testing.T, stub recommend.CompletionClient, webhookURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.OpenAI.APIKey = "sk-test"
	cfg.Webhook.URL = webhookURL
	cfg.Webhook.TimeoutMS = 2000

	log := logger.NewNoOpLogger()
	handler := NewHandler(cfg, log,
		recommend.NewServiceWithClient(cfg, log, stub),
		consultation.NewForwarder(cfg, log),
	)
	return NewRouter(cfg, log, handler)
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRecommendationsEndpoint_OK(t *testing.T) {
	router := newTestRouter(t, &stubCompletionClient{output: stubCompletion}, "")

	w := doJSON(router, http.MethodPost, "/api/recommendations",
		`{"businessDescription": "We run a small bakery"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp recommend.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Recommendations, 3)
	assert.Equal(t, 1, resp.Recommendations[0].ID)
	assert.Equal(t, "We run a small bakery", resp.BusinessDescription)
}

func TestRecommendationsEndpoint_MissingDescription(t *testing.T) {
	router := newTestRouter(t, &stubCompletionClient{output: stubCompletion}, "")

	tests := []struct {
		name string
		body string
	}{
		{name: "empty object", body: `{}`},
		{name: "blank description", body: `{"businessDescription": "   "}`},
		{name: "not json", body: `businessDescription=bakery`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodPost, "/api/recommendations", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "Business description is required")
		})
	}
}

func TestRecommendationsEndpoint_UpstreamFailure(t *testing.T) {
	router := newTestRouter(t, &stubCompletionClient{output: "not json at all"}, "")

	w := doJSON(router, http.MethodPost, "/api/recommendations",
		`{"businessDescription": "bakery"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to generate recommendations")
}

func TestRecommendationsEndpoint_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(t, &stubCompletionClient{output: stubCompletion}, "")

	w := doJSON(router, http.MethodGet, "/api/recommendations", "")

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Contains(t, w.Body.String(), "Method not allowed")
}

func consultationBody() string {
	return `{
		"contactInfo": {"firstName": "Jane", "lastName": "Doe", "email": "jane@example.com", "preferredContactMethod": "email"},
		"businessInfo": {"businessDescription": "Artisan bakery"},
		"projectDetails": {"selectedRecommendations": ["AI Chatbot for Orders"]},
		"metadata": {"source": "funnel", "timestamp": "2025-06-01T12:00:00Z", "sessionId": "sess-123",
			"originalRecommendations": [{"id": 1, "title": "AI Chatbot for Orders"}]}
	}`
}

func TestConsultationEndpoint_OK(t *testing.T) {
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer webhook.Close()

	router := newTestRouter(t, &stubCompletionClient{}, webhook.URL)

	w := doJSON(router, http.MethodPost, "/api/consultation-request", consultationBody())

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool             `json:"success"`
		Message string           `json:"message"`
		Data    consultation.Ack `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Consultation request submitted successfully", resp.Message)
	assert.Equal(t, "sess-123", resp.Data.SubmissionID)
	assert.Equal(t, "jane@example.com", resp.Data.Email)
}

func TestConsultationEndpoint_ValidationFailure(t *testing.T) {
	router := newTestRouter(t, &stubCompletionClient{}, "http://unused.invalid")

	body := strings.Replace(consultationBody(), "jane@example.com", "not-an-email", 1)
	w := doJSON(router, http.MethodPost, "/api/consultation-request", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request data")
	assert.Contains(t, w.Body.String(), "contactInfo.email")
}

func TestConsultationEndpoint_MalformedJSON(t *testing.T) {
	router := newTestRouter(t, &stubCompletionClient{}, "http://unused.invalid")

	w := doJSON(router, http.MethodPost, "/api/consultation-request", `{"contactInfo":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request data")
}

func TestConsultationEndpoint_WebhookDown(t *testing.T) {
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer webhook.Close()

	router := newTestRouter(t, &stubCompletionClient{}, webhook.URL)

	w := doJSON(router, http.MethodPost, "/api/consultation-request", consultationBody())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
	assert.Contains(t, w.Body.String(), "Failed to process consultation request")
}

func TestConsultationEndpoint_NotConfigured(t *testing.T) {
	router := newTestRouter(t, &stubCompletionClient{}, "")

	w := doJSON(router, http.MethodPost, "/api/consultation-request", consultationBody())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to process consultation request")
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, &stubCompletionClient{}, "")

	w := doJSON(router, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t, &stubCompletionClient{}, "")

	w := doJSON(router, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, w.Code)
}
