package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"route", "method", "status"},
	)

	CompletionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "openai_completion_duration_seconds",
			Help: "Duration of OpenAI chat-completion calls in seconds",
		},
		[]string{"template"},
	)

	CompletionFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "openai_completion_failures_total",
			Help: "Total number of failed OpenAI completion calls by error code",
		},
		[]string{"error_code"},
	)

	RecommendationsReturned = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendations_returned",
			Help:    "Number of recommendations returned per successful request",
			Buckets: []float64{1, 2, 3, 4, 5},
		},
		[]string{"template"},
	)

	WebhookDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_webhook_deliveries_total",
			Help: "Total number of lead webhook delivery attempts by outcome",
		},
		[]string{"outcome"},
	)
)
