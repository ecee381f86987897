package recommend

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"brighterbiz-api/internal/common/config"
	apperrors "brighterbiz-api/internal/common/errors"
	"brighterbiz-api/internal/common/logger"
	"brighterbiz-api/internal/common/metrics"
)

// Service runs the recommendation pipeline: build prompt, call the model
// once, normalize the output, validate and cap. No caching and no retries;
// every request re-invokes the model.
type Service struct {
	cfg         *config.Config
	logger      logger.Logger
	completions CompletionClient // nil means build a live client per request
}

func NewService(cfg *config.Config, log logger.Logger) *Service {
	return &Service{
		cfg:    cfg,
		logger: log.WithFields(map[string]interface{}{"component": "recommend"}),
	}
}

// NewServiceWithClient injects a CompletionClient, bypassing the credential
// check. Used by tests to substitute a deterministic stub.
func NewServiceWithClient(cfg *config.Config, log logger.Logger, client CompletionClient) *Service {
	s := NewService(cfg, log)
	s.completions = client
	return s
}

// Generate runs one request through the pipeline.
func (s *Service) Generate(ctx context.Context, req *Request) (*Response, error) {
	description := strings.TrimSpace(req.BusinessDescription)
	if description == "" {
		return nil, apperrors.NewInvalidRequestError("Business description is required")
	}

	tmpl := TemplateBasic
	var profile *BusinessProfile
	if req.Structured && req.FormData != nil {
		tmpl = TemplateAdvanced
		profile = req.FormData
	}

	client := s.completions
	if client == nil {
		// Credential is read per request; absence never touches the network.
		if s.cfg.OpenAI.APIKey == "" {
			return nil, apperrors.NewAPIKeyMissingError()
		}
		client = NewOpenAIClient(s.cfg.OpenAI.APIKey, s.cfg.OpenAI.Model, s.cfg.OpenAI.Temperature, s.logger)
	}

	system, user := tmpl.Build(description, profile)

	start := time.Now()
	raw, err := client.Complete(ctx, system, user, tmpl.MaxTokens)
	metrics.CompletionDuration.WithLabelValues(tmpl.Name).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.CompletionFailures.WithLabelValues(errorCodeOf(err)).Inc()
		return nil, err
	}

	items, err := ParseRecommendationArray(NormalizeModelOutput(raw))
	if err != nil {
		s.logger.Error("failed to parse model output", map[string]interface{}{
			"template": tmpl.Name,
			"rawText":  raw,
		})
		metrics.CompletionFailures.WithLabelValues(string(apperrors.ErrCodeMalformedCompletion)).Inc()
		return nil, err
	}

	recs, err := ValidateAndCap(items, tmpl)
	if err != nil {
		s.logger.Error("no valid recommendations in model output", map[string]interface{}{
			"template":    tmpl.Name,
			"parsedCount": len(items),
			"rawText":     raw,
		})
		metrics.CompletionFailures.WithLabelValues(string(apperrors.ErrCodeNoValidRecommendations)).Inc()
		return nil, err
	}

	s.checkPhoneRule(description, profile, recs)

	metrics.RecommendationsReturned.WithLabelValues(tmpl.Name).Observe(float64(len(recs)))
	s.logger.Info("recommendations generated", map[string]interface{}{
		"template": tmpl.Name,
		"count":    len(recs),
	})

	return &Response{
		Recommendations:     recs,
		BusinessDescription: description,
	}, nil
}

var phoneKeywords = []string{"phone", "call", "appointment", "booking", "reservation"}

// checkPhoneRule is a log-only advisory check for the prompt-level rule that
// phone-based businesses should receive a Customer Service recommendation.
// It never changes the response.
func (s *Service) checkPhoneRule(description string, profile *BusinessProfile, recs []Recommendation) {
	haystack := strings.ToLower(description)
	if profile != nil {
		haystack += " " + strings.ToLower(strings.Join(profile.CurrentChallenges, " "))
		haystack += " " + strings.ToLower(strings.Join(profile.FocusAreas, " "))
	}

	phoneBased := false
	for _, kw := range phoneKeywords {
		if strings.Contains(haystack, kw) {
			phoneBased = true
			break
		}
	}
	if !phoneBased {
		return
	}

	for _, rec := range recs {
		if rec.Category == "Customer Service" {
			return
		}
	}

	s.logger.Warn("phone-based business without a Customer Service recommendation", map[string]interface{}{
		"count": len(recs),
	})
}

func errorCodeOf(err error) string {
	var appErr *apperrors.AppError
	if stderrors.As(err, &appErr) {
		return string(appErr.Code)
	}
	return string(apperrors.ErrCodeUpstreamRequestFailed)
}
