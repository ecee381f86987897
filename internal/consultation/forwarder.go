package consultation

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"brighterbiz-api/internal/common/config"
	apperrors "brighterbiz-api/internal/common/errors"
	"brighterbiz-api/internal/common/httpclient"
	"brighterbiz-api/internal/common/logger"
	"brighterbiz-api/internal/common/metrics"
)

// Forwarder relays a validated consultation payload to the configured
// workflow webhook. One POST per submission, no retries; a failed delivery
// means the lead is lost unless the caller resubmits.
type Forwarder struct {
	cfg    *config.Config
	client *httpclient.Client
	logger logger.Logger
}

func NewForwarder(cfg *config.Config, log logger.Logger) *Forwarder {
	return &Forwarder{
		cfg:    cfg,
		client: httpclient.NewClient(time.Duration(cfg.Webhook.TimeoutMS) * time.Millisecond),
		logger: log.WithFields(map[string]interface{}{"component": "consultation"}),
	}
}

// Forward posts the payload body verbatim to the webhook and builds an
// acknowledgment from the parsed request. The webhook URL is read from
// configuration on every call; its absence is a server misconfiguration.
func (f *Forwarder) Forward(ctx context.Context, body []byte, req *Request) (*Ack, error) {
	webhookURL := f.cfg.Webhook.URL
	if webhookURL == "" {
		f.logger.Error("webhook URL is not configured", nil)
		metrics.WebhookDeliveries.WithLabelValues("not_configured").Inc()
		return nil, apperrors.NewWebhookNotConfiguredError()
	}

	resp, err := f.client.PostJSON(ctx, webhookURL, body)
	if err != nil {
		f.logger.Error("webhook call failed", map[string]interface{}{
			"error": err.Error(),
		})
		metrics.WebhookDeliveries.WithLabelValues("error").Inc()
		return nil, apperrors.NewWebhookCallFailedError(err.Error())
	}
	defer resp.Body.Close()

	// The webhook body is read for diagnostics but not required to conform
	// to any schema.
	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		f.logger.Error("webhook returned non-success status", map[string]interface{}{
			"status":   resp.StatusCode,
			"response": string(respBody),
		})
		metrics.WebhookDeliveries.WithLabelValues("rejected").Inc()
		return nil, apperrors.NewWebhookCallFailedError(
			fmt.Sprintf("webhook failed: %d %s", resp.StatusCode, resp.Status))
	}

	metrics.WebhookDeliveries.WithLabelValues("delivered").Inc()
	f.logger.Info("lead forwarded", map[string]interface{}{
		"sessionId": req.Metadata.SessionID,
		"selected":  len(req.ProjectDetails.SelectedRecommendations),
	})

	submissionID := req.Metadata.SessionID
	if submissionID == "" {
		submissionID = uuid.NewString()
	}

	return &Ack{
		SubmissionID:            submissionID,
		Timestamp:               req.Metadata.Timestamp,
		Email:                   req.ContactInfo.Email,
		SelectedRecommendations: req.ProjectDetails.SelectedRecommendations,
	}, nil
}
