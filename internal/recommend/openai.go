package recommend

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	apperrors "brighterbiz-api/internal/common/errors"
	"brighterbiz-api/internal/common/logger"
)

// CompletionClient issues one chat-completion call and returns raw text.
// Tests substitute a deterministic stub behind this interface.
type CompletionClient interface {
	Complete(ctx context.Context, system, user string, maxTokens int) (string, error)
}

// OpenAIClient is the production CompletionClient. One attempt per call,
// fixed sampling parameters, no retries.
type OpenAIClient struct {
	client      *openai.Client
	model       string
	temperature float32
	logger      logger.Logger
}

func NewOpenAIClient(apiKey, model string, temperature float64, log logger.Logger) *OpenAIClient {
	return &OpenAIClient{
		client:      openai.NewClient(apiKey),
		model:       model,
		temperature: float32(temperature),
		logger:      log.WithFields(map[string]interface{}{"component": "openai"}),
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: system,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: user,
				},
			},
			MaxTokens:   maxTokens,
			Temperature: c.temperature,
		},
	)
	if err != nil {
		appErr := classifyCompletionError(err)
		c.logger.Error("completion call failed", map[string]interface{}{
			"errorCode": string(appErr.Code),
			"error":     err.Error(),
		})
		return "", appErr
	}

	if len(resp.Choices) == 0 {
		return "", apperrors.NewEmptyCompletionError()
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", apperrors.NewEmptyCompletionError()
	}

	return content, nil
}

// classifyCompletionError translates a provider error into the internal
// taxonomy. It prefers the structured status code from the client; the
// substring heuristics below exist only as a fallback for errors that reach
// us as plain text, and this is the single place to replace them.
func classifyCompletionError(err error) *apperrors.AppError {
	var apiErr *openai.APIError
	if stderrors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized:
			return apperrors.NewUpstreamAuthError(err)
		case http.StatusTooManyRequests:
			return apperrors.NewUpstreamQuotaError(err)
		}
	}

	msg := err.Error()
	if strings.Contains(msg, "API key") {
		return apperrors.NewUpstreamAuthError(err)
	}
	if strings.Contains(msg, "quota") {
		return apperrors.NewUpstreamQuotaError(err)
	}

	return apperrors.NewUpstreamRequestFailedError(err)
}
