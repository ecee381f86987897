package server

import (
	stderrors "errors"
	"io"
	"net/http"

	"encoding/json"

	"github.com/gin-gonic/gin"

	"brighterbiz-api/internal/common/config"
	apperrors "brighterbiz-api/internal/common/errors"
	"brighterbiz-api/internal/common/logger"
	"brighterbiz-api/internal/common/validation"
	"brighterbiz-api/internal/consultation"
	"brighterbiz-api/internal/recommend"
)

// Handler holds the two API endpoints. All errors are mapped to HTTP
// statuses here; diagnostic detail stays in the logs.
type Handler struct {
	cfg         *config.Config
	logger      logger.Logger
	recommender *recommend.Service
	forwarder   *consultation.Forwarder
}

func NewHandler(cfg *config.Config, log logger.Logger, recommender *recommend.Service, forwarder *consultation.Forwarder) *Handler {
	return &Handler{
		cfg:         cfg,
		logger:      log.WithFields(map[string]interface{}{"component": "handlers"}),
		recommender: recommender,
		forwarder:   forwarder,
	}
}

// GenerateRecommendations handles POST /api/recommendations.
func (h *Handler) GenerateRecommendations(c *gin.Context) {
	var req recommend.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Business description is required"})
		return
	}

	resp, err := h.recommender.Generate(c.Request.Context(), &req)
	if err != nil {
		status, message := h.mapError(err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SubmitConsultation handles POST /api/consultation-request.
func (h *Handler) SubmitConsultation(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	result := validation.ValidateInput(raw, consultation.RequestSchema())
	if !result.Valid {
		h.logger.Warn("consultation request failed validation", map[string]interface{}{
			"errors": result.GetErrorMessages(),
		})
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": result.Errors,
		})
		return
	}

	var req consultation.Request
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	ack, err := h.forwarder.Forward(c.Request.Context(), body, &req)
	if err != nil {
		status, message := h.mapError(err)
		c.JSON(status, gin.H{
			"error":   "Internal server error",
			"message": message,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Consultation request submitted successfully",
		"data":    ack,
	})
}

// mapError translates an error into an HTTP status and a client-safe
// message. Anything that is not an AppError becomes a generic 500.
func (h *Handler) mapError(err error) (int, string) {
	var appErr *apperrors.AppError
	if stderrors.As(err, &appErr) {
		if appErr.Details != "" {
			h.logger.Error("request failed", map[string]interface{}{
				"errorCode": string(appErr.Code),
				"details":   appErr.Details,
			})
		}
		return apperrors.HTTPStatus(appErr.Code), appErr.Message
	}

	h.logger.WithError(err).Error("unexpected error", nil)
	return http.StatusInternalServerError, "Internal server error"
}
