package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"listinggen/internal/model"
	"listinggen/internal/service"
)

// apiKeyHeader carries the user-supplied completion credential. It is read
// per request and never persisted.
const apiKeyHeader = "X-Api-Key"

// GenerateHandler handles generation and enhancement HTTP requests
type GenerateHandler struct {
	sessions *service.SessionService
	client   service.CompletionClient
}

// NewGenerateHandler creates a new generation handler
func NewGenerateHandler(sessions *service.SessionService, client service.CompletionClient) *GenerateHandler {
	return &GenerateHandler{
		sessions: sessions,
		client:   client,
	}
}

// Generate handles POST /api/v1/sessions/:id/generate
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req model.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.Record == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "record is required"})
		return
	}

	resp, err := h.sessions.Generate(c.Request.Context(), c.Param("id"), req.Record, c.GetHeader(apiKeyHeader))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Regenerate handles POST /api/v1/sessions/:id/regenerate
func (h *GenerateHandler) Regenerate(c *gin.Context) {
	var req model.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.sessions.Regenerate(c.Request.Context(), c.Param("id"), req.Record, c.GetHeader(apiKeyHeader))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Enhance handles POST /api/v1/sessions/:id/enhance. Enhancement has no
// degraded mode: every failure is surfaced as an actionable message and the
// session stays unchanged.
func (h *GenerateHandler) Enhance(c *gin.Context) {
	var req model.EnhanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.sessions.Enhance(c.Request.Context(), c.Param("id"), req.Style, req.Length, c.GetHeader(apiKeyHeader))
	if err != nil {
		status, message := enhanceFailure(err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateEnhanced handles PUT /api/v1/sessions/:id/enhanced
func (h *GenerateHandler) UpdateEnhanced(c *gin.Context) {
	var req model.EnhancedUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	snap, err := h.sessions.UpdateEnhanced(c.Param("id"), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, snap)
}

// TestConnection handles POST /api/v1/connection/test
func (h *GenerateHandler) TestConnection(c *gin.Context) {
	err := h.client.Ping(c.Request.Context(), c.GetHeader(apiKeyHeader))
	if err != nil {
		_, message := enhanceFailure(err)
		c.JSON(http.StatusOK, model.ConnectionTestResponse{
			Connected: false,
			Message:   message,
		})
		return
	}

	c.JSON(http.StatusOK, model.ConnectionTestResponse{
		Connected: true,
		Message:   "API connection successful",
	})
}

// enhanceFailure maps the failure taxonomy to user-facing messages.
func enhanceFailure(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrNotEnabled):
		return http.StatusBadRequest, "No API key supplied. Provide one in the X-Api-Key header."
	case errors.Is(err, service.ErrAuthFailed):
		return http.StatusUnauthorized, "The API key was rejected. Check the credential and try again."
	case errors.Is(err, service.ErrRateLimited):
		return http.StatusTooManyRequests, "The completion service is rate limiting requests. Please retry shortly."
	case errors.Is(err, service.ErrTimeout):
		return http.StatusGatewayTimeout, "The completion service did not respond in time. Please retry."
	case errors.Is(err, service.ErrInvalidFormat):
		return http.StatusBadGateway, "The completion service returned an unusable response. Please retry."
	default:
		return http.StatusBadGateway, "Enhancement failed: " + err.Error()
	}
}
