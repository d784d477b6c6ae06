package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"listinggen/internal/model"
	"listinggen/internal/service"
)

// ExportHandler handles download-artifact HTTP requests
type ExportHandler struct {
	sessions *service.SessionService
	exporter *service.Exporter
}

// NewExportHandler creates a new export handler
func NewExportHandler(sessions *service.SessionService, exporter *service.Exporter) *ExportHandler {
	return &ExportHandler{
		sessions: sessions,
		exporter: exporter,
	}
}

// Export handles POST /api/v1/sessions/:id/export
func (h *ExportHandler) Export(c *gin.Context) {
	var req model.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.Format == "" {
		req.Format = service.FormatJSON
	}

	s, err := h.sessions.Store().Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	artifact, err := h.exporter.Export(s, req.Format, req.Edited)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+artifact.Filename+`"`)
	c.Data(http.StatusOK, artifact.ContentType, artifact.Body)
}
