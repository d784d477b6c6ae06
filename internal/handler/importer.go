package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"listinggen/internal/service"
)

// ImportHandler handles bulk tabular ingestion HTTP requests
type ImportHandler struct {
	importer *service.Importer
}

// NewImportHandler creates a new import handler
func NewImportHandler(importer *service.Importer) *ImportHandler {
	return &ImportHandler{
		importer: importer,
	}
}

// Import handles POST /api/v1/import. Expects a multipart form with a "file"
// CSV part and an optional "column_map" part holding a JSON object that
// renames source headers to canonical column names.
func (h *ImportHandler) Import(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required: " + err.Error()})
		return
	}
	defer file.Close()

	columnMap := map[string]string{}
	if raw := c.PostForm("column_map"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &columnMap); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "column_map must be a JSON object: " + err.Error()})
			return
		}
	}

	resp, err := h.importer.ImportCSV(file, columnMap)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Import failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
