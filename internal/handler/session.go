package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"listinggen/internal/service"
)

// SessionHandler handles session lifecycle HTTP requests
type SessionHandler struct {
	sessions *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
	}
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(c *gin.Context) {
	s := h.sessions.Store().Create()
	c.JSON(http.StatusCreated, gin.H{"session_id": s.ID})
}

// Get handles GET /api/v1/sessions/:id
func (h *SessionHandler) Get(c *gin.Context) {
	s, err := h.sessions.Store().Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.Snapshot())
}

// Clear handles DELETE /api/v1/sessions/:id — back to the empty state.
func (h *SessionHandler) Clear(c *gin.Context) {
	if err := h.sessions.Clear(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Session cleared"})
}
