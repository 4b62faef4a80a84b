package apihandlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	surveyService "github.com/silentraja/Medskls/pkg/survey"
)

// savePendingDraft stores a wizard snapshot or the registration pre-fill
// info for the session. The payload is kept opaque, the engine alone defines
// its format.
func (h *HttpEndpoints) savePendingDraft(c *gin.Context) {
	sessionID := c.GetString("sessionID")

	var req struct {
		Key     string          `json:"key"`
		Payload json.RawMessage `json:"payload"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Payload) < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload is required"})
		return
	}

	if err := surveyService.SavePendingDraft(sessionID, req.Key, req.Payload); err != nil {
		slog.Error("failed to save pending draft", slog.String("key", req.Key), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// takePendingDraft consumes the stored snapshot. It is gone after this call,
// a resumed draft cannot be loaded twice.
func (h *HttpEndpoints) takePendingDraft(c *gin.Context) {
	sessionID := c.GetString("sessionID")

	var req struct {
		Key string `json:"key"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payload, found, err := surveyService.TakePendingDraft(sessionID, req.Key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load pending draft"})
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{"success": true, "found": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "found": true, "payload": json.RawMessage(payload)})
}

func (h *HttpEndpoints) pendingDraftExists(c *gin.Context) {
	sessionID := c.GetString("sessionID")
	key := c.Query("key")

	exists, err := surveyService.HasPendingDraft(sessionID, key)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "exists": exists})
}
