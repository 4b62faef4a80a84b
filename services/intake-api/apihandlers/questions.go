package apihandlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	surveyService "github.com/silentraja/Medskls/pkg/survey"
)

// getIntakeQuestions returns the flat question/option rows the intake form
// folds into its grouped view. One row per option, ordered by display order.
func (h *HttpEndpoints) getIntakeQuestions(c *gin.Context) {
	rows, _, err := surveyService.GetIntakeQuestions()
	if err != nil {
		slog.Error("failed to load intake questions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load intake questions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
}
