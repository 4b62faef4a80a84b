package apihandlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	jwthandling "github.com/silentraja/Medskls/pkg/jwt-handling"
	surveyService "github.com/silentraja/Medskls/pkg/survey"
	surveyTypes "github.com/silentraja/Medskls/pkg/survey/types"
	"github.com/silentraja/Medskls/pkg/survey/wizardengine"
)

// submitPatientApplication persists one completed intake response set and
// notifies the clinician roles. The user id comes from the JWT when one is
// attached, otherwise from the payload (the id the client restored after the
// registration detour). Notification failure never fails the submission.
func (h *HttpEndpoints) submitPatientApplication(c *gin.Context) {
	var req struct {
		UserID      int64                     `json:"UserId"`
		PatientName string                    `json:"PatientName"`
		Responses   []surveyTypes.ResponseRow `json:"Responses"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := req.UserID
	if tokenValue, exists := c.Get("validatedToken"); exists {
		if claims, ok := tokenValue.(*jwthandling.PatientUserClaims); ok && claims.UserID() > 0 {
			userID = claims.UserID()
		}
	}
	if userID < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user id required"})
		return
	}

	if len(req.Responses) < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no responses in payload"})
		return
	}

	saved, err := surveyService.SaveApplication(surveyTypes.Submission{
		UserID:    userID,
		Responses: req.Responses,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save application"})
		return
	}

	patientName := req.PatientName
	if patientName == "" {
		patientName = "New Patient"
	}
	subject, body := wizardengine.NewPatientNotificationTemplate(patientName)
	sentCount, err := h.notifier.NotifySubmission(c.Request.Context(), wizardengine.Notification{
		RecipientRoles: wizardengine.NotificationRecipientRoles,
		Subject:        subject,
		Body:           body,
		PatientName:    patientName,
	})

	message := "Thank you for your submission! Our team will review your information."
	if err != nil {
		slog.Warn("post-submission notification failed", slog.String("applicationID", saved.ID), slog.String("error", err.Error()))
	} else {
		message = fmt.Sprintf("Thank you for your submission! %d doctor(s) notified.", sentCount)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}
