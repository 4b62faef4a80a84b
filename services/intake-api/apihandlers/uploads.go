package apihandlers

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	surveyService "github.com/silentraja/Medskls/pkg/survey"
)

type uploadAssignment struct {
	// Image carries "filename|base64payload"
	Image    string `json:"Image"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
}

// uploadPatientImages accepts the photo upload contract of the intake form:
// subject, title, destination path plus a JSON encoded assignment list where
// each entry carries the file as "filename|base64". Returns the stored
// relative paths in assignment order.
func (h *HttpEndpoints) uploadPatientImages(c *gin.Context) {
	var req struct {
		SubjectName     string `json:"SubjectName"`
		AssignmentTitle string `json:"AssignmentTitle"`
		Path            string `json:"Path"`
		Assignments     string `json:"Assignments"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.SubjectName == "" || req.Path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "SubjectName and Path are required"})
		return
	}

	var assignments []uploadAssignment
	if err := json.Unmarshal([]byte(req.Assignments), &assignments); err != nil {
		slog.Error("failed to parse assignments", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignments payload"})
		return
	}
	if len(assignments) < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no assignments in payload"})
		return
	}

	storedPaths := []string{}
	for _, assignment := range assignments {
		fileName, payload, err := decodeAssignmentImage(assignment)
		if err != nil {
			slog.Error("failed to decode uploaded image", slog.String("fileName", assignment.FileName), slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		storedPath, err := surveyService.StorePatientImage(
			req.SubjectName,
			req.AssignmentTitle,
			req.Path,
			fileName,
			payload,
		)
		if err != nil {
			slog.Error("failed to store uploaded image", slog.String("fileName", fileName), slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		storedPaths = append(storedPaths, storedPath)
	}

	c.JSON(http.StatusOK, gin.H{"error": "", "data": storedPaths})
}

func decodeAssignmentImage(assignment uploadAssignment) (fileName string, payload []byte, err error) {
	fileName = assignment.FileName

	encoded := assignment.Image
	if name, data, found := strings.Cut(assignment.Image, "|"); found {
		if fileName == "" {
			fileName = name
		}
		encoded = data
	}

	// data URL prefix may still be attached to the base64 part
	if _, data, found := strings.Cut(encoded, ";base64,"); found {
		encoded = data
	}

	payload, err = base64.StdEncoding.DecodeString(encoded)
	return fileName, payload, err
}
