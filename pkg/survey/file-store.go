package survey

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	intakedb "github.com/silentraja/Medskls/pkg/db/intake"
	"github.com/silentraja/Medskls/pkg/utils"
)

var allowedImageTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
}

// StorePatientImage validates and writes one uploaded photo below the
// filestore root and records it in the DB. The returned path is relative to
// the filestore root and is what the submission rows reference.
func StorePatientImage(
	subjectName string,
	title string,
	destinationPath string,
	fileName string,
	payload []byte,
) (string, error) {
	contentType, err := utils.ValidateImagePayload(payload, allowedImageTypes)
	if err != nil {
		return "", err
	}

	ext := utils.GetFileExtensionFromContentType(contentType)
	storedName := uuid.NewString() + ext

	relativeDir := filepath.Clean(strings.TrimSuffix(destinationPath, "/"))
	if relativeDir == "." || strings.HasPrefix(relativeDir, "..") || filepath.IsAbs(relativeDir) {
		return "", fmt.Errorf("invalid destination path: %s", destinationPath)
	}

	targetDir := filepath.Join(filestorePath, relativeDir)
	if err := os.MkdirAll(targetDir, os.ModePerm); err != nil {
		slog.Error("failed to prepare upload folder", slog.String("path", targetDir), slog.String("error", err.Error()))
		return "", err
	}

	targetFile := filepath.Join(targetDir, storedName)
	if err := os.WriteFile(targetFile, payload, 0644); err != nil {
		slog.Error("failed to write uploaded file", slog.String("path", targetFile), slog.String("error", err.Error()))
		return "", err
	}

	relativePath := filepath.ToSlash(filepath.Join(relativeDir, storedName))
	_, err = intakeDBService.SaveFileInfo(intakedb.PatientFileInfo{
		SubjectName: subjectName,
		Title:       title,
		FileName:    fileName,
		FileType:    contentType,
		Path:        relativePath,
		Size:        int64(len(payload)),
	})
	if err != nil {
		// file already on disk, record failure must not lose the upload
		slog.Error("failed to record uploaded file info", slog.String("path", relativePath), slog.String("error", err.Error()))
	}

	return relativePath, nil
}
