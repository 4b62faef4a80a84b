package utils

import (
	"fmt"
	"net/http"
)

// Patient photo uploads arrive as base64 payloads, so validation works on
// the decoded bytes directly instead of a multipart header.

// ValidateImagePayload detects the content type from the first 512 bytes of
// the decoded payload and checks it against allowedTypes
// (e.g. []string{"image/jpeg", "image/png"}). Returns the detected content
// type or an error when the payload is empty or of a disallowed type.
func ValidateImagePayload(payload []byte, allowedTypes []string) (string, error) {
	if len(payload) == 0 {
		return "", fmt.Errorf("file is empty")
	}

	probe := payload
	if len(probe) > 512 {
		probe = probe[:512]
	}
	contentType := http.DetectContentType(probe)

	for _, t := range allowedTypes {
		if t == contentType {
			return contentType, nil
		}
	}
	return "", fmt.Errorf("invalid file type: %s", contentType)
}

// GetFileExtensionFromContentType returns the appropriate file extension
// (with leading dot) for a detected content type. Returns empty string if
// the content type is not recognized.
func GetFileExtensionFromContentType(contentType string) string {
	extensionMap := map[string]string{
		"image/jpeg": ".jpg",
		"image/png":  ".png",
		"image/gif":  ".gif",
		"image/webp": ".webp",
	}

	if ext, ok := extensionMap[contentType]; ok {
		return ext
	}
	return ""
}
