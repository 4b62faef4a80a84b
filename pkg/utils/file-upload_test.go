package utils

import "testing"

// minimal valid PNG header
var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

func TestValidateImagePayload(t *testing.T) {
	t.Run("accepts allowed image type", func(t *testing.T) {
		ct, err := ValidateImagePayload(pngHeader, []string{"image/png", "image/jpeg"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ct != "image/png" {
			t.Errorf("unexpected content type: %s", ct)
		}
	})

	t.Run("rejects disallowed type", func(t *testing.T) {
		if _, err := ValidateImagePayload([]byte("plain text payload"), []string{"image/png"}); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("rejects empty payload", func(t *testing.T) {
		if _, err := ValidateImagePayload(nil, []string{"image/png"}); err == nil {
			t.Error("expected error")
		}
	})
}

func TestGetFileExtensionFromContentType(t *testing.T) {
	if ext := GetFileExtensionFromContentType("image/jpeg"); ext != ".jpg" {
		t.Errorf("unexpected extension: %s", ext)
	}
	if ext := GetFileExtensionFromContentType("application/pdf"); ext != "" {
		t.Errorf("unexpected extension: %s", ext)
	}
}
