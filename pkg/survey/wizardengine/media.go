package wizardengine

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"time"

	surveyTypes "github.com/silentraja/Medskls/pkg/survey/types"
)

// Upload parameters fixed by the storage layout for patient photos.
const (
	UPLOAD_SUBJECT          = "PatientImages"
	UPLOAD_DESTINATION_PATH = "Assets/PatientImages/"
)

// UploadRequest is the contract of the external upload function. Payload is
// the raw image bytes; the transport encodes them as "filename|base64".
type UploadRequest struct {
	Subject         string
	Title           string
	DestinationPath string
	Filename        string
	ContentType     string
	Payload         []byte
}

// FileUploader stores one image and returns its stored reference.
type FileUploader interface {
	Upload(ctx context.Context, req UploadRequest) (storedPath string, err error)
}

// FrameSource is the camera capability: an asynchronous, permission-gated
// resource that produces raw image frames. Release must be safe on every
// exit path, including a cancellation racing a still-pending Acquire.
type FrameSource interface {
	Acquire(ctx context.Context) error
	Frame(ctx context.Context) ([]byte, error)
	Release()
}

// MediaController manages the three named photo slots. Both acquisition
// paths (file picker and live capture) converge on uploadSlot; a slot is
// complete only once the upload returned a stored reference. Failed uploads
// leave the slot incomplete and retryable without affecting other slots.
type MediaController struct {
	uploader FileUploader
	slots    map[string]surveyTypes.MediaSlot

	// capture filenames embed a timestamp; injectable for tests
	now func() time.Time
}

func NewMediaController(uploader FileUploader) *MediaController {
	m := &MediaController{
		uploader: uploader,
		slots:    map[string]surveyTypes.MediaSlot{},
		now:      time.Now,
	}
	for _, label := range surveyTypes.MediaSlotLabels {
		m.slots[label] = surveyTypes.MediaSlot{}
	}
	return m
}

// UploadFile is the file picker path: read the selected file fully, then
// upload it under the slot's title.
func (m *MediaController) UploadFile(ctx context.Context, label, filename, contentType string, r io.Reader) error {
	payload, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read selected file: %w", err)
	}
	return m.uploadSlot(ctx, label, filename, contentType, payload)
}

// CaptureFromCamera is the live capture path: acquire the camera, grab one
// frame, upload it. The camera is released on every exit, success, error or
// cancellation included, so no track leaks across attempts.
func (m *MediaController) CaptureFromCamera(ctx context.Context, label string, cam FrameSource) error {
	defer cam.Release()

	if err := cam.Acquire(ctx); err != nil {
		return fmt.Errorf("failed to access camera: %w", err)
	}

	frame, err := cam.Frame(ctx)
	if err != nil {
		return fmt.Errorf("failed to capture frame: %w", err)
	}

	filename := fmt.Sprintf("patient_%s_%d.png",
		strings.ReplaceAll(label, " ", "_"),
		m.now().UnixMilli(),
	)
	return m.uploadSlot(ctx, label, filename, "image/png", frame)
}

func (m *MediaController) uploadSlot(ctx context.Context, label, filename, contentType string, payload []byte) error {
	if _, ok := m.slots[label]; !ok {
		return fmt.Errorf("unknown media slot: %s", label)
	}

	storedPath, err := m.uploader.Upload(ctx, UploadRequest{
		Subject:         UPLOAD_SUBJECT,
		Title:           strings.ReplaceAll(label, " ", ""),
		DestinationPath: UPLOAD_DESTINATION_PATH,
		Filename:        filename,
		ContentType:     contentType,
		Payload:         payload,
	})
	if err != nil {
		// slot stays incomplete, capture may be retried
		return err
	}

	m.slots[label] = surveyTypes.MediaSlot{
		Preview:    base64.StdEncoding.EncodeToString(payload),
		StoredPath: storedPath,
	}
	return nil
}

// AllComplete reports whether every slot holds a stored reference.
func (m *MediaController) AllComplete() bool {
	for _, label := range surveyTypes.MediaSlotLabels {
		if !m.slots[label].Complete() {
			return false
		}
	}
	return true
}

func (m *MediaController) Slot(label string) surveyTypes.MediaSlot {
	return m.slots[label]
}

// StoredPath returns the slot's stored reference or nil when incomplete,
// matching the nullable side fields of the response row.
func (m *MediaController) StoredPath(label string) *string {
	slot := m.slots[label]
	if slot.StoredPath == "" {
		return nil
	}
	path := slot.StoredPath
	return &path
}

// Snapshot returns the per-slot stored paths and previews for drafts.
func (m *MediaController) Snapshot() (paths map[string]string, previews map[string]string) {
	paths = map[string]string{}
	previews = map[string]string{}
	for label, slot := range m.slots {
		paths[label] = slot.StoredPath
		previews[label] = slot.Preview
	}
	return paths, previews
}

// Restore replaces the slot states from a draft snapshot.
func (m *MediaController) Restore(paths map[string]string, previews map[string]string) {
	for _, label := range surveyTypes.MediaSlotLabels {
		m.slots[label] = surveyTypes.MediaSlot{
			Preview:    previews[label],
			StoredPath: paths[label],
		}
	}
}

// Reset clears all slots.
func (m *MediaController) Reset() {
	for _, label := range surveyTypes.MediaSlotLabels {
		m.slots[label] = surveyTypes.MediaSlot{}
	}
}
