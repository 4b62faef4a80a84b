package survey

import (
	"fmt"
	"log/slog"

	intakedb "github.com/silentraja/Medskls/pkg/db/intake"
	surveyTypes "github.com/silentraja/Medskls/pkg/survey/types"
)

// Only the two known storage channels are accepted, the full snapshot and
// the registration pre-fill info.
func isAllowedDraftKey(key string) bool {
	return key == surveyTypes.DraftKey || key == surveyTypes.PersonalInfoKey
}

func SavePendingDraft(sessionID string, key string, payload []byte) error {
	if !isAllowedDraftKey(key) {
		return fmt.Errorf("unknown draft key: %s", key)
	}
	return intakeDBService.SaveDraft(sessionID, key, payload)
}

// TakePendingDraft consumes the stored snapshot, it cannot be read twice.
func TakePendingDraft(sessionID string, key string) (payload []byte, found bool, err error) {
	if !isAllowedDraftKey(key) {
		return nil, false, fmt.Errorf("unknown draft key: %s", key)
	}
	payload, err = intakeDBService.TakeDraft(sessionID, key)
	if err != nil {
		if intakedb.IsErrNoDraft(err) {
			return nil, false, nil
		}
		slog.Error("failed to take pending draft", slog.String("key", key), slog.String("error", err.Error()))
		return nil, false, err
	}
	return payload, true, nil
}

func HasPendingDraft(sessionID string, key string) (bool, error) {
	if !isAllowedDraftKey(key) {
		return false, fmt.Errorf("unknown draft key: %s", key)
	}
	return intakeDBService.DraftExists(sessionID, key)
}
