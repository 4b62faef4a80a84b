package wizardengine

import (
	"context"
	"encoding/json"

	surveyTypes "github.com/silentraja/Medskls/pkg/survey/types"
)

// DraftStore is the durable client-side store the wizard snapshots into.
// Take deletes the entry on read: a draft is single-use, restoring always
// consumes it, so at most one unconsumed draft exists at any time.
type DraftStore interface {
	Save(ctx context.Context, key string, data []byte) error
	Take(ctx context.Context, key string) (data []byte, found bool, err error)
	Exists(ctx context.Context, key string) (bool, error)
}

// buildDraft snapshots the complete wizard state into the stored draft
// shape. GroupedQuestions are written for compatibility with the stored
// format; restore regroups from the raw rows instead of trusting them.
func buildDraft(
	personalInfo surveyTypes.PersonalInfo,
	rows []surveyTypes.QuestionRow,
	grouped *GroupedQuestions,
	store *AnswerStore,
	media *MediaController,
	cursor Cursor,
) surveyTypes.Draft {
	answers, specifyTexts, consents := store.Snapshot()
	paths, previews := media.Snapshot()

	return surveyTypes.Draft{
		FormData: surveyTypes.FormData{
			PersonalInfo: personalInfo,
			Answers:      answers,
			Consents:     consents,
		},
		SpecifyTexts:     specifyTexts,
		ImagePaths:       paths,
		CapturedImages:   previews,
		Questions:        rows,
		GroupedQuestions: grouped.All(),
		CurrentStep:      cursor.Section,
		QuestionIndex:    cursor.Question,
	}
}

// saveDraft writes the full snapshot under the fixed draft key.
func saveDraft(ctx context.Context, drafts DraftStore, draft surveyTypes.Draft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return drafts.Save(ctx, surveyTypes.DraftKey, data)
}

// takeDraft loads and consumes the draft if one exists.
func takeDraft(ctx context.Context, drafts DraftStore) (surveyTypes.Draft, bool, error) {
	data, found, err := drafts.Take(ctx, surveyTypes.DraftKey)
	if err != nil || !found {
		return surveyTypes.Draft{}, false, err
	}
	var draft surveyTypes.Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		// a corrupt draft is already consumed at this point; start fresh
		return surveyTypes.Draft{}, false, err
	}
	return draft, true, nil
}

// savePersonalInfo writes the narrow pre-fill channel for the registration
// form. Written unconditionally on the detour; the full draft supersedes it.
func savePersonalInfo(ctx context.Context, drafts DraftStore, info surveyTypes.PersonalInfo) error {
	data, err := json.Marshal(info)
	if err != nil {
		return err
	}
	return drafts.Save(ctx, surveyTypes.PersonalInfoKey, data)
}
