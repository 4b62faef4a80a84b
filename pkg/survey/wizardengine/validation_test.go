package wizardengine

import (
	"context"
	"testing"

	surveyTypes "github.com/silentraja/Medskls/pkg/survey/types"
)

func TestValidateConsentQuestion(t *testing.T) {
	question := surveyTypes.Question{
		QuestionID:   99,
		QuestionText: "I consent to treatment",
		QuestionType: surveyTypes.QUESTION_TYPE_SINGLE_CHOICE,
	}
	store := NewAnswerStore(nil, ExtendedSpecifyTrigger)
	v := NewValidator()

	t.Run("unchecked consent fails keyed by question id", func(t *testing.T) {
		result := v.ValidateQuestion(question, store, nil)
		if result.Valid {
			t.Error("should fail validation")
		}
		if _, ok := result.Errors["99"]; !ok {
			t.Errorf("expected error keyed 99, got %v", result.Errors)
		}
		if result.FirstInvalidKey != "99" {
			t.Errorf("unexpected first invalid key: %s", result.FirstInvalidKey)
		}
	})

	t.Run("checked consent passes", func(t *testing.T) {
		store.SetConsent(99, true)
		result := v.ValidateQuestion(question, store, nil)
		if !result.Valid {
			t.Errorf("should pass validation: %v", result.Errors)
		}
	})
}

func specifyQuestion() surveyTypes.Question {
	return surveyTypes.Question{
		QuestionID:   5,
		QuestionText: "How severe is your condition?",
		QuestionType: surveyTypes.QUESTION_TYPE_MULTIPLE_CHOICE,
		DisplayOrder: 3,
		Options: []surveyTypes.Option{
			{OptionID: 10, OptionText: "Mild"},
			{OptionID: 11, OptionText: "Severe (please specify)"},
		},
	}
}

func TestValidateSpecifyOption(t *testing.T) {
	question := specifyQuestion()
	store := NewAnswerStore(nil, ExtendedSpecifyTrigger)
	v := NewValidator()

	t.Run("empty answer is required", func(t *testing.T) {
		result := v.ValidateQuestion(question, store, nil)
		if result.Valid {
			t.Error("should fail validation")
		}
		if result.Errors["5"] != MSG_ANSWER_REQUIRED {
			t.Errorf("unexpected errors: %v", result.Errors)
		}
	})

	t.Run("triggering option without text fails keyed by question_option", func(t *testing.T) {
		store.ToggleOption(question, 11, true)
		result := v.ValidateQuestion(question, store, nil)
		if result.Valid {
			t.Error("should fail validation")
		}
		if result.Errors["5_11"] != MSG_DETAILS_REQUIRED {
			t.Errorf("unexpected errors: %v", result.Errors)
		}
	})

	t.Run("whitespace only text still fails", func(t *testing.T) {
		store.SetSpecifyText("5_11", "   ")
		result := v.ValidateQuestion(question, store, nil)
		if result.Valid {
			t.Error("should fail validation")
		}
	})

	t.Run("filled text passes", func(t *testing.T) {
		store.SetSpecifyText("5_11", "flare-ups weekly")
		result := v.ValidateQuestion(question, store, nil)
		if !result.Valid {
			t.Errorf("should pass validation: %v", result.Errors)
		}
	})

	t.Run("deselect then reselect reproduces the error", func(t *testing.T) {
		store.ToggleOption(question, 11, false)
		store.ToggleOption(question, 11, true)
		result := v.ValidateQuestion(question, store, nil)
		if result.Valid {
			t.Error("should fail validation again after reselect")
		}
		if result.Errors["5_11"] != MSG_DETAILS_REQUIRED {
			t.Errorf("unexpected errors: %v", result.Errors)
		}
	})
}

func TestValidateSingleChoiceSpecify(t *testing.T) {
	question := surveyTypes.Question{
		QuestionID:   7,
		QuestionText: "Are you on any medication?",
		QuestionType: surveyTypes.QUESTION_TYPE_SINGLE_CHOICE,
		Options: []surveyTypes.Option{
			{OptionID: 20, OptionText: "No"},
			{OptionID: 21, OptionText: "Yes (please specify)"},
		},
	}
	store := NewAnswerStore(nil, ExtendedSpecifyTrigger)
	v := NewValidator()

	t.Run("triggering selection without text fails keyed by question id", func(t *testing.T) {
		store.SelectOption(question, 21)
		result := v.ValidateQuestion(question, store, nil)
		if result.Valid {
			t.Error("should fail validation")
		}
		if result.Errors["7"] != MSG_DETAILS_REQUIRED {
			t.Errorf("unexpected errors: %v", result.Errors)
		}
	})

	t.Run("non triggering selection passes without text", func(t *testing.T) {
		store.SelectOption(question, 20)
		result := v.ValidateQuestion(question, store, nil)
		if !result.Valid {
			t.Errorf("should pass validation: %v", result.Errors)
		}
	})
}

func TestValidateMediaQuestion(t *testing.T) {
	question := surveyTypes.Question{
		QuestionID:   surveyTypes.MEDIA_QUESTION_ID,
		QuestionText: "Upload your photos",
	}
	store := NewAnswerStore(nil, ExtendedSpecifyTrigger)
	v := NewValidator()

	uploader := &fakeUploader{}
	media := NewMediaController(uploader)
	ctx := context.Background()

	t.Run("two of three slots fails with single media error", func(t *testing.T) {
		mustUploadSlot(t, media, ctx, surveyTypes.MediaSlotLabels[0])
		mustUploadSlot(t, media, ctx, surveyTypes.MediaSlotLabels[1])

		result := v.ValidateQuestion(question, store, media)
		if result.Valid {
			t.Error("should fail validation")
		}
		if len(result.Errors) != 1 {
			t.Errorf("expected exactly one error, got %v", result.Errors)
		}
		if result.Errors["13"] != MSG_IMAGES_REQUIRED {
			t.Errorf("unexpected errors: %v", result.Errors)
		}
	})

	t.Run("third slot clears the error", func(t *testing.T) {
		mustUploadSlot(t, media, ctx, surveyTypes.MediaSlotLabels[2])
		result := v.ValidateQuestion(question, store, media)
		if !result.Valid {
			t.Errorf("should pass validation: %v", result.Errors)
		}
	})
}

func mustUploadSlot(t *testing.T, media *MediaController, ctx context.Context, label string) {
	t.Helper()
	err := media.UploadFile(ctx, label, "photo.png", "image/png", bytesReader([]byte("img")))
	if err != nil {
		t.Fatalf("unexpected upload error: %v", err)
	}
}
