package wizardengine

import (
	"strings"
	"time"

	surveyTypes "github.com/silentraja/Medskls/pkg/survey/types"
)

// Validation messages shown at the field level.
const (
	MSG_CONSENT_REQUIRED  = "You must agree to continue"
	MSG_IMAGES_REQUIRED   = "Please upload all required images"
	MSG_ANSWER_REQUIRED   = "This question is required"
	MSG_DETAILS_REQUIRED  = "Please provide details"
	MSG_COMPLETE_REQUIRED = "Please complete all required fields before proceeding"
)

// How long the first invalid field stays visually highlighted after a
// rejected navigation attempt.
const ErrorHighlightDuration = 2 * time.Second

// ValidationResult carries the field-scoped errors of one question check.
// Keys are the QuestionId (consent, media, required, single choice specify)
// or "QuestionId_OptionId" (multiple choice specify).
type ValidationResult struct {
	Valid  bool
	Errors map[string]string

	// FirstInvalidKey is the key focus should move to, with HighlightFor
	// as the transient highlight duration. Presentation details, but part
	// of the result so callers do not re-derive them.
	FirstInvalidKey string
	HighlightFor    time.Duration
}

func validResult() ValidationResult {
	return ValidationResult{Valid: true, Errors: map[string]string{}}
}

// Validator checks exactly one question at a time, never the whole form.
// Trigger decides which selected options demand a non-empty specify text.
type Validator struct {
	Trigger SpecifyTrigger
}

func NewValidator() Validator {
	return Validator{Trigger: BaseSpecifyTrigger}
}

// ValidateQuestion applies the rules in order of applicability: consent
// questions need their flag set, the media question needs all three slots
// complete, everything else needs a non-empty answer plus a non-blank
// specify text for every selected triggering option.
func (v Validator) ValidateQuestion(q surveyTypes.Question, store *AnswerStore, media *MediaController) ValidationResult {
	errors := map[string]string{}
	firstKey := ""

	addError := func(key, msg string) {
		if firstKey == "" {
			firstKey = key
		}
		errors[key] = msg
	}

	if IsConsentQuestion(q) {
		if !store.Consent(q.QuestionID) {
			addError(surveyTypes.SingleSpecifyKey(q.QuestionID), MSG_CONSENT_REQUIRED)
		}
		return v.result(errors, firstKey)
	}

	if q.QuestionID == surveyTypes.MEDIA_QUESTION_ID {
		if media == nil || !media.AllComplete() {
			addError(surveyTypes.SingleSpecifyKey(q.QuestionID), MSG_IMAGES_REQUIRED)
		}
		return v.result(errors, firstKey)
	}

	answer := store.Answer(q.QuestionID)
	if answer.IsEmpty() {
		addError(surveyTypes.SingleSpecifyKey(q.QuestionID), MSG_ANSWER_REQUIRED)
	}

	switch q.QuestionType {
	case surveyTypes.QUESTION_TYPE_MULTIPLE_CHOICE:
		for _, optionID := range answer.OptionIDs {
			opt, ok := findOption(q, optionID)
			if !ok || !v.Trigger(opt.OptionText) {
				continue
			}
			key := surveyTypes.SpecifyKey(q.QuestionID, optionID)
			if strings.TrimSpace(store.SpecifyText(key)) == "" {
				addError(key, MSG_DETAILS_REQUIRED)
			}
		}
	case surveyTypes.QUESTION_TYPE_SINGLE_CHOICE:
		if answer.OptionID != 0 {
			opt, ok := findOption(q, answer.OptionID)
			if ok && v.Trigger(opt.OptionText) {
				key := surveyTypes.SingleSpecifyKey(q.QuestionID)
				if strings.TrimSpace(store.SpecifyText(key)) == "" {
					addError(key, MSG_DETAILS_REQUIRED)
				}
			}
		}
	}

	return v.result(errors, firstKey)
}

func (v Validator) result(errors map[string]string, firstKey string) ValidationResult {
	if len(errors) == 0 {
		return validResult()
	}
	return ValidationResult{
		Valid:           false,
		Errors:          errors,
		FirstInvalidKey: firstKey,
		HighlightFor:    ErrorHighlightDuration,
	}
}

func findOption(q surveyTypes.Question, optionID int) (surveyTypes.Option, bool) {
	for _, opt := range q.Options {
		if opt.OptionID == optionID {
			return opt, true
		}
	}
	return surveyTypes.Option{}, false
}
