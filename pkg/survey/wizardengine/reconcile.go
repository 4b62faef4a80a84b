package wizardengine

import (
	"strconv"
	"strings"

	surveyTypes "github.com/silentraja/Medskls/pkg/survey/types"
)

// Reconcile transforms the answer and media state into the flat response
// rows the submission endpoint expects, one row per answered question in
// first-seen question order. Completeness is not re-checked here, that
// already happened in validation: the media question always contributes its
// row with whatever slot references exist.
func Reconcile(grouped *GroupedQuestions, store *AnswerStore, media *MediaController) []surveyTypes.ResponseRow {
	responses := []surveyTypes.ResponseRow{}

	for _, question := range grouped.InOrder() {
		if question.QuestionID == surveyTypes.MEDIA_QUESTION_ID {
			responses = append(responses, surveyTypes.ResponseRow{
				QuestionID:   question.QuestionID,
				OptionID:     surveyTypes.MEDIA_OPTION_IDS,
				TextResponse: nil,
				FrontSide:    media.StoredPath(surveyTypes.MediaSlotLabels[0]),
				LeftSide:     media.StoredPath(surveyTypes.MediaSlotLabels[1]),
				RightSide:    media.StoredPath(surveyTypes.MediaSlotLabels[2]),
			})
			continue
		}

		answer := store.Answer(question.QuestionID)
		if answer.IsEmpty() {
			continue
		}

		switch question.QuestionType {
		case surveyTypes.QUESTION_TYPE_MULTIPLE_CHOICE:
			responses = append(responses, multipleChoiceRow(question, answer, store))
		case surveyTypes.QUESTION_TYPE_SINGLE_CHOICE:
			responses = append(responses, surveyTypes.ResponseRow{
				QuestionID:   question.QuestionID,
				OptionID:     strconv.Itoa(answer.OptionID),
				TextResponse: nonEmpty(store.SpecifyText(surveyTypes.SingleSpecifyKey(question.QuestionID))),
			})
		}
	}

	return responses
}

func multipleChoiceRow(question surveyTypes.Question, answer surveyTypes.AnswerValue, store *AnswerStore) surveyTypes.ResponseRow {
	optionIDs := make([]string, 0, len(answer.OptionIDs))
	textResponses := []string{}

	for _, optionID := range answer.OptionIDs {
		optionIDs = append(optionIDs, strconv.Itoa(optionID))
		text := store.SpecifyText(surveyTypes.SpecifyKey(question.QuestionID, optionID))
		if text != "" {
			textResponses = append(textResponses, text)
		}
	}

	return surveyTypes.ResponseRow{
		QuestionID:   question.QuestionID,
		OptionID:     strings.Join(optionIDs, ","),
		TextResponse: nonEmpty(strings.Join(textResponses, "; ")),
	}
}

// nonEmpty maps "" to null so the payload never carries empty-string
// artifacts.
func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
