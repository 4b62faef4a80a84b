package wizardengine

import (
	surveyTypes "github.com/silentraja/Medskls/pkg/survey/types"
)

// AnswerStore owns the in-progress answer set: per-question answer values,
// the specify free-text entries and the consent flags. Handlers never touch
// these maps directly, every mutation goes through one of the operations
// below so the invariants between selections and specify entries hold.
type AnswerStore struct {
	answers      map[int]surveyTypes.AnswerValue
	specifyTexts map[string]string
	consents     map[int]bool

	// rule used to decide whether a selection keeps its specify entry
	trigger SpecifyTrigger
}

// NewAnswerStore seeds the store from the raw question rows the way the
// wizard does on first load: an empty answer per question, an empty specify
// entry per triggering option and a false consent flag per consent question.
func NewAnswerStore(rows []surveyTypes.QuestionRow, trigger SpecifyTrigger) *AnswerStore {
	s := &AnswerStore{
		answers:      map[int]surveyTypes.AnswerValue{},
		specifyTexts: map[string]string{},
		consents:     map[int]bool{},
		trigger:      trigger,
	}

	for _, row := range rows {
		if _, ok := s.answers[row.QuestionID]; !ok {
			switch row.QuestionType {
			case surveyTypes.QUESTION_TYPE_MULTIPLE_CHOICE:
				s.answers[row.QuestionID] = surveyTypes.AnswerValue{OptionIDs: []int{}}
			case surveyTypes.QUESTION_TYPE_SINGLE_CHOICE:
				s.answers[row.QuestionID] = surveyTypes.AnswerValue{}
			}
		}

		if BaseSpecifyTrigger(row.OptionText) {
			key := surveyTypes.SpecifyKey(row.QuestionID, row.OptionID)
			if _, ok := s.specifyTexts[key]; !ok {
				s.specifyTexts[key] = ""
			}
		}

		if IsConsentQuestion(surveyTypes.Question{QuestionText: row.QuestionText}) {
			if _, ok := s.consents[row.QuestionID]; !ok {
				s.consents[row.QuestionID] = false
			}
		}
	}

	return s
}

// SelectOption records a single choice selection. When the newly selected
// option is not specify-triggering, a leftover specify entry from an earlier
// selection is cleared.
func (s *AnswerStore) SelectOption(q surveyTypes.Question, optionID int) {
	s.answers[q.QuestionID] = surveyTypes.AnswerValue{OptionID: optionID}

	var selected *surveyTypes.Option
	for i := range q.Options {
		if q.Options[i].OptionID == optionID {
			selected = &q.Options[i]
			break
		}
	}
	if selected == nil || !s.trigger(selected.OptionText) {
		delete(s.specifyTexts, surveyTypes.SingleSpecifyKey(q.QuestionID))
	}
}

// ToggleOption records a multiple choice (de)selection. Deselecting clears
// the option's specify entry, so a later reselection starts from empty text
// again.
func (s *AnswerStore) ToggleOption(q surveyTypes.Question, optionID int, selected bool) {
	current := s.answers[q.QuestionID].OptionIDs

	if selected {
		for _, id := range current {
			if id == optionID {
				return
			}
		}
		s.answers[q.QuestionID] = surveyTypes.AnswerValue{OptionIDs: append(current, optionID)}
		return
	}

	updated := make([]int, 0, len(current))
	for _, id := range current {
		if id != optionID {
			updated = append(updated, id)
		}
	}
	s.answers[q.QuestionID] = surveyTypes.AnswerValue{OptionIDs: updated}
	delete(s.specifyTexts, surveyTypes.SpecifyKey(q.QuestionID, optionID))
}

func (s *AnswerStore) SetSpecifyText(key, text string) {
	s.specifyTexts[key] = text
}

func (s *AnswerStore) SetConsent(questionID int, agreed bool) {
	s.consents[questionID] = agreed
}

func (s *AnswerStore) Answer(questionID int) surveyTypes.AnswerValue {
	return s.answers[questionID]
}

func (s *AnswerStore) SpecifyText(key string) string {
	return s.specifyTexts[key]
}

func (s *AnswerStore) Consent(questionID int) bool {
	return s.consents[questionID]
}

// Snapshot returns copies of the three maps for draft serialization.
func (s *AnswerStore) Snapshot() (answers map[int]surveyTypes.AnswerValue, specifyTexts map[string]string, consents map[int]bool) {
	answers = make(map[int]surveyTypes.AnswerValue, len(s.answers))
	for k, v := range s.answers {
		answers[k] = v
	}
	specifyTexts = make(map[string]string, len(s.specifyTexts))
	for k, v := range s.specifyTexts {
		specifyTexts[k] = v
	}
	consents = make(map[int]bool, len(s.consents))
	for k, v := range s.consents {
		consents[k] = v
	}
	return answers, specifyTexts, consents
}

// Restore replaces the store content with a draft snapshot.
func (s *AnswerStore) Restore(answers map[int]surveyTypes.AnswerValue, specifyTexts map[string]string, consents map[int]bool) {
	s.answers = map[int]surveyTypes.AnswerValue{}
	for k, v := range answers {
		s.answers[k] = v
	}
	s.specifyTexts = map[string]string{}
	for k, v := range specifyTexts {
		s.specifyTexts[k] = v
	}
	s.consents = map[int]bool{}
	for k, v := range consents {
		s.consents[k] = v
	}
}
