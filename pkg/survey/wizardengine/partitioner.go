package wizardengine

import (
	"strings"

	surveyTypes "github.com/silentraja/Medskls/pkg/survey/types"
)

// Number of question sections; the informational and submit pseudo-sections
// that follow carry no questions.
const SectionCount = 3

// IsConsentQuestion reports whether a question is a consent/agreement style
// question, decided by its text content.
func IsConsentQuestion(q surveyTypes.Question) bool {
	text := strings.ToLower(q.QuestionText)
	return strings.Contains(text, "consent") || strings.Contains(text, "agree")
}

// PartitionSteps assigns the sorted questions to the three wizard sections:
//
//	section 0: DisplayOrder <= 7, excluding the media question
//	section 1: 7 < DisplayOrder <= 12, excluding the media question
//	section 2: the media question plus any consent/agreement question
//
// A question matching none of the predicates ends up in no section at all
// and is silently dropped from the wizard. Known quirk of the boundary
// semantics, kept as current behavior (see DESIGN.md).
func PartitionSteps(sorted []surveyTypes.Question) [SectionCount][]surveyTypes.Question {
	var sections [SectionCount][]surveyTypes.Question

	for _, q := range sorted {
		switch {
		case q.QuestionID == surveyTypes.MEDIA_QUESTION_ID || IsConsentQuestion(q):
			sections[2] = append(sections[2], q)
		case q.DisplayOrder <= 7:
			sections[0] = append(sections[0], q)
		case q.DisplayOrder <= 12:
			sections[1] = append(sections[1], q)
		}
	}

	return sections
}
