package wizardengine

import (
	"testing"

	surveyTypes "github.com/silentraja/Medskls/pkg/survey/types"
)

func staticSections(sections [SectionCount][]surveyTypes.Question) func() [SectionCount][]surveyTypes.Question {
	return func() [SectionCount][]surveyTypes.Question { return sections }
}

func TestNavigatorAdvance(t *testing.T) {
	sections := [SectionCount][]surveyTypes.Question{
		{{QuestionID: 1}, {QuestionID: 2}},
		{{QuestionID: 3}},
		{{QuestionID: surveyTypes.MEDIA_QUESTION_ID}},
	}
	nav := NewNavigator(staticSections(sections))

	t.Run("starts at the first question", func(t *testing.T) {
		if nav.Cursor() != (Cursor{}) {
			t.Errorf("unexpected initial cursor: %v", nav.Cursor())
		}
	})

	t.Run("steps through the section then crosses into the next", func(t *testing.T) {
		nav.Advance()
		if nav.Cursor() != (Cursor{Section: 0, Question: 1}) {
			t.Errorf("unexpected cursor: %v", nav.Cursor())
		}
		nav.Advance()
		if nav.Cursor() != (Cursor{Section: 1, Question: 0}) {
			t.Errorf("unexpected cursor: %v", nav.Cursor())
		}
	})

	t.Run("exhausting section 3 walks info then submit", func(t *testing.T) {
		nav.Advance() // -> section 2
		nav.Advance() // -> info
		if nav.Cursor().Section != SectionInfo {
			t.Errorf("expected info section, got %v", nav.Cursor())
		}
		if _, ok := nav.CurrentQuestion(); ok {
			t.Error("info section should carry no question")
		}
		nav.Advance() // -> submit
		if !nav.AtSubmit() {
			t.Errorf("expected submit section, got %v", nav.Cursor())
		}
		nav.Advance() // no-op at terminal
		if !nav.AtSubmit() {
			t.Errorf("cursor moved past terminal: %v", nav.Cursor())
		}
	})
}

func TestNavigatorRetreat(t *testing.T) {
	sections := [SectionCount][]surveyTypes.Question{
		{{QuestionID: 1}, {QuestionID: 2}},
		{{QuestionID: 3}, {QuestionID: 4}},
		{{QuestionID: surveyTypes.MEDIA_QUESTION_ID}},
	}
	nav := NewNavigator(staticSections(sections))

	t.Run("no-op at the initial state", func(t *testing.T) {
		nav.Retreat()
		if nav.Cursor() != (Cursor{}) {
			t.Errorf("unexpected cursor: %v", nav.Cursor())
		}
	})

	t.Run("crossing back lands on the previous section's last question", func(t *testing.T) {
		nav.Restore(Cursor{Section: 1, Question: 0})
		nav.Retreat()
		if nav.Cursor() != (Cursor{Section: 0, Question: 1}) {
			t.Errorf("unexpected cursor: %v", nav.Cursor())
		}
	})

	t.Run("previous section length is recomputed, not cached", func(t *testing.T) {
		current := [SectionCount][]surveyTypes.Question{
			{{QuestionID: 1}, {QuestionID: 2}},
			{{QuestionID: 3}},
			{},
		}
		mut := NewNavigator(func() [SectionCount][]surveyTypes.Question { return current })
		mut.Restore(Cursor{Section: 1, Question: 0})

		// section 1 shrinks before the retreat
		current[0] = []surveyTypes.Question{{QuestionID: 1}}
		mut.Retreat()
		if mut.Cursor() != (Cursor{Section: 0, Question: 0}) {
			t.Errorf("unexpected cursor: %v", mut.Cursor())
		}
	})

	t.Run("retreat from info returns to section 3's last question", func(t *testing.T) {
		nav.Restore(Cursor{Section: SectionInfo})
		nav.Retreat()
		if nav.Cursor() != (Cursor{Section: 2, Question: 0}) {
			t.Errorf("unexpected cursor: %v", nav.Cursor())
		}
	})
}

func TestNavigatorRestoreClamps(t *testing.T) {
	sections := [SectionCount][]surveyTypes.Question{
		{{QuestionID: 1}},
		{},
		{},
	}
	nav := NewNavigator(staticSections(sections))

	nav.Restore(Cursor{Section: 0, Question: 5})
	if nav.Cursor() != (Cursor{Section: 0, Question: 0}) {
		t.Errorf("question index not clamped: %v", nav.Cursor())
	}

	nav.Restore(Cursor{Section: 99, Question: 3})
	if nav.Cursor() != (Cursor{Section: SectionSubmit, Question: 0}) {
		t.Errorf("section not clamped: %v", nav.Cursor())
	}
}
