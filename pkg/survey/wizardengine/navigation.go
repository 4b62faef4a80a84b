package wizardengine

import (
	surveyTypes "github.com/silentraja/Medskls/pkg/survey/types"
)

// Pseudo-sections after the three question sections: an informational page
// and the terminal submit page. Neither carries questions.
const (
	SectionInfo   = SectionCount
	SectionSubmit = SectionCount + 1
)

// Cursor is the navigation state: which section and which question within
// it is currently shown.
type Cursor struct {
	Section  int
	Question int
}

// Navigator advances and retreats the cursor over the partitioned sections.
// Sections are recomputed through the provider on every access so a changed
// question set never leaves the cursor working against stale lengths.
type Navigator struct {
	cursor   Cursor
	sections func() [SectionCount][]surveyTypes.Question
}

func NewNavigator(sections func() [SectionCount][]surveyTypes.Question) *Navigator {
	return &Navigator{sections: sections}
}

func (n *Navigator) Cursor() Cursor {
	return n.cursor
}

// CurrentQuestion returns the question under the cursor; ok is false on the
// pseudo-sections and when the section holds no question at the index.
func (n *Navigator) CurrentQuestion() (surveyTypes.Question, bool) {
	if n.cursor.Section >= SectionCount {
		return surveyTypes.Question{}, false
	}
	section := n.sections()[n.cursor.Section]
	if n.cursor.Question < 0 || n.cursor.Question >= len(section) {
		return surveyTypes.Question{}, false
	}
	return section[n.cursor.Question], true
}

// AtSubmit reports whether the cursor reached the terminal submit section.
func (n *Navigator) AtSubmit() bool {
	return n.cursor.Section == SectionSubmit
}

// Advance moves forward one question, or to the next section when the
// current one is exhausted. Past section 2 it walks the informational page
// and then the terminal submit page. The caller is expected to have
// validated the current question first; Advance itself does not validate.
func (n *Navigator) Advance() {
	if n.cursor.Section >= SectionSubmit {
		return
	}
	if n.cursor.Section >= SectionCount {
		// informational page, no questions to step through
		n.cursor = Cursor{Section: n.cursor.Section + 1}
		return
	}

	section := n.sections()[n.cursor.Section]
	if n.cursor.Question < len(section)-1 {
		n.cursor.Question++
		return
	}
	n.cursor = Cursor{Section: n.cursor.Section + 1}
}

// Retreat moves back one question, or to the last question of the previous
// section. The previous section's length is recomputed, never cached.
func (n *Navigator) Retreat() {
	if n.cursor.Question > 0 {
		n.cursor.Question--
		return
	}
	if n.cursor.Section == 0 {
		return
	}

	prev := n.cursor.Section - 1
	if prev >= SectionCount {
		n.cursor = Cursor{Section: prev}
		return
	}
	section := n.sections()[prev]
	n.cursor = Cursor{Section: prev, Question: len(section) - 1}
	if len(section) == 0 {
		n.cursor.Question = 0
	}
}

// Reset returns the cursor to the initial state.
func (n *Navigator) Reset() {
	n.cursor = Cursor{}
}

// Restore places the cursor at a saved position, clamping the question index
// into the section's current bounds.
func (n *Navigator) Restore(c Cursor) {
	if c.Section < 0 {
		c = Cursor{}
	}
	if c.Section > SectionSubmit {
		c.Section = SectionSubmit
	}
	if c.Section < SectionCount {
		section := n.sections()[c.Section]
		if c.Question >= len(section) {
			c.Question = len(section) - 1
		}
		if c.Question < 0 {
			c.Question = 0
		}
	} else {
		c.Question = 0
	}
	n.cursor = c
}
