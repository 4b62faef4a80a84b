package wizardengine

import (
	"sort"

	surveyTypes "github.com/silentraja/Medskls/pkg/survey/types"
)

// GroupedQuestions folds the flat question/option row list into one Question
// per QuestionId while remembering the first-seen order, which downstream
// step partitioning depends on for stable tie-breaking.
type GroupedQuestions struct {
	byID  map[int]*surveyTypes.Question
	order []int
}

// GroupQuestions iterates the rows in input order. The first row of a
// QuestionId seeds the Question, later rows append their option only if the
// OptionId is not present yet. Pure transform, empty input gives an empty
// result.
func GroupQuestions(rows []surveyTypes.QuestionRow) *GroupedQuestions {
	grouped := &GroupedQuestions{
		byID: map[int]*surveyTypes.Question{},
	}

	for _, row := range rows {
		question, ok := grouped.byID[row.QuestionID]
		if !ok {
			grouped.byID[row.QuestionID] = &surveyTypes.Question{
				QuestionID:   row.QuestionID,
				QuestionText: row.QuestionText,
				QuestionType: row.QuestionType,
				DisplayOrder: row.DisplayOrder,
				Options: []surveyTypes.Option{
					{
						OptionID:     row.OptionID,
						OptionText:   row.OptionText,
						DisplayOrder: row.OptionDisplayOrder,
					},
				},
			}
			grouped.order = append(grouped.order, row.QuestionID)
			continue
		}

		optionExists := false
		for _, opt := range question.Options {
			if opt.OptionID == row.OptionID {
				optionExists = true
				break
			}
		}
		if !optionExists {
			question.Options = append(question.Options, surveyTypes.Option{
				OptionID:     row.OptionID,
				OptionText:   row.OptionText,
				DisplayOrder: row.OptionDisplayOrder,
			})
		}
	}

	return grouped
}

func (g *GroupedQuestions) Get(questionID int) (surveyTypes.Question, bool) {
	q, ok := g.byID[questionID]
	if !ok {
		return surveyTypes.Question{}, false
	}
	return *q, true
}

func (g *GroupedQuestions) Len() int {
	return len(g.order)
}

// All returns the questions keyed by QuestionId.
func (g *GroupedQuestions) All() map[int]surveyTypes.Question {
	out := make(map[int]surveyTypes.Question, len(g.byID))
	for id, q := range g.byID {
		out[id] = *q
	}
	return out
}

// InOrder returns the questions in first-seen order of the input rows.
func (g *GroupedQuestions) InOrder() []surveyTypes.Question {
	out := make([]surveyTypes.Question, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, *g.byID[id])
	}
	return out
}

// Sorted returns the questions by ascending DisplayOrder, ties broken by
// first-seen order (stable sort).
func (g *GroupedQuestions) Sorted() []surveyTypes.Question {
	out := g.InOrder()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayOrder < out[j].DisplayOrder
	})
	return out
}
