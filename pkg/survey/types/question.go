package types

const (
	QUESTION_TYPE_SINGLE_CHOICE   = "single_choice"
	QUESTION_TYPE_MULTIPLE_CHOICE = "multiple_choice"
)

// The media question is a reserved question that collects three photos
// instead of option selections.
const MEDIA_QUESTION_ID = 13

// Fixed option id triple submitted with the media question's response row.
const MEDIA_OPTION_IDS = "39,40,41"

// Photo slot labels, in submission order: front, left side, right side.
var MediaSlotLabels = []string{
	"Front View",
	"Side View (Left)",
	"Side View (Right)",
}

// QuestionRow is one row of the flat question/option list returned by the
// question endpoint. A question with N options appears as N rows sharing the
// same QuestionId.
type QuestionRow struct {
	QuestionID         int    `bson:"questionId" json:"QuestionId"`
	QuestionText       string `bson:"questionText" json:"QuestionText"`
	QuestionType       string `bson:"questionType" json:"QuestionType"`
	DisplayOrder       int    `bson:"displayOrder" json:"DisplayOrder"`
	OptionID           int    `bson:"optionId" json:"OptionId"`
	OptionText         string `bson:"optionText" json:"OptionText"`
	OptionDisplayOrder int    `bson:"optionDisplayOrder" json:"DisplayOrder1"`
}

type Option struct {
	OptionID     int    `bson:"optionId" json:"OptionId"`
	OptionText   string `bson:"optionText" json:"OptionText"`
	DisplayOrder int    `bson:"displayOrder" json:"DisplayOrder"`
}

// Question is the grouped form of all rows sharing one QuestionId. Options
// keep first-seen order of the input rows; they are not sorted by their own
// display order value (long-standing behavior the submission pipeline relies
// on, keep as is).
type Question struct {
	QuestionID   int      `bson:"questionId" json:"QuestionId"`
	QuestionText string   `bson:"questionText" json:"QuestionText"`
	QuestionType string   `bson:"questionType" json:"QuestionType"`
	DisplayOrder int      `bson:"displayOrder" json:"DisplayOrder"`
	Options      []Option `bson:"options" json:"Options"`
}
