package types

import "time"

// ResponseRow is the normalized per-question shape the submission endpoint
// expects. OptionID carries a comma-joined id list for multiple choice
// questions and the stringified scalar for single choice ones. Nullable
// fields are pointers so an absent value serializes as null rather than "".
type ResponseRow struct {
	QuestionID   int     `bson:"questionId" json:"QuestionId"`
	OptionID     string  `bson:"optionId" json:"OptionId"`
	TextResponse *string `bson:"textResponse" json:"TextResponse"`
	FrontSide    *string `bson:"frontSide" json:"FrontSide"`
	LeftSide     *string `bson:"leftSide" json:"LeftSide"`
	RightSide    *string `bson:"rightSide" json:"RightSide"`
}

// Submission is the payload of one completed intake application.
type Submission struct {
	UserID    int64         `bson:"userId" json:"UserId"`
	Responses []ResponseRow `bson:"responses" json:"Responses"`
}

// PatientApplication is the stored form of a submission.
type PatientApplication struct {
	ID          string        `bson:"_id,omitempty" json:"id,omitempty"`
	UserID      int64         `bson:"userId" json:"userId"`
	Responses   []ResponseRow `bson:"responses" json:"responses"`
	SubmittedAt time.Time     `bson:"submittedAt" json:"submittedAt"`
}
