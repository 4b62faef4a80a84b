package types

import "strconv"

// AnswerValue is polymorphic over the two question types: for single choice
// questions OptionID carries the selection (0 = unanswered), for multiple
// choice questions OptionIDs carries the selected ids in selection order and
// OptionID stays 0.
type AnswerValue struct {
	OptionID  int   `json:"optionId,omitempty"`
	OptionIDs []int `json:"optionIds,omitempty"`
}

func (a AnswerValue) IsEmpty() bool {
	return a.OptionID == 0 && len(a.OptionIDs) == 0
}

// SpecifyKey builds the key under which the free-text detail for a multiple
// choice option is stored ("QuestionId_OptionId"). Single choice questions
// key their detail text by SingleSpecifyKey.
func SpecifyKey(questionID, optionID int) string {
	return strconv.Itoa(questionID) + "_" + strconv.Itoa(optionID)
}

func SingleSpecifyKey(questionID int) string {
	return strconv.Itoa(questionID)
}

// MediaSlot holds the state of one named photo slot. Preview is a locally
// displayable copy, StoredPath the reference returned by the upload endpoint.
// The slot counts as complete only once StoredPath is set.
type MediaSlot struct {
	Preview    string `json:"preview,omitempty"`
	StoredPath string `json:"storedPath,omitempty"`
}

func (s MediaSlot) Complete() bool {
	return s.StoredPath != ""
}

// PersonalInfo is carried forward to pre-fill the registration form when the
// visitor is sent through the account creation detour.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	DOB      string `json:"dob"`
	Gender   string `json:"gender"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
}

// FormData groups the answer related state the way the submission and draft
// payloads expect it.
type FormData struct {
	PersonalInfo PersonalInfo        `json:"personalInfo"`
	Answers      map[int]AnswerValue `json:"answers"`
	Consents     map[int]bool        `json:"consents"`
}

// Draft is the durable snapshot of the whole wizard, written when a
// submission attempt finds no resolvable identity and consumed exactly once
// on return. Field names are fixed by the stored format.
type Draft struct {
	FormData         FormData          `json:"formData"`
	SpecifyTexts     map[string]string `json:"specifyTexts"`
	ImagePaths       map[string]string `json:"imagePaths"`
	CapturedImages   map[string]string `json:"capturedImages"`
	Questions        []QuestionRow     `json:"questions"`
	GroupedQuestions map[int]Question  `json:"groupedQuestions"`
	CurrentStep      int               `json:"currentStep"`
	QuestionIndex    int               `json:"questionIndex"`
}

// Storage keys for the durable client-side store. DraftKey holds the full
// snapshot; PersonalInfoKey is the narrower channel that only pre-fills the
// registration form and is superseded by the full draft when both exist.
const (
	DraftKey        = "pendingPatientSubmission"
	PersonalInfoKey = "pendingSurveyData"
)
