package wizardengine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	surveyTypes "github.com/silentraja/Medskls/pkg/survey/types"
)

// QuestionSource fetches the flat question/option row list.
type QuestionSource interface {
	FetchQuestionRows(ctx context.Context) ([]surveyTypes.QuestionRow, error)
}

// Submitter persists one normalized response set.
type Submitter interface {
	SubmitApplication(ctx context.Context, submission surveyTypes.Submission) error
}

// IdentitySource resolves the current user. ok is false when neither an
// authenticated user nor a fallback stored id exists.
type IdentitySource interface {
	CurrentUserID(ctx context.Context) (userID int64, ok bool)
}

// Notification is fired after a successful submission.
type Notification struct {
	RecipientRoles []string
	Subject        string
	Body           string
	PatientName    string
}

// Notifier dispatches the post-submission notification. Failure degrades
// the user-facing message only, never the submission outcome.
type Notifier interface {
	NotifySubmission(ctx context.Context, n Notification) (sentCount int, err error)
}

// Collaborators are the external functions the wizard consumes.
type Collaborators struct {
	Questions QuestionSource
	Uploader  FileUploader
	Submitter Submitter
	Identity  IdentitySource
	Notifier  Notifier
	Drafts    DraftStore
}

// Roles notified about a new patient submission.
var NotificationRecipientRoles = []string{"Physician", "Admin"}

// SubmitOutcome describes how a submission attempt ended. Exactly one of
// Submitted and RedirectToRegistration is true on success paths; both false
// means the attempt failed and may be retried.
type SubmitOutcome struct {
	Submitted              bool
	RedirectToRegistration bool
	NotifiedCount          int
	Message                string
}

// ErrSubmissionInFlight is returned when a duplicate submit trigger arrives
// while a submission is already pending.
var ErrSubmissionInFlight = errors.New("a submission is already in progress")

// Wizard owns the complete intake wizard state and exposes the explicit
// operations the handlers drive it with. No handler mutates engine state
// directly.
type Wizard struct {
	deps Collaborators

	rows         []surveyTypes.QuestionRow
	grouped      *GroupedQuestions
	store        *AnswerStore
	media        *MediaController
	nav          *Navigator
	validator    Validator
	personalInfo surveyTypes.PersonalInfo

	resumed    bool
	submitting atomic.Bool
}

func New(deps Collaborators) *Wizard {
	w := &Wizard{
		deps:      deps,
		grouped:   GroupQuestions(nil),
		store:     NewAnswerStore(nil, ExtendedSpecifyTrigger),
		media:     NewMediaController(deps.Uploader),
		validator: NewValidator(),
	}
	w.nav = NewNavigator(w.sections)
	return w
}

func (w *Wizard) sections() [SectionCount][]surveyTypes.Question {
	return PartitionSteps(w.grouped.Sorted())
}

// Start prepares the wizard: a pending draft is consumed and fully replaces
// the fresh default state; otherwise the question list is fetched and the
// stores seeded from it. Draft load always runs before the first fetch.
func (w *Wizard) Start(ctx context.Context) error {
	draft, found, err := takeDraft(ctx, w.deps.Drafts)
	if err != nil {
		slog.Error("failed to load pending draft", slog.String("error", err.Error()))
	}
	if found {
		w.restore(draft)
		w.resumed = true
		return nil
	}

	rows, err := w.deps.Questions.FetchQuestionRows(ctx)
	if err != nil {
		return fmt.Errorf("failed to load survey questions: %w", err)
	}
	w.initFromRows(rows)
	return nil
}

func (w *Wizard) initFromRows(rows []surveyTypes.QuestionRow) {
	w.rows = rows
	w.grouped = GroupQuestions(rows)
	w.store = NewAnswerStore(rows, ExtendedSpecifyTrigger)
	w.nav.Reset()
}

func (w *Wizard) restore(draft surveyTypes.Draft) {
	w.rows = draft.Questions
	w.grouped = GroupQuestions(draft.Questions)
	w.store = NewAnswerStore(draft.Questions, ExtendedSpecifyTrigger)
	w.store.Restore(draft.FormData.Answers, draft.SpecifyTexts, draft.FormData.Consents)
	w.media.Restore(draft.ImagePaths, draft.CapturedImages)
	w.personalInfo = draft.FormData.PersonalInfo
	w.nav.Restore(Cursor{Section: draft.CurrentStep, Question: draft.QuestionIndex})
}

// Resumed reports whether Start consumed a pending draft, used for the
// "resume available" banner.
func (w *Wizard) Resumed() bool {
	return w.resumed
}

func (w *Wizard) Cursor() Cursor {
	return w.nav.Cursor()
}

func (w *Wizard) CurrentQuestion() (surveyTypes.Question, bool) {
	return w.nav.CurrentQuestion()
}

func (w *Wizard) SetPersonalInfo(info surveyTypes.PersonalInfo) {
	w.personalInfo = info
}

// SelectOption records a single choice answer on the question under the
// cursor.
func (w *Wizard) SelectOption(optionID int) {
	if q, ok := w.nav.CurrentQuestion(); ok {
		w.store.SelectOption(q, optionID)
	}
}

// ToggleOption records a multiple choice (de)selection on the question
// under the cursor.
func (w *Wizard) ToggleOption(optionID int, selected bool) {
	if q, ok := w.nav.CurrentQuestion(); ok {
		w.store.ToggleOption(q, optionID, selected)
	}
}

func (w *Wizard) SetSpecifyText(key, text string) {
	w.store.SetSpecifyText(key, text)
}

func (w *Wizard) SetConsent(questionID int, agreed bool) {
	w.store.SetConsent(questionID, agreed)
}

// UploadSlotFile and CaptureSlot expose the two media acquisition paths for
// the slot label.
func (w *Wizard) Media() *MediaController {
	return w.media
}

// Next validates the question under the cursor and advances only when it
// passes. The returned result carries the field errors and the first
// invalid key for the focus/highlight affordance on failure.
func (w *Wizard) Next() ValidationResult {
	q, ok := w.nav.CurrentQuestion()
	if !ok {
		// pseudo-sections have nothing to validate
		w.nav.Advance()
		return validResult()
	}

	result := w.validator.ValidateQuestion(q, w.store, w.media)
	if !result.Valid {
		return result
	}
	w.nav.Advance()
	return result
}

func (w *Wizard) Previous() {
	w.nav.Retreat()
}

// Submit runs the terminal submission flow. Without a resolvable identity
// it snapshots the full state as a single-use draft, writes the pre-fill
// channel and reports the registration detour; with identity it reconciles,
// submits, fires the notification and resets to initial state. The two
// branches are mutually exclusive. A duplicate trigger while one submission
// is pending returns ErrSubmissionInFlight.
func (w *Wizard) Submit(ctx context.Context) (SubmitOutcome, error) {
	if !w.submitting.CompareAndSwap(false, true) {
		return SubmitOutcome{}, ErrSubmissionInFlight
	}
	defer w.submitting.Store(false)

	userID, ok := w.deps.Identity.CurrentUserID(ctx)
	if !ok {
		draft := buildDraft(w.personalInfo, w.rows, w.grouped, w.store, w.media, w.nav.Cursor())
		if err := saveDraft(ctx, w.deps.Drafts, draft); err != nil {
			return SubmitOutcome{}, fmt.Errorf("failed to save draft: %w", err)
		}
		if err := savePersonalInfo(ctx, w.deps.Drafts, w.personalInfo); err != nil {
			// pre-fill channel is best effort, the full draft supersedes it
			slog.Warn("failed to save personal info for registration pre-fill", slog.String("error", err.Error()))
		}
		return SubmitOutcome{
			RedirectToRegistration: true,
			Message:                "Please create an account to complete your submission",
		}, nil
	}

	responses := Reconcile(w.grouped, w.store, w.media)
	err := w.deps.Submitter.SubmitApplication(ctx, surveyTypes.Submission{
		UserID:    userID,
		Responses: responses,
	})
	if err != nil {
		return SubmitOutcome{}, fmt.Errorf("failed to submit application: %w", err)
	}

	outcome := SubmitOutcome{Submitted: true}

	patientName := w.personalInfo.FullName
	if patientName == "" {
		patientName = "New Patient"
	}
	subject, body := NewPatientNotificationTemplate(patientName)
	sentCount, err := w.deps.Notifier.NotifySubmission(ctx, Notification{
		RecipientRoles: NotificationRecipientRoles,
		Subject:        subject,
		Body:           body,
		PatientName:    patientName,
	})
	if err != nil {
		slog.Warn("post-submission notification failed", slog.String("error", err.Error()))
		outcome.Message = "Thank you for your submission! Our team will review your information."
	} else {
		outcome.NotifiedCount = sentCount
		outcome.Message = fmt.Sprintf("Thank you for your submission! %d doctor(s) notified.", sentCount)
	}

	w.resetAfterSubmit(ctx)
	return outcome, nil
}

// resetAfterSubmit returns the wizard to its initial state; the terminal
// state is not re-enterable once a submission succeeded.
func (w *Wizard) resetAfterSubmit(ctx context.Context) {
	w.store = NewAnswerStore(w.rows, ExtendedSpecifyTrigger)
	w.media.Reset()
	w.personalInfo = surveyTypes.PersonalInfo{}
	w.nav.Reset()
	w.resumed = false

	// drop any leftover persisted state from earlier detours
	if _, _, err := w.deps.Drafts.Take(ctx, surveyTypes.DraftKey); err != nil {
		slog.Warn("failed to clear pending draft", slog.String("error", err.Error()))
	}
	if _, _, err := w.deps.Drafts.Take(ctx, surveyTypes.PersonalInfoKey); err != nil {
		slog.Warn("failed to clear pending personal info", slog.String("error", err.Error()))
	}
}

// NewPatientNotificationTemplate renders the subject and body of the
// clinician notification for a new submission.
func NewPatientNotificationTemplate(patientName string) (subject string, body string) {
	subject = "New Patient Application Submitted"
	body = fmt.Sprintf(
		"<p>A new patient application has been submitted by <strong>%s</strong>.</p>"+
			"<p>Please log in to the portal to review the intake responses and uploaded photos.</p>",
		patientName,
	)
	return subject, body
}
