package wizardengine

import (
	"context"
	"errors"
	"testing"

	surveyTypes "github.com/silentraja/Medskls/pkg/survey/types"
)

func wizardRows() []surveyTypes.QuestionRow {
	return []surveyTypes.QuestionRow{
		{QuestionID: 1, QuestionText: "Main concern?", QuestionType: surveyTypes.QUESTION_TYPE_SINGLE_CHOICE, DisplayOrder: 1, OptionID: 2, OptionText: "Acne"},
		{QuestionID: 1, QuestionText: "Main concern?", QuestionType: surveyTypes.QUESTION_TYPE_SINGLE_CHOICE, DisplayOrder: 1, OptionID: 3, OptionText: "Pigmentation"},
		{QuestionID: 99, QuestionText: "I consent to treatment", QuestionType: surveyTypes.QUESTION_TYPE_SINGLE_CHOICE, DisplayOrder: 14, OptionID: 50, OptionText: "Agree"},
	}
}

func newTestWizard(rows []surveyTypes.QuestionRow, identity *fakeIdentity) (*Wizard, *fakeDraftStore, *fakeSubmitter, *fakeNotifier) {
	drafts := newFakeDraftStore()
	submitter := &fakeSubmitter{}
	notifier := &fakeNotifier{sentCount: 2}
	w := New(Collaborators{
		Questions: &fakeQuestionSource{rows: rows},
		Uploader:  &fakeUploader{},
		Submitter: submitter,
		Identity:  identity,
		Notifier:  notifier,
		Drafts:    drafts,
	})
	return w, drafts, submitter, notifier
}

func TestWizardStart(t *testing.T) {
	ctx := context.Background()

	t.Run("fetch failure surfaces an error", func(t *testing.T) {
		w, _, _, _ := newTestWizard(nil, &fakeIdentity{})
		w.deps.Questions = &fakeQuestionSource{err: errors.New("boom")}
		if err := w.Start(ctx); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("fresh start seeds state from the fetched rows", func(t *testing.T) {
		w, _, _, _ := newTestWizard(wizardRows(), &fakeIdentity{})
		if err := w.Start(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w.Resumed() {
			t.Error("fresh start should not report a resumed draft")
		}
		q, ok := w.CurrentQuestion()
		if !ok || q.QuestionID != 1 {
			t.Errorf("unexpected current question: %v", q)
		}
	})
}

func TestWizardNextGating(t *testing.T) {
	ctx := context.Background()
	w, _, _, _ := newTestWizard(wizardRows(), &fakeIdentity{})
	if err := w.Start(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("next without an answer is rejected", func(t *testing.T) {
		result := w.Next()
		if result.Valid {
			t.Error("navigation should be rejected")
		}
		if w.Cursor() != (Cursor{}) {
			t.Errorf("cursor moved despite invalid question: %v", w.Cursor())
		}
	})

	t.Run("answering lets next advance", func(t *testing.T) {
		w.SelectOption(2)
		result := w.Next()
		if !result.Valid {
			t.Errorf("unexpected errors: %v", result.Errors)
		}
		// question 1 was the only member of section 1; section 2 is empty
		// so the cursor must reach the consent section
		q, ok := w.CurrentQuestion()
		if ok && q.QuestionID == 1 {
			t.Error("cursor did not advance")
		}
	})

	t.Run("unchecked consent blocks, checking unblocks", func(t *testing.T) {
		w.Next() // cross the empty section boundary if needed
		q, ok := w.CurrentQuestion()
		if !ok || q.QuestionID != 99 {
			t.Fatalf("expected consent question, got %v (cursor %v)", q, w.Cursor())
		}
		result := w.Next()
		if result.Valid {
			t.Error("unchecked consent should block")
		}
		if _, found := result.Errors["99"]; !found {
			t.Errorf("expected error keyed 99: %v", result.Errors)
		}
		w.SetConsent(99, true)
		result = w.Next()
		if !result.Valid {
			t.Errorf("checked consent should pass: %v", result.Errors)
		}
	})
}

func TestWizardSubmitWithoutIdentity(t *testing.T) {
	ctx := context.Background()
	w, drafts, submitter, _ := newTestWizard(wizardRows(), &fakeIdentity{known: false})
	if err := w.Start(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w.SelectOption(2)
	w.SetSpecifyText("1", "around the jawline")
	w.SetConsent(99, true)
	w.SetPersonalInfo(surveyTypes.PersonalInfo{FullName: "Pat Doe", Email: "pat@example.com"})

	outcome, err := w.Submit(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("redirects instead of submitting", func(t *testing.T) {
		if !outcome.RedirectToRegistration || outcome.Submitted {
			t.Errorf("unexpected outcome: %+v", outcome)
		}
		if len(submitter.submissions) != 0 {
			t.Error("nothing must be submitted on the detour")
		}
	})

	t.Run("draft and pre-fill channel are written", func(t *testing.T) {
		if ok, _ := drafts.Exists(ctx, surveyTypes.DraftKey); !ok {
			t.Error("draft not written")
		}
		if ok, _ := drafts.Exists(ctx, surveyTypes.PersonalInfoKey); !ok {
			t.Error("personal info channel not written")
		}
	})

	t.Run("resume restores state and consumes the draft", func(t *testing.T) {
		resumed, _, _, _ := newTestWizard(wizardRows(), &fakeIdentity{userID: 42, known: true})
		resumed.deps.Drafts = drafts
		if err := resumed.Start(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !resumed.Resumed() {
			t.Error("draft should have been consumed")
		}
		if got := resumed.store.Answer(1).OptionID; got != 2 {
			t.Errorf("answer not restored: %d", got)
		}
		if got := resumed.store.SpecifyText("1"); got != "around the jawline" {
			t.Errorf("specify text not restored: %q", got)
		}
		if !resumed.store.Consent(99) {
			t.Error("consent not restored")
		}
		if ok, _ := drafts.Exists(ctx, surveyTypes.DraftKey); ok {
			t.Error("draft must be deleted on restore")
		}
	})

	t.Run("second load finds no draft", func(t *testing.T) {
		again, _, _, _ := newTestWizard(wizardRows(), &fakeIdentity{userID: 42, known: true})
		again.deps.Drafts = drafts
		if err := again.Start(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again.Resumed() {
			t.Error("second start must not find a draft")
		}
	})
}

func TestWizardSubmitWithIdentity(t *testing.T) {
	ctx := context.Background()

	t.Run("submits reconciled responses and notifies", func(t *testing.T) {
		w, _, submitter, notifier := newTestWizard(wizardRows(), &fakeIdentity{userID: 42, known: true})
		if err := w.Start(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		w.SelectOption(2)
		w.SetConsent(99, true)
		w.SetPersonalInfo(surveyTypes.PersonalInfo{FullName: "Pat Doe"})

		outcome, err := w.Submit(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !outcome.Submitted || outcome.RedirectToRegistration {
			t.Errorf("unexpected outcome: %+v", outcome)
		}
		if outcome.NotifiedCount != 2 {
			t.Errorf("unexpected notified count: %d", outcome.NotifiedCount)
		}

		if len(submitter.submissions) != 1 {
			t.Fatalf("expected 1 submission, got %d", len(submitter.submissions))
		}
		sub := submitter.submissions[0]
		if sub.UserID != 42 {
			t.Errorf("unexpected user id: %d", sub.UserID)
		}
		row := findRow(t, sub.Responses, 1)
		if row.OptionID != "2" {
			t.Errorf("unexpected option id: %s", row.OptionID)
		}

		if len(notifier.notifications) != 1 {
			t.Fatalf("expected 1 notification, got %d", len(notifier.notifications))
		}
		n := notifier.notifications[0]
		if n.PatientName != "Pat Doe" {
			t.Errorf("unexpected patient name: %s", n.PatientName)
		}
		if len(n.RecipientRoles) != 2 {
			t.Errorf("unexpected recipient roles: %v", n.RecipientRoles)
		}
	})

	t.Run("notification failure degrades the message only", func(t *testing.T) {
		w, _, submitter, notifier := newTestWizard(wizardRows(), &fakeIdentity{userID: 42, known: true})
		notifier.err = errors.New("smtp down")
		if err := w.Start(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		w.SelectOption(2)

		outcome, err := w.Submit(ctx)
		if err != nil {
			t.Fatalf("submission must still succeed: %v", err)
		}
		if !outcome.Submitted {
			t.Error("submission should be reported successful")
		}
		if outcome.NotifiedCount != 0 {
			t.Errorf("unexpected notified count: %d", outcome.NotifiedCount)
		}
		if len(submitter.submissions) != 1 {
			t.Error("submission must not be rolled back")
		}
	})

	t.Run("submission failure surfaces and leaves state intact", func(t *testing.T) {
		w, _, submitter, _ := newTestWizard(wizardRows(), &fakeIdentity{userID: 42, known: true})
		submitter.err = errors.New("db down")
		if err := w.Start(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		w.SelectOption(2)

		if _, err := w.Submit(ctx); err == nil {
			t.Fatal("expected error")
		}
		if got := w.store.Answer(1).OptionID; got != 2 {
			t.Error("answers must survive a failed submission for retry")
		}

		// retry succeeds once the transport recovers
		submitter.err = nil
		outcome, err := w.Submit(ctx)
		if err != nil || !outcome.Submitted {
			t.Errorf("retry should succeed: %v %+v", err, outcome)
		}
	})

	t.Run("state resets after success", func(t *testing.T) {
		w, _, _, _ := newTestWizard(wizardRows(), &fakeIdentity{userID: 42, known: true})
		if err := w.Start(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		w.SelectOption(2)
		w.SetConsent(99, true)

		if _, err := w.Submit(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w.Cursor() != (Cursor{}) {
			t.Errorf("cursor not reset: %v", w.Cursor())
		}
		if !w.store.Answer(1).IsEmpty() {
			t.Error("answers not reset")
		}
		if w.store.Consent(99) {
			t.Error("consents not reset")
		}
	})
}

func TestWizardSubmitGuard(t *testing.T) {
	ctx := context.Background()
	w, _, submitter, _ := newTestWizard(wizardRows(), &fakeIdentity{userID: 42, known: true})
	submitter.started = make(chan struct{})
	submitter.block = make(chan struct{})
	if err := w.Start(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w.SelectOption(2)

	started := submitter.started
	done := make(chan error, 1)
	go func() {
		_, err := w.Submit(ctx)
		done <- err
	}()

	// second trigger while the first is pending must be rejected
	<-started
	if _, err := w.Submit(ctx); !errors.Is(err, ErrSubmissionInFlight) {
		t.Errorf("duplicate trigger not rejected: %v", err)
	}

	close(submitter.block)
	if err := <-done; err != nil {
		t.Errorf("first submission should succeed: %v", err)
	}

	// guard is cleared after completion
	w.SelectOption(2)
	if _, err := w.Submit(ctx); err != nil {
		t.Errorf("guard not cleared: %v", err)
	}
}
