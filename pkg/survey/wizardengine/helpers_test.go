package wizardengine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	surveyTypes "github.com/silentraja/Medskls/pkg/survey/types"
)

func bytesReader(b []byte) io.Reader {
	return bytes.NewReader(b)
}

type fakeUploader struct {
	failNext bool
	requests []UploadRequest
}

func (u *fakeUploader) Upload(ctx context.Context, req UploadRequest) (string, error) {
	u.requests = append(u.requests, req)
	if u.failNext {
		u.failNext = false
		return "", errors.New("upload failed")
	}
	return fmt.Sprintf("%s%s/%s", req.DestinationPath, req.Title, req.Filename), nil
}

type fakeDraftStore struct {
	mu      sync.Mutex
	entries map[string][]byte
	saveErr error
}

func newFakeDraftStore() *fakeDraftStore {
	return &fakeDraftStore{entries: map[string][]byte{}}
}

func (s *fakeDraftStore) Save(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.entries[key] = data
	return nil
}

func (s *fakeDraftStore) Take(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.entries[key]
	if !ok {
		return nil, false, nil
	}
	delete(s.entries, key)
	return data, true, nil
}

func (s *fakeDraftStore) Exists(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[key]
	return ok, nil
}

type fakeQuestionSource struct {
	rows []surveyTypes.QuestionRow
	err  error
}

func (q *fakeQuestionSource) FetchQuestionRows(ctx context.Context) ([]surveyTypes.QuestionRow, error) {
	return q.rows, q.err
}

type fakeSubmitter struct {
	submissions []surveyTypes.Submission
	err         error
	started     chan struct{}
	block       chan struct{}
}

func (s *fakeSubmitter) SubmitApplication(ctx context.Context, submission surveyTypes.Submission) error {
	if s.started != nil {
		close(s.started)
		s.started = nil
	}
	if s.block != nil {
		<-s.block
	}
	if s.err != nil {
		return s.err
	}
	s.submissions = append(s.submissions, submission)
	return nil
}

type fakeIdentity struct {
	userID int64
	known  bool
}

func (i *fakeIdentity) CurrentUserID(ctx context.Context) (int64, bool) {
	return i.userID, i.known
}

type fakeNotifier struct {
	notifications []Notification
	sentCount     int
	err           error
}

func (n *fakeNotifier) NotifySubmission(ctx context.Context, notification Notification) (int, error) {
	n.notifications = append(n.notifications, notification)
	if n.err != nil {
		return 0, n.err
	}
	return n.sentCount, nil
}

type fakeCamera struct {
	acquireErr error
	frameErr   error
	frame      []byte
	acquired   bool
	released   int
}

func (c *fakeCamera) Acquire(ctx context.Context) error {
	if c.acquireErr != nil {
		return c.acquireErr
	}
	c.acquired = true
	return nil
}

func (c *fakeCamera) Frame(ctx context.Context) ([]byte, error) {
	if c.frameErr != nil {
		return nil, c.frameErr
	}
	return c.frame, nil
}

func (c *fakeCamera) Release() {
	c.released++
}
