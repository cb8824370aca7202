package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ChinmayIngle26/College-hub-sub000/internal/config"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/database"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/models"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/store"
)

const (
	testStudentID   = "stu-1"
	testStudentName = "Asha Rao"
	testParentEmail = "parent@example.com"
)

func newTestStore(t *testing.T, opts ...store.GormOption) *store.GormStore {
	t.Helper()

	db, err := database.Initialize(config.DatabaseConfig{
		Driver:       "sqlite",
		SQLitePath:   "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		MaxLifetime:  300,
		LogLevel:     "silent",
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))

	s := store.NewGormStore(db, opts...)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.SaveStudentProfile(context.Background(), &models.StudentProfile{
		ID:          testStudentID,
		Name:        testStudentName,
		Email:       "asha@college.edu",
		ParentEmail: testParentEmail,
	}))
	return s
}

func sickLeaveForm() models.LeaveForm {
	return models.LeaveForm{
		LeaveType: models.LeaveTypeSick,
		StartDate: "2025-03-01",
		EndDate:   "2025-03-03",
		Reason:    "Flu, need rest for three days.",
	}
}

type fakeGenerator struct {
	mu      sync.Mutex
	draft   *EmailDraft
	err     error
	prompts []string
}

func newFakeGenerator() *fakeGenerator {
	return &fakeGenerator{draft: &EmailDraft{
		Subject: "Leave Application Submitted for " + testStudentName,
		Body: "<p>Dear Parent,</p><p>A leave application was submitted by " + testStudentName +
			" for Sick Leave from 2025-03-01 to 2025-03-03.</p><p>It is pending review.</p>",
	}}
}

func (g *fakeGenerator) GenerateEmailDraft(_ context.Context, prompt string) (*EmailDraft, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return nil, g.err
	}
	d := *g.draft
	return &d, nil
}

func (g *fakeGenerator) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.prompts)
}

type fakeMailer struct {
	mu         sync.Mutex
	configured bool
	err        error
	sent       []EmailMessage
}

func (m *fakeMailer) Configured() bool { return m.configured }

func (m *fakeMailer) Send(_ context.Context, msg EmailMessage) error {
	if !m.configured {
		return ErrMailerNotConfigured
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *fakeMailer) messages() []EmailMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]EmailMessage(nil), m.sent...)
}

// flakyProfileStore fails profile reads after the first n succeed.
type flakyProfileStore struct {
	store.Store
	mu        sync.Mutex
	remaining int
}

func (s *flakyProfileStore) GetStudentProfile(ctx context.Context, id string) (*models.StudentProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.remaining <= 0 {
		return nil, context.DeadlineExceeded
	}
	s.remaining--
	return s.Store.GetStudentProfile(ctx, id)
}

func steppingClock(start time.Time, step time.Duration) func() time.Time {
	var mu sync.Mutex
	next := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now := next
		next = next.Add(step)
		return now
	}
}
