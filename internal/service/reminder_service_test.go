package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gratitude-be/internal/entities"
)

type fakeMailer struct {
	sent    []string // usernames in send order
	failFor map[string]error
}

func (m *fakeMailer) SendReminder(_ context.Context, _, username string) error {
	if err := m.failFor[username]; err != nil {
		return err
	}
	m.sent = append(m.sent, username)
	return nil
}

func newTestReminderService(t *testing.T, userRepo *fakeUserRepo, dailyRepo *fakeDailyRepo, mailer *fakeMailer) *ReminderService {
	t.Helper()
	svc := NewReminderService(userRepo, dailyRepo, mailer, time.Millisecond)
	svc.now = fixedClock(t, "2024-06-03")
	return svc
}

func TestUsersToRemindSetDifference(t *testing.T) {
	userRepo := newFakeUserRepo()
	for _, u := range []struct{ id, email string }{
		{"A", "a@x.com"}, {"B", "b@x.com"}, {"C", "c@x.com"},
	} {
		_, err := userRepo.Create(u.id, u.email, true)
		require.NoError(t, err)
	}

	dailyRepo := newFakeDailyRepo()
	_, err := dailyRepo.Create(&entities.DailyEntry{
		UserID: "B", Date: "2024-06-03",
		G1: "g", R1: "r", G2: "g", R2: "r", G3: "g", R3: "r",
	})
	require.NoError(t, err)

	svc := newTestReminderService(t, userRepo, dailyRepo, &fakeMailer{})

	toRemind, err := svc.UsersToRemind()
	require.NoError(t, err)

	var ids []string
	for _, u := range toRemind {
		ids = append(ids, u.UserID)
	}
	assert.Equal(t, []string{"A", "C"}, ids)
}

func TestUsersToRemindExcludesUsersWithoutEmail(t *testing.T) {
	userRepo := newFakeUserRepo()
	_, err := userRepo.Create("NoEmail", "", true)
	require.NoError(t, err)
	_, err = userRepo.Create("HasEmail", "has@x.com", true)
	require.NoError(t, err)

	svc := newTestReminderService(t, userRepo, newFakeDailyRepo(), &fakeMailer{})

	toRemind, err := svc.UsersToRemind()
	require.NoError(t, err)
	require.Len(t, toRemind, 1)
	assert.Equal(t, "HasEmail", toRemind[0].UserID)
}

func TestUsersToRemindExcludesOptedOut(t *testing.T) {
	userRepo := newFakeUserRepo()
	_, err := userRepo.Create("OptedOut", "out@x.com", false)
	require.NoError(t, err)
	_, err = userRepo.Create("OptedIn", "in@x.com", true)
	require.NoError(t, err)

	svc := newTestReminderService(t, userRepo, newFakeDailyRepo(), &fakeMailer{})

	toRemind, err := svc.UsersToRemind()
	require.NoError(t, err)
	require.Len(t, toRemind, 1)
	assert.Equal(t, "OptedIn", toRemind[0].UserID)
}

func TestRunContinuesPastSendFailures(t *testing.T) {
	userRepo := newFakeUserRepo()
	for _, u := range []struct{ id, email string }{
		{"A", "a@x.com"}, {"B", "b@x.com"}, {"C", "c@x.com"},
	} {
		_, err := userRepo.Create(u.id, u.email, true)
		require.NoError(t, err)
	}

	mailer := &fakeMailer{failFor: map[string]error{"B": errors.New("provider returned status 400")}}
	svc := newTestReminderService(t, userRepo, newFakeDailyRepo(), mailer)

	report, err := svc.Run(context.Background())
	require.NoError(t, err, "per-recipient failures must not abort the batch")

	assert.Equal(t, 3, report.Candidates)
	assert.Equal(t, 2, report.Sent)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, []string{"A", "C"}, mailer.sent)
}

func TestRunFailsWhenUsersUnavailable(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.listErr = errors.New("connection refused")

	svc := newTestReminderService(t, userRepo, newFakeDailyRepo(), &fakeMailer{})

	_, err := svc.Run(context.Background())
	assert.Error(t, err, "an unreachable backend is fatal before any send")
}

func TestRunNothingToSend(t *testing.T) {
	userRepo := newFakeUserRepo()
	_, err := userRepo.Create("A", "a@x.com", true)
	require.NoError(t, err)

	dailyRepo := newFakeDailyRepo()
	_, err = dailyRepo.Create(&entities.DailyEntry{
		UserID: "A", Date: "2024-06-03",
		G1: "g", R1: "r", G2: "g", R2: "r", G3: "g", R3: "r",
	})
	require.NoError(t, err)

	mailer := &fakeMailer{}
	svc := newTestReminderService(t, userRepo, dailyRepo, mailer)

	report, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, report.Candidates)
	assert.Empty(t, mailer.sent)
}

var _ Mailer = (*fakeMailer)(nil)
