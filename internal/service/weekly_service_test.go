package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gratitude-be/internal/models"
)

func TestSubmitWeeklyTagsMonday(t *testing.T) {
	repo := newFakeWeeklyRepo()
	svc := NewWeeklyService(repo, nil).(*weeklyService)
	svc.now = fixedClock(t, "2024-06-05") // a Wednesday

	sess := models.Session{UserID: "Sarah9012"}

	saved, err := svc.Submit(sess, &models.WeeklyLetterRequest{LetterContent: "Dear future me"})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-03", saved.WeekStart)
	assert.Equal(t, "Dear future me", saved.LetterContent)
}

func TestSubmitWeeklyRejectsEmptyContent(t *testing.T) {
	repo := newFakeWeeklyRepo()
	svc := NewWeeklyService(repo, nil).(*weeklyService)
	svc.now = fixedClock(t, "2024-06-05")

	_, err := svc.Submit(models.Session{UserID: "Sarah9012"}, &models.WeeklyLetterRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	letters, err := repo.ListAll()
	require.NoError(t, err)
	assert.Empty(t, letters)
}

func TestSubmitWeeklyTwiceSameWeek(t *testing.T) {
	repo := newFakeWeeklyRepo()
	svc := NewWeeklyService(repo, nil).(*weeklyService)
	sess := models.Session{UserID: "Sarah9012"}

	svc.now = fixedClock(t, "2024-06-03") // Monday
	_, err := svc.Submit(sess, &models.WeeklyLetterRequest{LetterContent: "first"})
	require.NoError(t, err)

	// Later the same ISO week, still rejected
	svc.now = fixedClock(t, "2024-06-09") // Sunday of the same week
	_, err = svc.Submit(sess, &models.WeeklyLetterRequest{LetterContent: "second"})
	assert.ErrorIs(t, err, ErrAlreadySubmitted)

	submitted, err := svc.HasSubmittedThisWeek(sess)
	require.NoError(t, err)
	assert.True(t, submitted)

	letters, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, letters, 1)
	assert.Equal(t, "first", letters[0].LetterContent, "no overwrite")
}

func TestSubmitWeeklyNextWeekAllowed(t *testing.T) {
	repo := newFakeWeeklyRepo()
	svc := NewWeeklyService(repo, nil).(*weeklyService)
	sess := models.Session{UserID: "Sarah9012"}

	svc.now = fixedClock(t, "2024-06-09") // Sunday
	_, err := svc.Submit(sess, &models.WeeklyLetterRequest{LetterContent: "week one"})
	require.NoError(t, err)

	svc.now = fixedClock(t, "2024-06-10") // the following Monday
	submitted, err := svc.HasSubmittedThisWeek(sess)
	require.NoError(t, err)
	assert.False(t, submitted, "week boundary must be recomputed per call, never cached")

	saved, err := svc.Submit(sess, &models.WeeklyLetterRequest{LetterContent: "week two"})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-10", saved.WeekStart)
}

func TestCurrentLetterBeforeAndAfterSubmit(t *testing.T) {
	repo := newFakeWeeklyRepo()
	svc := NewWeeklyService(repo, nil).(*weeklyService)
	svc.now = fixedClock(t, "2024-06-05")

	sess := models.Session{UserID: "Sarah9012"}

	_, err := svc.CurrentLetter(sess)
	assert.ErrorIs(t, err, ErrNotSubmitted)

	_, err = svc.Submit(sess, &models.WeeklyLetterRequest{LetterContent: "hello"})
	require.NoError(t, err)

	letter, err := svc.CurrentLetter(sess)
	require.NoError(t, err)
	assert.Equal(t, "hello", letter.LetterContent)
}
