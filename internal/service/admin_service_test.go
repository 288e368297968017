package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gratitude-be/internal/entities"
	"gratitude-be/internal/models"
)

func newPopulatedAdminService(t *testing.T) AdminService {
	t.Helper()

	userRepo := newFakeUserRepo()
	dailyRepo := newFakeDailyRepo()
	weeklyRepo := newFakeWeeklyRepo()

	_, err := userRepo.Create("Sarah9012", "sarah@example.com", true)
	require.NoError(t, err)
	_, err = userRepo.Create("Alex2331", "alex@example.com", true)
	require.NoError(t, err)

	_, err = dailyRepo.Create(&entities.DailyEntry{
		UserID: "Sarah9012", Date: "2024-06-03",
		G1: "g", R1: "r", G2: "g", R2: "r", G3: "g", R3: "r",
	})
	require.NoError(t, err)

	_, err = weeklyRepo.Create(&entities.WeeklyLetter{
		UserID: "Alex2331", WeekStart: "2024-06-03", LetterContent: "hello",
	})
	require.NoError(t, err)

	return NewAdminService(userRepo, dailyRepo, weeklyRepo, nil)
}

func TestAdminViewsRequireSuperuser(t *testing.T) {
	svc := newPopulatedAdminService(t)
	regular := models.Session{UserID: "Sarah9012", IsSuperuser: false}

	_, err := svc.AllUsers(regular)
	assert.ErrorIs(t, err, ErrNotSuperuser)
	_, err = svc.AllDailyEntries(regular)
	assert.ErrorIs(t, err, ErrNotSuperuser)
	_, err = svc.AllWeeklyLetters(regular)
	assert.ErrorIs(t, err, ErrNotSuperuser)
}

func TestAdminViewsReturnAllRowsWithUserIDs(t *testing.T) {
	svc := newPopulatedAdminService(t)
	super := models.Session{UserID: "Sneha1234", IsSuperuser: true}

	users, err := svc.AllUsers(super)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	entries, err := svc.AllDailyEntries(super)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Sarah9012", entries[0].UserID, "superuser rows keep the user_id column")

	letters, err := svc.AllWeeklyLetters(super)
	require.NoError(t, err)
	require.Len(t, letters, 1)
	assert.Equal(t, "Alex2331", letters[0].UserID)
}
