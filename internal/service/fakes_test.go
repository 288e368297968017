package service

import (
	"time"

	"gratitude-be/internal/entities"
	"gratitude-be/internal/repository"
)

// In-memory repository fakes that honor the same uniqueness contracts as the
// real tables, so the services can be exercised without a database.

type fakeUserRepo struct {
	users   map[string]*entities.User
	order   []string
	listErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User)}
}

func (r *fakeUserRepo) Create(userID, email string, remindersEnabled bool) (*entities.User, error) {
	if _, exists := r.users[userID]; exists {
		return nil, repository.ErrDuplicate
	}
	user := &entities.User{
		UserID:           userID,
		Email:            email,
		RemindersEnabled: remindersEnabled,
		CreatedAt:        time.Now(),
	}
	r.users[userID] = user
	r.order = append(r.order, userID)
	return user, nil
}

func (r *fakeUserRepo) Exists(userID string) (bool, error) {
	_, exists := r.users[userID]
	return exists, nil
}

func (r *fakeUserRepo) FindByID(userID string) (*entities.User, error) {
	user, exists := r.users[userID]
	if !exists {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) ListAll() ([]*entities.User, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var users []*entities.User
	for _, id := range r.order {
		users = append(users, r.users[id])
	}
	return users, nil
}

func (r *fakeUserRepo) ListReminderCandidates() ([]*entities.User, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var users []*entities.User
	for _, id := range r.order {
		user := r.users[id]
		if user.Email != "" && user.RemindersEnabled {
			users = append(users, user)
		}
	}
	return users, nil
}

type dailyKey struct {
	userID string
	date   string
}

type fakeDailyRepo struct {
	entries map[dailyKey]*entities.DailyEntry
	order   []dailyKey
	nextID  int64
}

func newFakeDailyRepo() *fakeDailyRepo {
	return &fakeDailyRepo{entries: make(map[dailyKey]*entities.DailyEntry)}
}

func (r *fakeDailyRepo) Create(entry *entities.DailyEntry) (*entities.DailyEntry, error) {
	key := dailyKey{entry.UserID, entry.Date}
	if _, exists := r.entries[key]; exists {
		return nil, repository.ErrDuplicate
	}
	r.nextID++
	saved := *entry
	saved.ID = r.nextID
	saved.CreatedAt = time.Now()
	r.entries[key] = &saved
	r.order = append(r.order, key)
	return &saved, nil
}

func (r *fakeDailyRepo) FindByUserAndDate(userID, date string) (*entities.DailyEntry, error) {
	entry, exists := r.entries[dailyKey{userID, date}]
	if !exists {
		return nil, repository.ErrNotFound
	}
	return entry, nil
}

func (r *fakeDailyRepo) ListByUser(userID string) ([]*entities.DailyEntry, error) {
	var entries []*entities.DailyEntry
	for _, key := range r.order {
		if key.userID == userID {
			entries = append(entries, r.entries[key])
		}
	}
	return entries, nil
}

func (r *fakeDailyRepo) ListAll() ([]*entities.DailyEntry, error) {
	var entries []*entities.DailyEntry
	for _, key := range r.order {
		entries = append(entries, r.entries[key])
	}
	return entries, nil
}

func (r *fakeDailyRepo) ListUserIDsByDate(date string) ([]string, error) {
	var userIDs []string
	for _, key := range r.order {
		if key.date == date {
			userIDs = append(userIDs, key.userID)
		}
	}
	return userIDs, nil
}

type weeklyKey struct {
	userID    string
	weekStart string
}

type fakeWeeklyRepo struct {
	letters map[weeklyKey]*entities.WeeklyLetter
	order   []weeklyKey
	nextID  int64
}

func newFakeWeeklyRepo() *fakeWeeklyRepo {
	return &fakeWeeklyRepo{letters: make(map[weeklyKey]*entities.WeeklyLetter)}
}

func (r *fakeWeeklyRepo) Create(letter *entities.WeeklyLetter) (*entities.WeeklyLetter, error) {
	key := weeklyKey{letter.UserID, letter.WeekStart}
	if _, exists := r.letters[key]; exists {
		return nil, repository.ErrDuplicate
	}
	r.nextID++
	saved := *letter
	saved.ID = r.nextID
	saved.CreatedAt = time.Now()
	r.letters[key] = &saved
	r.order = append(r.order, key)
	return &saved, nil
}

func (r *fakeWeeklyRepo) FindByUserAndWeek(userID, weekStart string) (*entities.WeeklyLetter, error) {
	letter, exists := r.letters[weeklyKey{userID, weekStart}]
	if !exists {
		return nil, repository.ErrNotFound
	}
	return letter, nil
}

func (r *fakeWeeklyRepo) ListByUser(userID string) ([]*entities.WeeklyLetter, error) {
	var letters []*entities.WeeklyLetter
	for _, key := range r.order {
		if key.userID == userID {
			letters = append(letters, r.letters[key])
		}
	}
	return letters, nil
}

func (r *fakeWeeklyRepo) ListAll() ([]*entities.WeeklyLetter, error) {
	var letters []*entities.WeeklyLetter
	for _, key := range r.order {
		letters = append(letters, r.letters[key])
	}
	return letters, nil
}
