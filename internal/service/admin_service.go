package service

import (
	"context"
	"fmt"

	"gratitude-be/internal/cache"
	"gratitude-be/internal/entities"
	"gratitude-be/internal/models"
	"gratitude-be/internal/repository"
)

const usersTable = "user_data"

// AdminService exposes the unfiltered table views. Every method checks the
// session's superuser flag itself; the route middleware is not the only gate.
type AdminService interface {
	AllUsers(sess models.Session) ([]*entities.User, error)
	AllDailyEntries(sess models.Session) ([]*entities.DailyEntry, error)
	AllWeeklyLetters(sess models.Session) ([]*entities.WeeklyLetter, error)
}

type adminService struct {
	userRepo   repository.UserRepository
	dailyRepo  repository.DailyRepository
	weeklyRepo repository.WeeklyRepository
	cache      cache.Cache
	ctx        context.Context
}

// NewAdminService creates a new admin service
func NewAdminService(userRepo repository.UserRepository, dailyRepo repository.DailyRepository, weeklyRepo repository.WeeklyRepository, cacheClient cache.Cache) AdminService {
	return &adminService{
		userRepo:   userRepo,
		dailyRepo:  dailyRepo,
		weeklyRepo: weeklyRepo,
		cache:      cacheClient,
		ctx:        context.Background(),
	}
}

// AllUsers returns every registered user, including email addresses
func (s *adminService) AllUsers(sess models.Session) ([]*entities.User, error) {
	if !sess.IsSuperuser {
		return nil, ErrNotSuperuser
	}

	cacheKey := cache.TableKey(usersTable)
	if s.cache != nil {
		var cached []*entities.User
		if err := s.cache.GetJSON(s.ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	users, err := s.userRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", usersTable, err)
	}
	s.cacheRows(cacheKey, users)
	return users, nil
}

// AllDailyEntries returns every daily entry with the user_id column intact
func (s *adminService) AllDailyEntries(sess models.Session) ([]*entities.DailyEntry, error) {
	if !sess.IsSuperuser {
		return nil, ErrNotSuperuser
	}

	cacheKey := cache.TableKey(dailyTable)
	if s.cache != nil {
		var cached []*entities.DailyEntry
		if err := s.cache.GetJSON(s.ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	entries, err := s.dailyRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", dailyTable, err)
	}
	s.cacheRows(cacheKey, entries)
	return entries, nil
}

// AllWeeklyLetters returns every weekly letter with the user_id column intact
func (s *adminService) AllWeeklyLetters(sess models.Session) ([]*entities.WeeklyLetter, error) {
	if !sess.IsSuperuser {
		return nil, ErrNotSuperuser
	}

	cacheKey := cache.TableKey(weeklyTable)
	if s.cache != nil {
		var cached []*entities.WeeklyLetter
		if err := s.cache.GetJSON(s.ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	letters, err := s.weeklyRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", weeklyTable, err)
	}
	s.cacheRows(cacheKey, letters)
	return letters, nil
}

func (s *adminService) cacheRows(cacheKey string, rows interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(s.ctx, cacheKey, rows, cache.ReadTTL); err != nil {
		fmt.Printf("Warning: failed to cache %s: %v\n", cacheKey, err)
	}
}
