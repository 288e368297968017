package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gratitude-be/internal/cache"
	"gratitude-be/internal/entities"
	"gratitude-be/internal/models"
	"gratitude-be/internal/repository"
)

const dailyTable = "daily_gratitude"

// DailyService defines the interface for the daily gratitude flow
type DailyService interface {
	Submit(sess models.Session, req *models.DailyEntryRequest) (*models.DailyEntryResponse, error)
	TodayEntry(sess models.Session) (*models.DailyEntryResponse, error)
	HasSubmittedToday(sess models.Session) (bool, error)
	History(sess models.Session) ([]*models.DailyEntryResponse, error)
}

type dailyService struct {
	repo  repository.DailyRepository
	cache cache.Cache
	ctx   context.Context
	now   func() time.Time
}

// NewDailyService creates a new daily entry service
func NewDailyService(repo repository.DailyRepository, cacheClient cache.Cache) DailyService {
	return &dailyService{
		repo:  repo,
		cache: cacheClient,
		ctx:   context.Background(),
		now:   time.Now,
	}
}

// Submit validates and stores today's entry. The per-day state machine is
// one-way: once Submitted there is no update or delete path. The unique
// constraint on (user_id, date) is the authoritative guard; the pre-check
// only gives a friendlier error before the insert.
func (s *dailyService) Submit(sess models.Session, req *models.DailyEntryRequest) (*models.DailyEntryResponse, error) {
	fields := []string{req.G1, req.R1, req.G2, req.R2, req.G3, req.R3}
	for _, f := range fields {
		if f == "" {
			return nil, fmt.Errorf("%w: please fill in all 3 gratitude items and their reasons", ErrInvalidInput)
		}
	}

	today := s.now().Format(DateLayout)

	if _, err := s.repo.FindByUserAndDate(sess.UserID, today); err == nil {
		return nil, ErrAlreadySubmitted
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check today's submission: %w", err)
	}

	entry := &entities.DailyEntry{
		UserID: sess.UserID,
		Date:   today,
		G1:     req.G1, R1: req.R1,
		G2: req.G2, R2: req.R2,
		G3: req.G3, R3: req.R3,
	}

	saved, err := s.repo.Create(entry)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadySubmitted
		}
		return nil, fmt.Errorf("failed to save daily entry: %w", err)
	}

	s.invalidateCache()

	return toDailyResponse(saved), nil
}

// TodayEntry returns today's entry so the frontend can show the read-only
// view instead of the form. ErrNotSubmitted means the form should be shown.
func (s *dailyService) TodayEntry(sess models.Session) (*models.DailyEntryResponse, error) {
	today := s.now().Format(DateLayout)
	entry, err := s.repo.FindByUserAndDate(sess.UserID, today)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotSubmitted
		}
		return nil, fmt.Errorf("failed to load today's entry: %w", err)
	}
	return toDailyResponse(entry), nil
}

// HasSubmittedToday reports whether an entry dated today exists for the user
func (s *dailyService) HasSubmittedToday(sess models.Session) (bool, error) {
	_, err := s.TodayEntry(sess)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrNotSubmitted) {
		return false, nil
	}
	return false, err
}

// History returns the user's own entries, newest first, cached for 60s.
// The user_id column never appears in these responses.
func (s *dailyService) History(sess models.Session) ([]*models.DailyEntryResponse, error) {
	cacheKey := cache.UserKey(dailyTable, sess.UserID)

	if s.cache != nil {
		var cached []*models.DailyEntryResponse
		if err := s.cache.GetJSON(s.ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	entries, err := s.repo.ListByUser(sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily history: %w", err)
	}

	responses := make([]*models.DailyEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = toDailyResponse(entry)
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(s.ctx, cacheKey, responses, cache.ReadTTL); err != nil {
			fmt.Printf("Warning: failed to cache daily history for %s: %v\n", sess.UserID, err)
		}
	}

	return responses, nil
}

func (s *dailyService) invalidateCache() {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateAll(s.ctx); err != nil {
		fmt.Printf("Warning: failed to invalidate cache: %v\n", err)
	}
}

func toDailyResponse(entry *entities.DailyEntry) *models.DailyEntryResponse {
	return &models.DailyEntryResponse{
		Date:      entry.Date,
		G1:        entry.G1,
		R1:        entry.R1,
		G2:        entry.G2,
		R2:        entry.R2,
		G3:        entry.G3,
		R3:        entry.R3,
		CreatedAt: entry.CreatedAt,
	}
}
