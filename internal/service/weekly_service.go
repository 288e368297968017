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

const weeklyTable = "weekly_letters"

// WeeklyService defines the interface for the weekly letter flow
type WeeklyService interface {
	Submit(sess models.Session, req *models.WeeklyLetterRequest) (*models.WeeklyLetterResponse, error)
	CurrentLetter(sess models.Session) (*models.WeeklyLetterResponse, error)
	HasSubmittedThisWeek(sess models.Session) (bool, error)
	History(sess models.Session) ([]*models.WeeklyLetterResponse, error)
}

type weeklyService struct {
	repo  repository.WeeklyRepository
	cache cache.Cache
	ctx   context.Context
	now   func() time.Time
}

// NewWeeklyService creates a new weekly letter service
func NewWeeklyService(repo repository.WeeklyRepository, cacheClient cache.Cache) WeeklyService {
	return &weeklyService{
		repo:  repo,
		cache: cacheClient,
		ctx:   context.Background(),
		now:   time.Now,
	}
}

// Submit stores the current week's letter, tagged with the Monday of the ISO
// week containing today. One letter per (user, week); no overwrite path.
func (s *weeklyService) Submit(sess models.Session, req *models.WeeklyLetterRequest) (*models.WeeklyLetterResponse, error) {
	if req.LetterContent == "" {
		return nil, fmt.Errorf("%w: please write something for your weekly letter", ErrInvalidInput)
	}

	weekStart := WeekStart(s.now())

	if _, err := s.repo.FindByUserAndWeek(sess.UserID, weekStart); err == nil {
		return nil, ErrAlreadySubmitted
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check this week's submission: %w", err)
	}

	letter := &entities.WeeklyLetter{
		UserID:        sess.UserID,
		WeekStart:     weekStart,
		LetterContent: req.LetterContent,
	}

	saved, err := s.repo.Create(letter)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadySubmitted
		}
		return nil, fmt.Errorf("failed to save weekly letter: %w", err)
	}

	s.invalidateCache()

	return toWeeklyResponse(saved), nil
}

// CurrentLetter returns this week's letter, or ErrNotSubmitted if the form
// should be shown instead.
func (s *weeklyService) CurrentLetter(sess models.Session) (*models.WeeklyLetterResponse, error) {
	weekStart := WeekStart(s.now())
	letter, err := s.repo.FindByUserAndWeek(sess.UserID, weekStart)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotSubmitted
		}
		return nil, fmt.Errorf("failed to load this week's letter: %w", err)
	}
	return toWeeklyResponse(letter), nil
}

// HasSubmittedThisWeek reports whether a letter exists for the current ISO week
func (s *weeklyService) HasSubmittedThisWeek(sess models.Session) (bool, error) {
	_, err := s.CurrentLetter(sess)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrNotSubmitted) {
		return false, nil
	}
	return false, err
}

// History returns the user's own letters, newest first, cached for 60s
func (s *weeklyService) History(sess models.Session) ([]*models.WeeklyLetterResponse, error) {
	cacheKey := cache.UserKey(weeklyTable, sess.UserID)

	if s.cache != nil {
		var cached []*models.WeeklyLetterResponse
		if err := s.cache.GetJSON(s.ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	letters, err := s.repo.ListByUser(sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load weekly history: %w", err)
	}

	responses := make([]*models.WeeklyLetterResponse, len(letters))
	for i, letter := range letters {
		responses[i] = toWeeklyResponse(letter)
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(s.ctx, cacheKey, responses, cache.ReadTTL); err != nil {
			fmt.Printf("Warning: failed to cache weekly history for %s: %v\n", sess.UserID, err)
		}
	}

	return responses, nil
}

func (s *weeklyService) invalidateCache() {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateAll(s.ctx); err != nil {
		fmt.Printf("Warning: failed to invalidate cache: %v\n", err)
	}
}

func toWeeklyResponse(letter *entities.WeeklyLetter) *models.WeeklyLetterResponse {
	return &models.WeeklyLetterResponse{
		WeekStart:     letter.WeekStart,
		LetterContent: letter.LetterContent,
		CreatedAt:     letter.CreatedAt,
	}
}
