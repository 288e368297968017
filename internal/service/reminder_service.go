package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/time/rate"

	"gratitude-be/internal/entities"
	"gratitude-be/internal/repository"
)

// Mailer sends one reminder email. Implemented by internal/mailer.
type Mailer interface {
	SendReminder(ctx context.Context, toEmail, username string) error
}

// ReminderReport summarizes one batch run
type ReminderReport struct {
	Candidates int
	Sent       int
	Failed     int
}

// ReminderService computes who has not submitted today and emails them.
// Stateless between runs: no retry or resume state is persisted.
type ReminderService struct {
	userRepo  repository.UserRepository
	dailyRepo repository.DailyRepository
	mailer    Mailer
	limiter   *rate.Limiter
	now       func() time.Time
}

// NewReminderService creates a reminder service. sendInterval is the fixed
// delay between sends, respecting the mail provider's rate limit.
func NewReminderService(userRepo repository.UserRepository, dailyRepo repository.DailyRepository, mailer Mailer, sendInterval time.Duration) *ReminderService {
	return &ReminderService{
		userRepo:  userRepo,
		dailyRepo: dailyRepo,
		mailer:    mailer,
		limiter:   rate.NewLimiter(rate.Every(sendInterval), 1),
		now:       time.Now,
	}
}

// UsersToRemind returns the reminder candidates minus today's submitters,
// in the order the candidates were fetched.
func (s *ReminderService) UsersToRemind() ([]*entities.User, error) {
	today := s.now().Format(DateLayout)

	candidates, err := s.userRepo.ListReminderCandidates()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	submittedIDs, err := s.dailyRepo.ListUserIDsByDate(today)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch today's submissions: %w", err)
	}

	submitted := make(map[string]bool, len(submittedIDs))
	for _, id := range submittedIDs {
		submitted[id] = true
	}

	var toRemind []*entities.User
	for _, user := range candidates {
		if !submitted[user.UserID] {
			toRemind = append(toRemind, user)
		}
	}

	log.Printf("Users eligible for reminders: %d", len(candidates))
	log.Printf("Users who submitted today: %d", len(submittedIDs))
	log.Printf("Users needing reminder: %d", len(toRemind))

	return toRemind, nil
}

// Run executes one batch. A failed send is logged and the batch continues;
// only the two fetches are fatal.
func (s *ReminderService) Run(ctx context.Context) (*ReminderReport, error) {
	toRemind, err := s.UsersToRemind()
	if err != nil {
		return nil, err
	}

	report := &ReminderReport{Candidates: len(toRemind)}

	for _, user := range toRemind {
		if err := s.limiter.Wait(ctx); err != nil {
			return report, fmt.Errorf("reminder batch interrupted: %w", err)
		}

		if err := s.mailer.SendReminder(ctx, user.Email, user.UserID); err != nil {
			log.Printf("Failed to send reminder to %s (%s): %v", user.UserID, user.Email, err)
			report.Failed++
			continue
		}
		log.Printf("Reminder sent to %s", user.UserID)
		report.Sent++
	}

	return report, nil
}
