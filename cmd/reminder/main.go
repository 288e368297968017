package main

import (
	"context"
	"log"
	"time"

	"gratitude-be/internal/config"
	"gratitude-be/internal/database"
	"gratitude-be/internal/mailer"
	"gratitude-be/internal/repository"
	"gratitude-be/internal/service"
)

// Standalone batch process, scheduled externally (cron or CI trigger). It
// shares no runtime state with the web server; it reads the same tables and
// sends one reminder per user who has not submitted today's entry.
func main() {
	log.Printf("Starting daily reminder job at %s", time.Now().Format("2006-01-02 15:04:05"))

	// All required variables must be present or the process exits with code 1
	cfg := config.LoadReminder()

	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("FATAL: failed to connect to database: %v", err)
	}
	defer db.Close()

	mailClient := mailer.NewClient(mailer.Config{
		BaseURL:     cfg.MailAPIURL,
		PublicKey:   cfg.MailPublicKey,
		PrivateKey:  cfg.MailPrivateKey,
		SenderEmail: cfg.SenderEmail,
		SenderName:  cfg.SenderName,
		AppLink:     cfg.AppLink,
	})

	reminderService := service.NewReminderService(
		repository.NewUserRepository(db),
		repository.NewDailyRepository(db),
		mailClient,
		time.Duration(cfg.SendIntervalMS)*time.Millisecond,
	)

	report, err := reminderService.Run(context.Background())
	if err != nil {
		log.Fatalf("FATAL: reminder job failed: %v", err)
	}

	log.Printf("Daily reminder job finished: %d candidates, %d sent, %d failed",
		report.Candidates, report.Sent, report.Failed)
}
