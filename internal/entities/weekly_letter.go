package entities

import "time"

// WeeklyLetter is one user's free-text reflection for one ISO week, keyed by
// that week's Monday. At most one row per (user_id, week_start).
type WeeklyLetter struct {
	ID            int64     `json:"id"`
	UserID        string    `json:"user_id"`
	WeekStart     string    `json:"week_start"` // ISO-8601 date, always a Monday
	LetterContent string    `json:"letter_content"`
	CreatedAt     time.Time `json:"created_at"`
}
