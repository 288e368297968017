package entities

import "time"

// User represents a registered journal identity. The user_id doubles as the
// primary key and the display name.
type User struct {
	UserID           string    `json:"user_id"`
	Email            string    `json:"email"`
	RemindersEnabled bool      `json:"reminders_enabled"`
	CreatedAt        time.Time `json:"created_at"`
}
