package entities

import "time"

// DailyEntry is one user's three gratitude items plus reasons for one calendar
// date. At most one row exists per (user_id, date); the unique constraint in
// the daily_gratitude table is the authoritative guard.
type DailyEntry struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Date      string    `json:"date"` // ISO-8601 date, e.g. 2024-06-03
	G1        string    `json:"g1"`
	R1        string    `json:"r1"`
	G2        string    `json:"g2"`
	R2        string    `json:"r2"`
	G3        string    `json:"g3"`
	R3        string    `json:"r3"`
	CreatedAt time.Time `json:"created_at"`
}
