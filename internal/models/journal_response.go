package models

import "time"

// DailyEntryResponse is a daily entry as shown to its owner. It deliberately
// carries no user_id; only the superuser view exposes that column.
type DailyEntryResponse struct {
	Date      string    `json:"date"`
	G1        string    `json:"g1"`
	R1        string    `json:"r1"`
	G2        string    `json:"g2"`
	R2        string    `json:"r2"`
	G3        string    `json:"g3"`
	R3        string    `json:"r3"`
	CreatedAt time.Time `json:"created_at"`
}

// WeeklyLetterResponse is a weekly letter as shown to its owner, without user_id.
type WeeklyLetterResponse struct {
	WeekStart     string    `json:"week_start"`
	LetterContent string    `json:"letter_content"`
	CreatedAt     time.Time `json:"created_at"`
}
