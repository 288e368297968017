package models

// DailyEntryRequest represents the request body for submitting a daily entry.
// All six fields must be non-empty; validation happens in the service so the
// error shape matches the other input failures.
type DailyEntryRequest struct {
	G1 string `json:"g1"`
	R1 string `json:"r1"`
	G2 string `json:"g2"`
	R2 string `json:"r2"`
	G3 string `json:"g3"`
	R3 string `json:"r3"`
}

// WeeklyLetterRequest represents the request body for submitting a weekly letter
type WeeklyLetterRequest struct {
	LetterContent string `json:"letter_content"`
}
