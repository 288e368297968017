package models

// RegisterRequest represents the request body for user registration
type RegisterRequest struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required"`
	EnableReminders *bool  `json:"enable_reminders,omitempty"` // defaults to true when omitted
}

// LoginRequest represents the request body for user login.
// Only the username is checked; there is no password. This is a deliberate
// non-goal: anyone who knows a username can log in as that user.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
}
