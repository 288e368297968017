package models

import "time"

// AuthResponse represents the response after a successful login or registration
type AuthResponse struct {
	Username    string    `json:"username"`
	Email       string    `json:"email,omitempty"`
	IsSuperuser bool      `json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	Token       string    `json:"token"` // session JWT
}

// RegisterResponse represents the response after user registration
type RegisterResponse struct {
	Message string       `json:"message"`
	User    AuthResponse `json:"user"`
}
