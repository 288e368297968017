package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gratitude-be/internal/cache"
	"gratitude-be/internal/jwt"
	"gratitude-be/internal/models"
	"gratitude-be/internal/repository"
)

// AuthService defines the interface for identity and registration logic
type AuthService interface {
	Register(req *models.RegisterRequest) (*models.RegisterResponse, error)
	Login(req *models.LoginRequest) (*models.AuthResponse, error)
	UserExists(username string) (bool, error)
}

type authService struct {
	userRepo      repository.UserRepository
	jwtService    *jwt.JWTService
	cache         cache.Cache
	superuserName string
	ctx           context.Context
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService, cacheClient cache.Cache, superuserName string) AuthService {
	return &authService{
		userRepo:      userRepo,
		jwtService:    jwtService,
		cache:         cacheClient,
		superuserName: superuserName,
		ctx:           context.Background(),
	}
}

// isValidEmail performs a loose structural check: a non-empty local part,
// exactly one @, and a dot with characters on both sides after it. Not
// RFC-complete on purpose.
func isValidEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return false
	}
	domain := email[at+1:]
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

// Register validates the username/email pair, rejects duplicates and creates
// the user. The new session token is returned so registration logs the user
// straight in.
func (s *authService) Register(req *models.RegisterRequest) (*models.RegisterResponse, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	if username == "" || email == "" {
		return nil, fmt.Errorf("%w: both username and email are required", ErrInvalidInput)
	}
	if !isValidEmail(email) {
		return nil, fmt.Errorf("%w: please enter a valid email address", ErrInvalidInput)
	}

	// Courtesy pre-check; the unique constraint on user_data is authoritative.
	exists, err := s.userRepo.Exists(username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username availability: %w", err)
	}
	if exists {
		return nil, ErrDuplicateUser
	}

	enableReminders := true
	if req.EnableReminders != nil {
		enableReminders = *req.EnableReminders
	}

	user, err := s.userRepo.Create(username, email, enableReminders)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.InvalidateAll(s.ctx); err != nil {
			fmt.Printf("Warning: failed to invalidate cache after registration: %v\n", err)
		}
	}

	token, err := s.jwtService.GenerateToken(user.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.RegisterResponse{
		Message: "User registered successfully",
		User: models.AuthResponse{
			Username:    user.UserID,
			Email:       user.Email,
			IsSuperuser: s.superuserName != "" && user.UserID == s.superuserName,
			CreatedAt:   user.CreatedAt,
			Token:       token,
		},
	}, nil
}

// Login succeeds iff the username exists. There is no further credential
// check; this is explicitly not an authentication boundary.
func (s *authService) Login(req *models.LoginRequest) (*models.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: please enter your username", ErrInvalidInput)
	}

	user, err := s.userRepo.FindByID(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Username:    user.UserID,
		Email:       user.Email,
		IsSuperuser: s.superuserName != "" && user.UserID == s.superuserName,
		CreatedAt:   user.CreatedAt,
		Token:       token,
	}, nil
}

// UserExists reports whether a user with that exact username is registered
func (s *authService) UserExists(username string) (bool, error) {
	return s.userRepo.Exists(username)
}
