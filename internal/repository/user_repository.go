package repository

import (
	"database/sql"
	"fmt"

	"gratitude-be/internal/entities"
)

// UserRepository defines the interface for user_data table operations
type UserRepository interface {
	Create(userID, email string, remindersEnabled bool) (*entities.User, error)
	Exists(userID string) (bool, error)
	FindByID(userID string) (*entities.User, error)
	ListAll() ([]*entities.User, error)
	ListReminderCandidates() ([]*entities.User, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user. Returns ErrDuplicate if the username is taken.
func (r *userRepository) Create(userID, email string, remindersEnabled bool) (*entities.User, error) {
	query := `
		INSERT INTO user_data (user_id, email, reminders_enabled)
		VALUES ($1, $2, $3)
		RETURNING user_id, email, reminders_enabled, created_at
	`

	var user entities.User
	err := r.db.QueryRow(query, userID, email, remindersEnabled).Scan(
		&user.UserID,
		&user.Email,
		&user.RemindersEnabled,
		&user.CreatedAt,
	)

	if err != nil {
		if err = translateInsertError(err); err == ErrDuplicate {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// Exists reports whether a user with that exact user_id is registered
func (r *userRepository) Exists(userID string) (bool, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM user_data WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return count > 0, nil
}

// FindByID finds a user by user_id
func (r *userRepository) FindByID(userID string) (*entities.User, error) {
	query := `
		SELECT user_id, email, reminders_enabled, created_at
		FROM user_data
		WHERE user_id = $1
	`

	var user entities.User
	err := r.db.QueryRow(query, userID).Scan(
		&user.UserID,
		&user.Email,
		&user.RemindersEnabled,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

// ListAll retrieves every registered user (superuser view)
func (r *userRepository) ListAll() ([]*entities.User, error) {
	query := `
		SELECT user_id, email, reminders_enabled, created_at
		FROM user_data
		ORDER BY created_at DESC
	`
	return r.list(query)
}

// ListReminderCandidates retrieves users eligible for the daily reminder:
// a recorded email address and reminders not opted out at registration.
func (r *userRepository) ListReminderCandidates() ([]*entities.User, error) {
	query := `
		SELECT user_id, email, reminders_enabled, created_at
		FROM user_data
		WHERE email <> '' AND reminders_enabled = TRUE
	`
	return r.list(query)
}

func (r *userRepository) list(query string) ([]*entities.User, error) {
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*entities.User
	for rows.Next() {
		var user entities.User
		if err := rows.Scan(&user.UserID, &user.Email, &user.RemindersEnabled, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}
