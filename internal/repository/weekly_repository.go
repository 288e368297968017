package repository

import (
	"database/sql"
	"fmt"

	"gratitude-be/internal/entities"
)

// WeeklyRepository defines the interface for weekly_letters table operations
type WeeklyRepository interface {
	Create(letter *entities.WeeklyLetter) (*entities.WeeklyLetter, error)
	FindByUserAndWeek(userID, weekStart string) (*entities.WeeklyLetter, error)
	ListByUser(userID string) ([]*entities.WeeklyLetter, error)
	ListAll() ([]*entities.WeeklyLetter, error)
}

type weeklyRepository struct {
	db *sql.DB
}

// NewWeeklyRepository creates a new weekly letter repository
func NewWeeklyRepository(db *sql.DB) WeeklyRepository {
	return &weeklyRepository{db: db}
}

const weeklyColumns = `id, user_id, week_start, letter_content, created_at`

// Create inserts a new weekly letter. Returns ErrDuplicate when a letter for
// the same (user_id, week_start) already exists.
func (r *weeklyRepository) Create(letter *entities.WeeklyLetter) (*entities.WeeklyLetter, error) {
	query := `
		INSERT INTO weekly_letters (user_id, week_start, letter_content)
		VALUES ($1, $2, $3)
		RETURNING ` + weeklyColumns

	var saved entities.WeeklyLetter
	err := r.db.QueryRow(query, letter.UserID, letter.WeekStart, letter.LetterContent).Scan(
		&saved.ID, &saved.UserID, &saved.WeekStart, &saved.LetterContent, &saved.CreatedAt,
	)

	if err != nil {
		if err = translateInsertError(err); err == ErrDuplicate {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create weekly letter: %w", err)
	}

	return &saved, nil
}

// FindByUserAndWeek returns the single letter for (user_id, week_start), or ErrNotFound
func (r *weeklyRepository) FindByUserAndWeek(userID, weekStart string) (*entities.WeeklyLetter, error) {
	query := `
		SELECT ` + weeklyColumns + `
		FROM weekly_letters
		WHERE user_id = $1 AND week_start = $2
	`

	var letter entities.WeeklyLetter
	err := r.db.QueryRow(query, userID, weekStart).Scan(
		&letter.ID, &letter.UserID, &letter.WeekStart, &letter.LetterContent, &letter.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find weekly letter: %w", err)
	}

	return &letter, nil
}

// ListByUser retrieves all of one user's weekly letters, newest first
func (r *weeklyRepository) ListByUser(userID string) ([]*entities.WeeklyLetter, error) {
	query := `
		SELECT ` + weeklyColumns + `
		FROM weekly_letters
		WHERE user_id = $1
		ORDER BY week_start DESC
	`
	return r.list(query, userID)
}

// ListAll retrieves every weekly letter (superuser view)
func (r *weeklyRepository) ListAll() ([]*entities.WeeklyLetter, error) {
	query := `
		SELECT ` + weeklyColumns + `
		FROM weekly_letters
		ORDER BY week_start DESC, user_id
	`
	return r.list(query)
}

func (r *weeklyRepository) list(query string, args ...interface{}) ([]*entities.WeeklyLetter, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list weekly letters: %w", err)
	}
	defer rows.Close()

	var letters []*entities.WeeklyLetter
	for rows.Next() {
		var letter entities.WeeklyLetter
		err := rows.Scan(
			&letter.ID, &letter.UserID, &letter.WeekStart, &letter.LetterContent, &letter.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan weekly letter: %w", err)
		}
		letters = append(letters, &letter)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating weekly letters: %w", err)
	}

	return letters, nil
}
