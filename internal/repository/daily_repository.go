package repository

import (
	"database/sql"
	"fmt"

	"gratitude-be/internal/entities"
)

// DailyRepository defines the interface for daily_gratitude table operations
type DailyRepository interface {
	Create(entry *entities.DailyEntry) (*entities.DailyEntry, error)
	FindByUserAndDate(userID, date string) (*entities.DailyEntry, error)
	ListByUser(userID string) ([]*entities.DailyEntry, error)
	ListAll() ([]*entities.DailyEntry, error)
	ListUserIDsByDate(date string) ([]string, error)
}

type dailyRepository struct {
	db *sql.DB
}

// NewDailyRepository creates a new daily entry repository
func NewDailyRepository(db *sql.DB) DailyRepository {
	return &dailyRepository{db: db}
}

const dailyColumns = `id, user_id, date, g1, r1, g2, r2, g3, r3, created_at`

// Create inserts a new daily entry. Returns ErrDuplicate when a row for the
// same (user_id, date) already exists.
func (r *dailyRepository) Create(entry *entities.DailyEntry) (*entities.DailyEntry, error) {
	query := `
		INSERT INTO daily_gratitude (user_id, date, g1, r1, g2, r2, g3, r3)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + dailyColumns

	var saved entities.DailyEntry
	err := r.db.QueryRow(query,
		entry.UserID, entry.Date,
		entry.G1, entry.R1, entry.G2, entry.R2, entry.G3, entry.R3,
	).Scan(
		&saved.ID, &saved.UserID, &saved.Date,
		&saved.G1, &saved.R1, &saved.G2, &saved.R2, &saved.G3, &saved.R3,
		&saved.CreatedAt,
	)

	if err != nil {
		if err = translateInsertError(err); err == ErrDuplicate {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create daily entry: %w", err)
	}

	return &saved, nil
}

// FindByUserAndDate returns the single entry for (user_id, date), or ErrNotFound
func (r *dailyRepository) FindByUserAndDate(userID, date string) (*entities.DailyEntry, error) {
	query := `
		SELECT ` + dailyColumns + `
		FROM daily_gratitude
		WHERE user_id = $1 AND date = $2
	`

	var entry entities.DailyEntry
	err := r.db.QueryRow(query, userID, date).Scan(
		&entry.ID, &entry.UserID, &entry.Date,
		&entry.G1, &entry.R1, &entry.G2, &entry.R2, &entry.G3, &entry.R3,
		&entry.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find daily entry: %w", err)
	}

	return &entry, nil
}

// ListByUser retrieves all of one user's daily entries, newest first
func (r *dailyRepository) ListByUser(userID string) ([]*entities.DailyEntry, error) {
	query := `
		SELECT ` + dailyColumns + `
		FROM daily_gratitude
		WHERE user_id = $1
		ORDER BY date DESC
	`
	return r.list(query, userID)
}

// ListAll retrieves every daily entry (superuser view)
func (r *dailyRepository) ListAll() ([]*entities.DailyEntry, error) {
	query := `
		SELECT ` + dailyColumns + `
		FROM daily_gratitude
		ORDER BY date DESC, user_id
	`
	return r.list(query)
}

// ListUserIDsByDate returns the user IDs that submitted an entry on the given
// date. The reminder job diffs this set against the registered users.
func (r *dailyRepository) ListUserIDsByDate(date string) ([]string, error) {
	rows, err := r.db.Query(`SELECT user_id FROM daily_gratitude WHERE date = $1`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions for %s: %w", date, err)
	}
	defer rows.Close()

	var userIDs []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("failed to scan user_id: %w", err)
		}
		userIDs = append(userIDs, userID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating submissions: %w", err)
	}

	return userIDs, nil
}

func (r *dailyRepository) list(query string, args ...interface{}) ([]*entities.DailyEntry, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily entries: %w", err)
	}
	defer rows.Close()

	var entries []*entities.DailyEntry
	for rows.Next() {
		var entry entities.DailyEntry
		err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.Date,
			&entry.G1, &entry.R1, &entry.G2, &entry.R2, &entry.G3, &entry.R3,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily entries: %w", err)
	}

	return entries, nil
}
