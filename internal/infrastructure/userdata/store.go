// Package userdata is the SQLite-backed store for user-private data:
// custom foods, goal sets, and daily food logs.
package userdata

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nutrilens/backend/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS custom_foods (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	name       TEXT NOT NULL,
	brand      TEXT NOT NULL DEFAULT '',
	nutrients  TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_custom_foods_user ON custom_foods(user_id);

CREATE TABLE IF NOT EXISTS goals (
	user_id    TEXT PRIMARY KEY,
	goals      TEXT NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS log_entries (
	id          TEXT PRIMARY KEY,
	user_id     TEXT NOT NULL,
	date        TEXT NOT NULL,
	food_code   TEXT NOT NULL,
	food_name   TEXT NOT NULL,
	food_brand  TEXT NOT NULL DEFAULT '',
	data_source TEXT NOT NULL,
	quantity    REAL NOT NULL,
	unit        TEXT NOT NULL,
	created_at  DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_log_entries_user_date ON log_entries(user_id, date);
`

// Store implements domain.CustomFoodStore, domain.GoalRepository, and
// domain.LogRepository over one SQLite database file.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (creating if needed) the database at dbPath and ensures
// the schema exists.
func NewStore(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Create stores a user-private food. A missing ID is generated; timestamps
// are set when zero.
func (s *Store) Create(ctx context.Context, food *domain.CustomFood) error {
	if food.UserID == "" || food.Name == "" {
		return fmt.Errorf("%w: custom food requires a user and a name", domain.ErrInvalidRequest)
	}
	if food.ID == "" {
		food.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if food.CreatedAt.IsZero() {
		food.CreatedAt = now
	}
	food.UpdatedAt = now

	nutrients, err := json.Marshal(food.Nutrients)
	if err != nil {
		return fmt.Errorf("%w: encoding nutrients: %v", domain.ErrStoreFailure, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO custom_foods (id, user_id, name, brand, nutrients, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		food.ID, food.UserID, food.Name, food.Brand, string(nutrients), food.CreatedAt, food.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: inserting custom food: %v", domain.ErrStoreFailure, err)
	}
	return nil
}

// Search finds a user's private foods whose name or brand contains the
// query, case-insensitively, newest first.
func (s *Store) Search(ctx context.Context, userID, query string, limit int) ([]domain.SearchResult, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, brand FROM custom_foods
		WHERE user_id = ? AND (LOWER(name) LIKE ? OR LOWER(brand) LIKE ?)
		ORDER BY created_at DESC
		LIMIT ?`,
		userID, pattern, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: searching custom foods: %v", domain.ErrStoreFailure, err)
	}
	defer rows.Close()

	var results []domain.SearchResult
	for rows.Next() {
		var r domain.SearchResult
		if err := rows.Scan(&r.Code, &r.Name, &r.Brand); err != nil {
			return nil, fmt.Errorf("%w: scanning custom food: %v", domain.ErrStoreFailure, err)
		}
		r.Source = domain.SourceUser
		results = append(results, r)
	}
	return results, rows.Err()
}

// GetByID fetches one private food. The lookup is scoped to the user;
// other users' foods are not found.
func (s *Store) GetByID(ctx context.Context, userID, id string) (*domain.CustomFood, error) {
	var (
		food      domain.CustomFood
		nutrients string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, brand, nutrients, created_at, updated_at
		FROM custom_foods WHERE id = ? AND user_id = ?`,
		id, userID).
		Scan(&food.ID, &food.UserID, &food.Name, &food.Brand, &nutrients, &food.CreatedAt, &food.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrFoodNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: loading custom food: %v", domain.ErrStoreFailure, err)
	}
	if err := json.Unmarshal([]byte(nutrients), &food.Nutrients); err != nil {
		return nil, fmt.Errorf("%w: decoding nutrients: %v", domain.ErrStoreFailure, err)
	}
	return &food, nil
}

// Load returns the user's saved goal set, or an empty set when none is
// stored yet.
func (s *Store) Load(ctx context.Context, userID string) (domain.GoalSet, error) {
	var encoded string
	err := s.db.QueryRowContext(ctx, `SELECT goals FROM goals WHERE user_id = ?`, userID).Scan(&encoded)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.GoalSet{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: loading goals: %v", domain.ErrStoreFailure, err)
	}

	var goals domain.GoalSet
	if err := json.Unmarshal([]byte(encoded), &goals); err != nil {
		return nil, fmt.Errorf("%w: decoding goals: %v", domain.ErrStoreFailure, err)
	}
	return goals, nil
}

// Save replaces the user's stored goal set.
func (s *Store) Save(ctx context.Context, userID string, goals domain.GoalSet) error {
	encoded, err := json.Marshal(goals)
	if err != nil {
		return fmt.Errorf("%w: encoding goals: %v", domain.ErrStoreFailure, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO goals (user_id, goals, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET goals = excluded.goals, updated_at = excluded.updated_at`,
		userID, string(encoded), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: saving goals: %v", domain.ErrStoreFailure, err)
	}
	return nil
}

// Add inserts log entries in one transaction.
func (s *Store) Add(ctx context.Context, entries []domain.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: starting transaction: %v", domain.ErrStoreFailure, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO log_entries (id, user_id, date, food_code, food_name, food_brand, data_source, quantity, unit, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%w: preparing insert: %v", domain.ErrStoreFailure, err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx,
			e.ID, e.UserID, e.Date, e.FoodCode, e.FoodName, e.FoodBrand,
			string(e.DataSource), e.Quantity, e.Unit, e.CreatedAt); err != nil {
			return fmt.Errorf("%w: inserting log entry: %v", domain.ErrStoreFailure, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing log entries: %v", domain.ErrStoreFailure, err)
	}
	return nil
}

// ListByDate returns the user's log entries for one day, oldest first.
func (s *Store) ListByDate(ctx context.Context, userID, date string) ([]domain.LogEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, date, food_code, food_name, food_brand, data_source, quantity, unit, created_at
		FROM log_entries WHERE user_id = ? AND date = ?
		ORDER BY created_at ASC`,
		userID, date)
	if err != nil {
		return nil, fmt.Errorf("%w: listing log entries: %v", domain.ErrStoreFailure, err)
	}
	defer rows.Close()

	var entries []domain.LogEntry
	for rows.Next() {
		var (
			e      domain.LogEntry
			source string
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.FoodCode, &e.FoodName,
			&e.FoodBrand, &source, &e.Quantity, &e.Unit, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning log entry: %v", domain.ErrStoreFailure, err)
		}
		e.DataSource = domain.DataSource(source)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete removes one log entry owned by the user.
func (s *Store) Delete(ctx context.Context, userID, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM log_entries WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("%w: deleting log entry: %v", domain.ErrStoreFailure, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: deleting log entry: %v", domain.ErrStoreFailure, err)
	}
	if affected == 0 {
		return domain.ErrFoodNotFound
	}
	return nil
}
