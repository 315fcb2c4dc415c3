// Package draft keeps the single locally cached resume draft.
package draft

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"resume-reviser/internal/shared/storage/db"
)

// ResumeKey is the row holding the cached resume text.
const ResumeKey = "savedResume"

// Store loads and overwrites the cached draft.
type Store interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, text string) error
}

// SQLiteStore keeps the draft in one row of a local SQLite file.
type SQLiteStore struct {
	DB  *sql.DB
	Key string
}

// Open connects to the SQLite file at path and applies migrations.
func Open(ctx context.Context, path string) (*SQLiteStore, error) {
	database, err := db.Connect(ctx, path, db.DefaultOptions())
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(ctx, database); err != nil {
		database.Close()
		return nil, fmt.Errorf("migrate draft db: %w", err)
	}
	return &SQLiteStore{DB: database, Key: ResumeKey}, nil
}

// Load returns the cached text, or "" when nothing was saved yet.
func (s *SQLiteStore) Load(ctx context.Context) (string, error) {
	var body string
	err := s.DB.QueryRowContext(ctx, `SELECT body FROM drafts WHERE key = ?`, s.key()).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load draft: %w", err)
	}
	return body, nil
}

// Save overwrites the cached text.
func (s *SQLiteStore) Save(ctx context.Context, text string) error {
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO drafts (key, body, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET body = excluded.body, updated_at = CURRENT_TIMESTAMP`,
		s.key(), text)
	if err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// Clear removes the cached text.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, `DELETE FROM drafts WHERE key = ?`, s.key()); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.DB.Close()
}

func (s *SQLiteStore) key() string {
	if s.Key == "" {
		return ResumeKey
	}
	return s.Key
}
