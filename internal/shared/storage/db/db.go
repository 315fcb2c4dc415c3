package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // register sqlite as database/sql driver

	"resume-reviser/internal/shared/telemetry"
)

// Options controls database pool and connectivity behavior.
type Options struct {
	MaxOpenConns int
	BusyTimeout  time.Duration
	PingTimeout  time.Duration
}

var openDB = sql.Open

// DefaultOptions returns defaults for the single-writer local cache. SQLite
// allows one writer, so the pool is pinned to one connection.
func DefaultOptions() Options {
	return Options{
		MaxOpenConns: 1,
		BusyTimeout:  5 * time.Second,
		PingTimeout:  5 * time.Second,
	}
}

// Connect opens the SQLite file at path, creating parent directories, and
// verifies connectivity. ":memory:" is passed through unchanged.
func Connect(ctx context.Context, path string, opts Options) (*sql.DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("database path is empty")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}

	db, err := openDB("sqlite", dsn(path, opts))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	applyOptions(db, opts)

	pingTimeout := opts.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = 5 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	telemetry.Info("db.open", map[string]any{"path": path})
	return db, nil
}

func dsn(path string, opts Options) string {
	if opts.BusyTimeout <= 0 {
		return path
	}
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)", path, opts.BusyTimeout.Milliseconds())
}

func applyOptions(db *sql.DB, opts Options) {
	if opts.MaxOpenConns <= 0 {
		opts.MaxOpenConns = 1
	}
	db.SetMaxOpenConns(opts.MaxOpenConns)
	db.SetMaxIdleConns(opts.MaxOpenConns)
}
