package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

type nopDriver struct{}

func (d nopDriver) Open(name string) (driver.Conn, error) {
	return nopConn{}, nil
}

type nopConn struct{}

func (nopConn) Prepare(query string) (driver.Stmt, error) { return nil, driver.ErrSkip }
func (nopConn) Close() error                              { return nil }
func (nopConn) Begin() (driver.Tx, error)                 { return nil, driver.ErrSkip }
func (nopConn) Ping(ctx context.Context) error            { return nil }

var registerTestDriverOnce sync.Once

func withTestDriver(t *testing.T) *[]string {
	t.Helper()
	registerTestDriverOnce.Do(func() {
		sql.Register("dbtest", nopDriver{})
	})
	var dsns []string
	prev := openDB
	openDB = func(name, dsn string) (*sql.DB, error) {
		dsns = append(dsns, dsn)
		return sql.Open("dbtest", dsn)
	}
	t.Cleanup(func() { openDB = prev })
	return &dsns
}

func TestConnectAppliesOptions(t *testing.T) {
	dsns := withTestDriver(t)

	path := filepath.Join(t.TempDir(), "nested", "drafts.db")
	db, err := Connect(context.Background(), path, DefaultOptions())
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer db.Close()

	if got := db.Stats().MaxOpenConnections; got != 1 {
		t.Fatalf("expected MaxOpenConnections=1, got %d", got)
	}
	if len(*dsns) != 1 || !strings.Contains((*dsns)[0], "busy_timeout(5000)") {
		t.Fatalf("unexpected dsn %v", *dsns)
	}
}

func TestConnectRejectsEmptyPath(t *testing.T) {
	if _, err := Connect(context.Background(), "  ", DefaultOptions()); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestMigrationsCreateDraftsTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drafts.db")
	db, err := Connect(context.Background(), path, DefaultOptions())
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer db.Close()

	if err := RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("RunMigrations: %v", err)
	}
	// second run is a no-op
	if err := RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("RunMigrations again: %v", err)
	}

	var name string
	if err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='drafts'").Scan(&name); err != nil {
		t.Fatalf("drafts table missing: %v", err)
	}

	version, err := SchemaVersion(context.Background(), db)
	if err != nil {
		t.Fatalf("SchemaVersion: %v", err)
	}
	if version != 1 {
		t.Fatalf("expected schema version 1, got %d", version)
	}
}
