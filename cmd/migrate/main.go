package main

// Apply draft cache migrations ahead of first use:
//   REVISER_DRAFT_DB=~/.reviser/drafts.db go run ./cmd/migrate

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"resume-reviser/internal/shared/storage/db"
	"resume-reviser/internal/shared/telemetry"
)

func main() {
	ctx := context.Background()
	path := draftPath()

	sqlDB, err := db.Connect(ctx, path, db.DefaultOptions())
	if err != nil {
		telemetry.Error("migrate.connect_failed", map[string]any{"path": path, "err": err})
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		telemetry.Error("migrate.failed", map[string]any{"path": path, "err": err})
		os.Exit(1)
	}
	version, err := db.SchemaVersion(ctx, sqlDB)
	if err != nil {
		telemetry.Error("migrate.version_failed", map[string]any{"path": path, "err": err})
		os.Exit(1)
	}
	telemetry.Info("migrate.done", map[string]any{"path": path, "version": version})
}

func draftPath() string {
	if p := strings.TrimSpace(os.Getenv("REVISER_DRAFT_DB")); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "drafts.db"
	}
	return filepath.Join(home, ".reviser", "drafts.db")
}
