package draft

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "reviser.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStoreRoundTripAndOverwrite(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", got)

	require.NoError(t, store.Save(ctx, "first draft"))
	require.NoError(t, store.Save(ctx, "second draft\n  with indentation"))

	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second draft\n  with indentation", got)

	var rows int
	require.NoError(t, store.DB.QueryRow(`SELECT COUNT(*) FROM drafts`).Scan(&rows))
	assert.Equal(t, 1, rows)

	require.NoError(t, store.Clear(ctx))
	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestSQLiteStoreReopenKeepsDraft(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "reviser.db")

	first, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, "persisted"))
	require.NoError(t, first.Close())

	second, err := Open(ctx, path)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "persisted", got)
}

func TestSQLiteStoreSaveError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectExec("INSERT INTO drafts").
		WithArgs(ResumeKey, "text").
		WillReturnError(errors.New("disk I/O error"))

	store := &SQLiteStore{DB: db}
	err = store.Save(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save draft")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStoreLoadError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT body FROM drafts").
		WithArgs(ResumeKey).
		WillReturnError(errors.New("database is locked"))

	store := &SQLiteStore{DB: db, Key: ResumeKey}
	_, err = store.Load(context.Background())
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
