package store

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// newTestStore opens a throwaway SQLite database with the real migration
// files applied.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := sqlx.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	db.SetMaxOpenConns(1)
	_, err = db.Exec("PRAGMA foreign_keys = ON")
	require.NoError(t, err)

	files, err := filepath.Glob(filepath.Join("..", "database", "migrations", "*.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, files, "no migration files found")
	sort.Strings(files)
	for _, f := range files {
		schema, err := os.ReadFile(f)
		require.NoError(t, err)
		_, err = db.Exec(string(schema))
		require.NoError(t, err)
	}

	return New(db)
}

func createTestUser(t *testing.T, s *Store, username string) int64 {
	t.Helper()
	id, err := s.Queries().CreateUser(context.Background(), username, username+"@example.com", "not-a-real-hash")
	require.NoError(t, err)
	return id
}

func createTestTask(t *testing.T, s *Store, ownerID int64, title string) int64 {
	t.Helper()
	id, err := s.Queries().UpsertTask(context.Background(), ownerID, TaskRecord{
		Title:      title,
		PriorityID: 2,
	})
	require.NoError(t, err)
	return id
}

func createTestCategory(t *testing.T, s *Store, ownerID int64, name string) int64 {
	t.Helper()
	id, err := s.Queries().UpsertCategory(context.Background(), ownerID, CategoryRecord{
		Name:  name,
		Color: "#4a6fa5",
	})
	require.NoError(t, err)
	return id
}

func strptr(s string) *string { return &s }
