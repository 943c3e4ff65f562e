package services

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"todo-service/auth"
	"todo-service/store"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := sqlx.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	db.SetMaxOpenConns(1)
	_, err = db.Exec("PRAGMA foreign_keys = ON")
	require.NoError(t, err)

	files, err := filepath.Glob("../database/migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)
	sort.Strings(files)
	for _, f := range files {
		ddl, err := os.ReadFile(f)
		require.NoError(t, err)
		_, err = db.Exec(string(ddl))
		require.NoError(t, err)
	}
	return store.New(db)
}

func createTestIdentity(t *testing.T, st *store.Store, username string) auth.Identity {
	t.Helper()
	id, err := st.Queries().CreateUser(context.Background(), username, username+"@example.com", "not-a-real-hash")
	require.NoError(t, err)
	return auth.Identity{UserID: id, Username: username}
}

func strptr(s string) *string { return &s }
