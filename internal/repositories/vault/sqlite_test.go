package vault

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/auratech/finvault/internal/common"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:vaultrepo?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`DROP TABLE IF EXISTS vault`)
	require.NoError(t, err)
	_, err = db.Exec(`
CREATE TABLE vault (
  email      TEXT PRIMARY KEY,
  payload    BLOB NOT NULL,
  encrypted  INTEGER NOT NULL,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`)
	require.NoError(t, err)
	return db
}

func TestSaveAndLoad(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	rec := &Record{Email: "a@b.com", Payload: []byte(`{"income":{}}`), Encrypted: false}
	require.NoError(t, repo.Save(ctx, rec))

	got, err := repo.Load(ctx, "a@b.com")
	require.NoError(t, err)
	require.Equal(t, rec.Payload, got.Payload)
	require.False(t, got.Encrypted)
}

func TestSave_OverwritesExisting(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &Record{Email: "a@b.com", Payload: []byte("plain"), Encrypted: false}))
	require.NoError(t, repo.Save(ctx, &Record{Email: "a@b.com", Payload: []byte{0xde, 0xad}, Encrypted: true}))

	got, err := repo.Load(ctx, "a@b.com")
	require.NoError(t, err)
	require.Equal(t, []byte{0xde, 0xad}, got.Payload)
	require.True(t, got.Encrypted)
}

func TestLoad_Missing(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)

	_, err := repo.Load(context.Background(), "nobody@b.com")
	require.ErrorIs(t, err, common.ErrNotFound)
}
