package credentials

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/auratech/finvault/internal/common"
	"github.com/auratech/finvault/internal/models"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:credrepo?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`DROP TABLE IF EXISTS users`)
	require.NoError(t, err)
	_, err = db.Exec(`
CREATE TABLE users (
  email         TEXT PRIMARY KEY,
  salt          TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  pin_hash      TEXT,
  biometric     INTEGER NOT NULL DEFAULT 0
);
`)
	require.NoError(t, err)
	return db
}

func TestCreateAndGet(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	c := &models.Credential{Email: "a@b.com", Salt: "s1", PasswordHash: "h1"}
	require.NoError(t, repo.Create(ctx, c))

	got, err := repo.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.Equal(t, "s1", got.Salt)
	require.Equal(t, "h1", got.PasswordHash)
	require.Empty(t, got.PinHash, "pin hash starts unset")
	require.False(t, got.Biometric)
}

func TestCreate_Duplicate(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	c := &models.Credential{Email: "a@b.com", Salt: "s1", PasswordHash: "h1"}
	require.NoError(t, repo.Create(ctx, c))
	require.ErrorIs(t, repo.Create(ctx, c), common.ErrDuplicateUser)
}

func TestGetByEmail_Missing(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)

	_, err := repo.GetByEmail(context.Background(), "nobody@b.com")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdatePin(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Credential{Email: "a@b.com", Salt: "s1", PasswordHash: "h1"}))
	require.NoError(t, repo.UpdatePin(ctx, "a@b.com", "pin-hash"))

	got, err := repo.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.Equal(t, "pin-hash", got.PinHash)

	require.ErrorIs(t, repo.UpdatePin(ctx, "nobody@b.com", "x"), common.ErrNotFound)
}

func TestSetBiometric(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Credential{Email: "a@b.com", Salt: "s1", PasswordHash: "h1"}))
	require.NoError(t, repo.SetBiometric(ctx, "a@b.com", true))

	got, err := repo.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.True(t, got.Biometric)

	require.ErrorIs(t, repo.SetBiometric(ctx, "nobody@b.com", true), common.ErrNotFound)
}
