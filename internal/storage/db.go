// Package storage opens the local SQLite database, applies migrations and
// wires up the repositories.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/auratech/finvault/internal/migrations"
	"github.com/auratech/finvault/internal/repositories/credentials"
	"github.com/auratech/finvault/internal/repositories/indicators"
	"github.com/auratech/finvault/internal/repositories/metadata"
	"github.com/auratech/finvault/internal/repositories/vault"
)

// Repositories bundles the repository set backed by one database handle.
type Repositories struct {
	Credentials credentials.Repository
	Vault       vault.Repository
	Metadata    metadata.Repository
	Indicators  indicators.Repository
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the SQLite database at dsn, migrates it and returns
// the handle together with the repository set.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, *Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	repos := &Repositories{
		Credentials: credentials.NewSQLiteRepository(db),
		Vault:       vault.NewSQLiteRepository(db),
		Metadata:    metadata.NewSQLiteRepository(db),
		Indicators:  indicators.NewSQLiteRepository(db),
	}
	return db, repos, nil
}
