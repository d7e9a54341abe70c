package indicators

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/auratech/finvault/internal/common"
	"github.com/auratech/finvault/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, name string) (*Row, error) {
	var row Row
	err := r.db.QueryRowContext(ctx,
		`SELECT name, fetched_at, payload FROM indicators WHERE name = ?`, name).
		Scan(&row.Name, &row.FetchedAt, &row.Payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get indicator %s: %w", name, err)
	}
	return &row, nil
}

func (r *SQLiteRepository) Put(ctx context.Context, row *Row) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO indicators (name, fetched_at, payload) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET fetched_at = excluded.fetched_at,
			payload = excluded.payload
	`, row.Name, row.FetchedAt, row.Payload)
	if err != nil {
		return fmt.Errorf("failed to put indicator %s: %w", row.Name, err)
	}
	return nil
}
