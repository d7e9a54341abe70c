package vault

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

// Save upserts the blob for rec.Email. On conflict the payload, encryption
// marker and timestamp are replaced.
func (r *SQLiteRepository) Save(ctx context.Context, rec *Record) error {
	query := `INSERT INTO vault (email, payload, encrypted, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(email) DO UPDATE SET payload = excluded.payload,
			encrypted = excluded.encrypted,
			updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, rec.Email, rec.Payload, rec.Encrypted); err != nil {
		return fmt.Errorf("failed to save vault blob for %s: %w", rec.Email, err)
	}
	return nil
}

func (r *SQLiteRepository) Load(ctx context.Context, email string) (*Record, error) {
	var rec Record
	err := r.db.QueryRowContext(ctx,
		`SELECT email, payload, encrypted FROM vault WHERE email = ?`, email).
		Scan(&rec.Email, &rec.Payload, &rec.Encrypted)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load vault blob for %s: %w", email, err)
	}
	return &rec, nil
}
