package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/auratech/finvault/internal/common"
	"github.com/auratech/finvault/internal/dbx"
	"github.com/auratech/finvault/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, c *models.Credential) error {
	query := `INSERT INTO users (email, salt, password_hash, pin_hash, biometric)
		VALUES (?, ?, ?, NULLIF(?, ''), ?)`
	_, err := r.db.ExecContext(ctx, query, c.Email, c.Salt, c.PasswordHash, c.PinHash, c.Biometric)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("user %s: %w", c.Email, common.ErrDuplicateUser)
		}
		return fmt.Errorf("failed to create user %s: %w", c.Email, err)
	}
	return nil
}

func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*models.Credential, error) {
	query := `SELECT email, salt, password_hash, COALESCE(pin_hash, ''), biometric
		FROM users WHERE email = ?`

	var c models.Credential
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&c.Email, &c.Salt, &c.PasswordHash, &c.PinHash, &c.Biometric)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", email, err)
	}
	return &c, nil
}

func (r *SQLiteRepository) UpdatePin(ctx context.Context, email, pinHash string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET pin_hash = ? WHERE email = ?`, pinHash, email)
	if err != nil {
		return fmt.Errorf("failed to update pin for %s: %w", email, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) SetBiometric(ctx context.Context, email string, enabled bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET biometric = ? WHERE email = ?`, enabled, email)
	if err != nil {
		return fmt.Errorf("failed to set biometric for %s: %w", email, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}
