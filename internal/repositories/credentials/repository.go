// Package credentials persists local account records: per-user salt,
// password hash, optional PIN hash and the biometric flag.
package credentials

import (
	"context"

	"github.com/auratech/finvault/internal/models"
)

type Repository interface {
	// Create inserts a new credential. A duplicate email yields
	// common.ErrDuplicateUser.
	Create(ctx context.Context, c *models.Credential) error

	// GetByEmail returns the credential for the (lowercased) email, or
	// common.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.Credential, error)

	// UpdatePin overwrites the stored PIN hash.
	UpdatePin(ctx context.Context, email, pinHash string) error

	// SetBiometric toggles the biometric-unlock flag.
	SetBiometric(ctx context.Context, email string, enabled bool) error
}
