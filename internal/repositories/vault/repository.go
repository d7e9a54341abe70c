// Package vault persists one dataset blob per user: plaintext JSON during
// PIN-less bootstrap, AES-GCM ciphertext once a PIN exists.
package vault

import "context"

// Record is the stored blob plus its encryption marker.
type Record struct {
	Email     string
	Payload   []byte
	Encrypted bool
}

type Repository interface {
	// Save upserts the user's blob.
	Save(ctx context.Context, rec *Record) error

	// Load returns the user's blob or common.ErrNotFound.
	Load(ctx context.Context, email string) (*Record, error)
}
