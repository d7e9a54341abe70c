// Package metadata is a small key/value store over SQLite, used for the
// active session token and the local token-signing secret.
package metadata

import "context"

type Repository interface {
	// Get returns the value for key, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
