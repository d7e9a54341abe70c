// Package indicators caches external economic indicator payloads
// (exchange rates and the like) with their fetch timestamps, so lookups
// can be TTL-gated and degrade to the last good value on fetch failure.
package indicators

import (
	"context"
	"time"
)

// Row is one cached indicator payload.
type Row struct {
	Name      string
	FetchedAt time.Time
	Payload   []byte
}

type Repository interface {
	// Get returns the cached row for name, or common.ErrNotFound.
	Get(ctx context.Context, name string) (*Row, error)

	// Put upserts the cached payload for name.
	Put(ctx context.Context, row *Row) error
}
