// Package metadata is the key/value table of the local session cache.
package metadata

import (
	"context"
)

type Repository interface {
	// Get reports ok=false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
