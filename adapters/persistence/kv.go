package persistence

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get for an absent key.
var ErrKeyNotFound = errors.New("key not found")

// KV is the string-keyed store every repository in this package is built on.
// Values are opaque byte payloads (JSON documents in practice). ListByPrefix
// makes no ordering promise; repositories sort for themselves.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	ListByPrefix(ctx context.Context, prefix string) ([][]byte, error)
}
