package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has no stored value.
var ErrNotFound = errors.New("key not found")

// Store is the storage capability the engine persists through.
// Cart lines and language preferences are stored here under fixed
// namespaces, so tests can inject the in-memory driver and production
// runs on Postgres.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
