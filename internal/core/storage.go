package core

import (
	"context"
	"errors"
)

var ErrObjectNotFound = errors.New("object not found")

// ObjectStore is a read-mostly bucket of raw objects addressed by key.
type ObjectStore interface {
	List(ctx context.Context, prefix string) ([]string, error)
	Get(ctx context.Context, key string) ([]byte, error)
}

// WritableStore is implemented by stores that accept imports.
type WritableStore interface {
	ObjectStore
	Put(ctx context.Context, key string, body []byte) error
}
