package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// Repository is a string-keyed, string-valued persistence medium.
type Repository interface {
	Get(ctx context.Context, key string) (Entry, error)
	// Put writes all entries atomically.
	Put(ctx context.Context, entries ...Entry) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, filter EntryListFilter) ([]Entry, error)
	Close() error
}
