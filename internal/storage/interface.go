package storage

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by Get when no file exists at the key
	ErrNotFound = errors.New("file not found")

	// ErrTooLarge is returned by Get when a file exceeds the size limit
	ErrTooLarge = errors.New("file too large")
)

// Storage is where price and discount files are read from.
// Keys use forward slashes regardless of the backend.
type Storage interface {
	// Put stores content at the given key
	Put(ctx context.Context, key string, content []byte) error

	// Get retrieves content from the given key
	Get(ctx context.Context, key string) ([]byte, error)

	// List returns the keys of visible files matching the given prefix, sorted
	List(ctx context.Context, prefix string) ([]string, error)
}
