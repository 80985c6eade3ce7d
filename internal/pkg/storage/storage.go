package storage

import (
	"context"
	"io"
)

// Storage defines the interface for file storage operations.
type Storage interface {
	// Save saves a file to the storage.
	// path is the relative path where the file should be stored.
	Save(ctx context.Context, path string, content io.Reader) error

	// Get retrieves a file from the storage.
	// Returns a ReadCloser for the file content.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file from the storage.
	Delete(ctx context.Context, path string) error
}
