package storage

import (
	"context"
	"io"
)

// FileStorage archives generated files such as report exports.
type FileStorage interface {
	// Upload stores a file and returns its storage key
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Download retrieves a file
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// GetURL returns the public URL for a key
	GetURL(ctx context.Context, path string) (string, error)
}
