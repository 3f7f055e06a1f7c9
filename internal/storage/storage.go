package storage

import (
	"context"
	"io"
)

// Storage is the file store the upload pipelines write into. Paths are
// relative to the store root; the local backend maps them onto the
// uploads directory that gin serves statically.
type Storage interface {
	// Save stores a file at the given path, creating parent
	// directories as needed.
	Save(ctx context.Context, path string, reader io.Reader) error

	// Open returns a reader for the file at path.
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the file at path. Deleting a missing file is not
	// an error.
	Delete(ctx context.Context, path string) error

	// Exists reports whether a file exists at path.
	Exists(ctx context.Context, path string) (bool, error)

	// URL returns the public URL for the file.
	URL(path string) string

	// Size returns the size of the file in bytes.
	Size(ctx context.Context, path string) (int64, error)
}

// Config holds storage configuration.
type Config struct {
	BasePath string // filesystem root for stored files
	BaseURL  string // public URL prefix the files are served under
}
