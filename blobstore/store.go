package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// BlobStore is an abstraction for writing exported documents.
type BlobStore interface {
	// Create creates a blob for streaming writes. The blob's content becomes
	// visible under name when Close returns nil.
	Create(ctx context.Context, name string) (WritableBlob, error)

	// Put writes a blob in one shot, replacing any existing content.
	Put(ctx context.Context, name string, data []byte) error

	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error

	// List returns all blob names with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}

// WritableBlob is a streaming handle to a blob being written.
type WritableBlob interface {
	io.Writer
	io.Closer

	// Sync flushes buffered data to stable storage where the backend
	// supports it; otherwise it is a no-op.
	Sync() error
}
