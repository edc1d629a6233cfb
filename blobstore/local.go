package blobstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LocalStore implements BlobStore using the local file system.
// Writes go to a temp file in the same directory and are renamed into place
// on Close, so a blob is never visible half-written.
type LocalStore struct {
	root string
}

// NewLocalStore creates a LocalStore rooted at the given directory.
// The directory is created if it does not exist.
func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("blobstore: create root: %w", err)
	}
	return &LocalStore{root: root}, nil
}

func (s *LocalStore) path(name string) string {
	return filepath.Join(s.root, filepath.FromSlash(name))
}

// Create creates a blob for streaming writes.
func (s *LocalStore) Create(ctx context.Context, name string) (WritableBlob, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	final := s.path(name)
	if err := os.MkdirAll(filepath.Dir(final), 0o755); err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp(filepath.Dir(final), filepath.Base(final)+".tmp-*")
	if err != nil {
		return nil, err
	}

	return &localBlob{file: tmp, final: final}, nil
}

// Put writes a blob atomically.
func (s *LocalStore) Put(ctx context.Context, name string, data []byte) error {
	blob, err := s.Create(ctx, name)
	if err != nil {
		return err
	}
	if _, err := blob.Write(data); err != nil {
		_ = blob.Close()
		return err
	}
	return blob.Close()
}

// Delete removes a blob.
func (s *LocalStore) Delete(_ context.Context, name string) error {
	err := os.Remove(s.path(name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// List returns all blob names with the given prefix, sorted, using '/' as
// the separator regardless of platform.
func (s *LocalStore) List(_ context.Context, prefix string) ([]string, error) {
	var names []string
	err := filepath.WalkDir(s.root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// localBlob implements WritableBlob over a temp file.
type localBlob struct {
	file  *os.File
	final string
	done  bool
}

func (b *localBlob) Write(p []byte) (int, error) {
	return b.file.Write(p)
}

func (b *localBlob) Sync() error {
	return b.file.Sync()
}

func (b *localBlob) Close() error {
	if b.done {
		return os.ErrClosed
	}
	b.done = true

	if err := b.file.Close(); err != nil {
		_ = os.Remove(b.file.Name())
		return err
	}
	if err := os.Rename(b.file.Name(), b.final); err != nil {
		_ = os.Remove(b.file.Name())
		return err
	}
	return nil
}
