package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_PutAndList(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "scans/a.vtk", []byte("alpha")))
	require.NoError(t, store.Put(ctx, "scans/b.vtk", []byte("beta")))
	require.NoError(t, store.Put(ctx, "other.vtk", []byte("gamma")))

	names, err := store.List(ctx, "scans/")
	require.NoError(t, err)
	assert.Equal(t, []string{"scans/a.vtk", "scans/b.vtk"}, names)
}

func TestLocalStore_StreamingCreate(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	blob, err := store.Create(ctx, "doc.vtk")
	require.NoError(t, err)

	_, err = blob.Write([]byte("part one\n"))
	require.NoError(t, err)

	// Not visible until Close.
	_, statErr := os.Stat(filepath.Join(dir, "doc.vtk"))
	assert.True(t, os.IsNotExist(statErr))

	_, err = blob.Write([]byte("part two\n"))
	require.NoError(t, err)
	require.NoError(t, blob.Sync())
	require.NoError(t, blob.Close())

	data, err := os.ReadFile(filepath.Join(dir, "doc.vtk"))
	require.NoError(t, err)
	assert.Equal(t, "part one\npart two\n", string(data))

	// Double close reports an error, not a second rename.
	assert.Error(t, blob.Close())
}

func TestLocalStore_Delete(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "doc.vtk", []byte("x")))
	require.NoError(t, store.Delete(ctx, "doc.vtk"))

	// Deleting a missing blob is not an error.
	require.NoError(t, store.Delete(ctx, "doc.vtk"))

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	blob, err := store.Create(ctx, "doc.vtk")
	require.NoError(t, err)
	_, err = blob.Write([]byte("content"))
	require.NoError(t, err)

	_, ok := store.Get("doc.vtk")
	assert.False(t, ok, "blob must not be visible before Close")

	require.NoError(t, blob.Close())

	data, ok := store.Get("doc.vtk")
	require.True(t, ok)
	assert.Equal(t, "content", string(data))

	names, err := store.List(ctx, "doc")
	require.NoError(t, err)
	assert.Equal(t, []string{"doc.vtk"}, names)

	require.NoError(t, store.Delete(ctx, "doc.vtk"))
	_, ok = store.Get("doc.vtk")
	assert.False(t, ok)
}
