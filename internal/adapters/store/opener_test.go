package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/filehash/internal/adapters/store"
	"go.trai.ch/filehash/internal/core/domain"
)

func TestOpener_FileBackend(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	cfg := &domain.Config{CacheDir: dir, Backend: domain.BackendFile}

	ps, err := store.NewOpener().Open(cfg)
	require.NoError(t, err)
	assert.IsType(t, &store.FileStore{}, ps)
	require.NoError(t, ps.Close())
}

func TestOpener_UnknownBackend(t *testing.T) {
	cfg := &domain.Config{CacheDir: t.TempDir(), Backend: "redis"}

	_, err := store.NewOpener().Open(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestOpener_Clean(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, domain.ArchivesDirName), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fileHashes.bin"), []byte("x"), 0o600))

	require.NoError(t, store.NewOpener().Clean(&domain.Config{CacheDir: dir}))
	assert.NoDirExists(t, dir)

	// Cleaning twice is fine.
	require.NoError(t, store.Clean(dir))
}
