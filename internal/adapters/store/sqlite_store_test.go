package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/filehash/internal/adapters/store"
	"go.trai.ch/filehash/internal/core/domain"
)

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.SQLiteFileName)
	opts := store.Options{LockTimeout: time.Second}

	s1, err := store.OpenSQLite(path, opts)
	require.NoError(t, err)
	c1, err := s1.Fingerprints(domain.FileHashesCacheName)
	require.NoError(t, err)

	missing, err := c1.Get("/data/a.bin")
	require.NoError(t, err)
	assert.Nil(t, missing)

	fp := domain.NewFingerprint([]byte{0x01, 0x02}, 10, 1000)
	require.NoError(t, c1.Put(domain.NewInternedString("/data/a.bin"), fp))

	got, err := c1.Get("/data/a.bin")
	require.NoError(t, err)
	assert.Same(t, fp, got)

	// Overwrite keeps a single row.
	fp2 := domain.NewFingerprint([]byte{0x03}, 12, 1001)
	require.NoError(t, c1.Put(domain.NewInternedString("/data/a.bin"), fp2))
	require.NoError(t, s1.Flush())
	require.NoError(t, s1.Close())

	s2, err := store.OpenSQLite(path, opts)
	require.NoError(t, err)
	defer s2.Close() //nolint:errcheck // Test cleanup

	c2, err := s2.Fingerprints(domain.FileHashesCacheName)
	require.NoError(t, err)

	first, err := c2.Get("/data/a.bin")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.True(t, fp2.Equal(first))

	second, err := c2.Get("/data/a.bin")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestSQLiteStore_CachesAreSeparate(t *testing.T) {
	s, err := store.OpenSQLite(filepath.Join(t.TempDir(), domain.SQLiteFileName), store.Options{})
	require.NoError(t, err)
	defer s.Close() //nolint:errcheck // Test cleanup

	a, err := s.Fingerprints("a")
	require.NoError(t, err)
	b, err := s.Fingerprints("b")
	require.NoError(t, err)

	require.NoError(t, a.Put(domain.NewInternedString("/k"), domain.NewFingerprint([]byte{0x01}, 1, 1)))

	got, err := b.Get("/k")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLiteStore_Closed(t *testing.T) {
	s, err := store.OpenSQLite(filepath.Join(t.TempDir(), domain.SQLiteFileName), store.Options{})
	require.NoError(t, err)
	c, err := s.Fingerprints(domain.FileHashesCacheName)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = c.Get("/k")
	require.ErrorIs(t, err, domain.ErrStoreClosed)
	_, err = s.Fingerprints("other")
	require.ErrorIs(t, err, domain.ErrStoreClosed)
}

func TestOpener_SQLiteBackend(t *testing.T) {
	dir := t.TempDir()
	cfg := &domain.Config{CacheDir: dir, Backend: domain.BackendSQLite}

	ps, err := store.NewOpener().Open(cfg)
	require.NoError(t, err)
	assert.IsType(t, &store.SQLiteStore{}, ps)
	require.NoError(t, ps.Close())
	assert.FileExists(t, filepath.Join(dir, domain.SQLiteFileName))
}
