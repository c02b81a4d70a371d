package store

import (
	"os"
	"path/filepath"

	"go.trai.ch/filehash/internal/core/domain"
	"go.trai.ch/filehash/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.StoreOpener = (*Opener)(nil)

// Opener opens the persistent store selected by the configuration.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open opens the cache of cfg.Backend below cfg.CacheDir.
func (o *Opener) Open(cfg *domain.Config) (ports.PersistentStore, error) {
	opts := Options{LockTimeout: cfg.LockTimeout}

	switch cfg.Backend {
	case domain.BackendFile, "":
		return Open(cfg.CacheDir, opts)
	case domain.BackendSQLite:
		return OpenSQLite(filepath.Join(cfg.CacheDir, domain.SQLiteFileName), opts)
	default:
		return nil, zerr.With(domain.ErrConfigInvalid, "backend", string(cfg.Backend))
	}
}

// Clean removes the cache directory and everything in it.
func (o *Opener) Clean(cfg *domain.Config) error {
	return Clean(cfg.CacheDir)
}

// Clean removes dir recursively. A missing directory is not an error.
func Clean(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCleanFailed.Error()), "path", dir)
	}
	return nil
}
