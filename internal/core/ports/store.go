package ports

import "go.trai.ch/filehash/internal/core/domain"

// FingerprintStore is a persistent mapping from absolute file path to Fingerprint.
// Implementations are safe for concurrent use and decide locking and flush timing.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type FingerprintStore interface {
	// Get retrieves the fingerprint recorded for key.
	// Returns nil, nil if not found.
	Get(key string) (*domain.Fingerprint, error)

	// Put records fp under key, replacing any previous entry.
	Put(key domain.InternedString, fp *domain.Fingerprint) error
}

// PersistentStore owns the on-disk caches and their lifecycle.
type PersistentStore interface {
	// Fingerprints returns the fingerprint cache named name, opening it if needed.
	Fingerprints(name string) (FingerprintStore, error)

	// Flush writes pending changes of every open cache to disk.
	Flush() error

	// Close flushes and releases all resources.
	Close() error
}

// StoreOpener opens the persistent store selected by the configuration.
type StoreOpener interface {
	// Open opens the store of cfg.Backend below cfg.CacheDir.
	Open(cfg *domain.Config) (PersistentStore, error)

	// Clean removes everything the store persisted below cfg.CacheDir.
	Clean(cfg *domain.Config) error
}
