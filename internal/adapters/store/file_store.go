// Package store implements the persistent fingerprint caches.
package store

import (
	"errors"
	"os"
	"sync"
	"time"

	"go.trai.ch/filehash/internal/core/codec"
	"go.trai.ch/filehash/internal/core/domain"
	"go.trai.ch/filehash/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	fileExt = ".bin"
	lockExt = ".lock"
)

var _ ports.PersistentStore = (*FileStore)(nil)

// Options configures a FileStore.
type Options struct {
	// LockTimeout bounds how long a cache waits for its file lock.
	LockTimeout time.Duration
}

// flusher is the type-erased view of a Cache held by its FileStore.
type flusher interface {
	Name() string
	flush() error
}

// FileStore keeps each named cache in its own file below a directory.
type FileStore struct {
	dir  string
	opts Options

	mu     sync.Mutex
	caches map[string]flusher
	closed bool
}

// Open opens the store rooted at dir, creating the directory if needed.
// Caches are read lazily on first access.
func Open(dir string, opts Options) (*FileStore, error) {
	if opts.LockTimeout < 0 {
		opts.LockTimeout = 0
	}
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", dir)
	}
	return &FileStore{
		dir:    dir,
		opts:   opts,
		caches: make(map[string]flusher),
	}, nil
}

// Dir returns the directory holding the cache files.
func (s *FileStore) Dir() string {
	return s.dir
}

// NewCache returns the cache called name, opening it on first use.
// Asking for an open cache with a different value type is an error.
func NewCache[V any](s *FileStore, name string, serializer codec.Serializer[V]) (*Cache[V], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, domain.ErrStoreClosed
	}

	if existing, ok := s.caches[name]; ok {
		c, ok := existing.(*Cache[V])
		if !ok {
			return nil, zerr.With(zerr.New("cache opened with a different value type"), "cache", name)
		}
		return c, nil
	}

	c := newCache(s.dir, name, serializer, s.opts, s.isClosed)
	s.caches[name] = c
	return c, nil
}

// Fingerprints returns the fingerprint cache called name.
func (s *FileStore) Fingerprints(name string) (ports.FingerprintStore, error) {
	return NewCache[*domain.Fingerprint](s, name, codec.FingerprintSerializer{})
}

// Flush writes the pending changes of every open cache.
func (s *FileStore) Flush() error {
	s.mu.Lock()
	caches := make([]flusher, 0, len(s.caches))
	for _, c := range s.caches {
		caches = append(caches, c)
	}
	s.mu.Unlock()

	var errs []error
	for _, c := range caches {
		if err := c.flush(); err != nil {
			errs = append(errs, zerr.With(err, "cache", c.Name()))
		}
	}
	return errors.Join(errs...)
}

// Close flushes every cache and rejects further use.
func (s *FileStore) Close() error {
	if s.isClosed() {
		return nil
	}
	err := s.Flush()

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return err
}

func (s *FileStore) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
