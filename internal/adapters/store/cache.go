package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/filehash/internal/core/codec"
	"go.trai.ch/filehash/internal/core/domain"
	"go.trai.ch/zerr"
)

// Cache is a named persistent map from string keys to values of type V.
//
// The backing file is read on first access. Values read from it are decoded
// once, so repeated lookups of the same key return the same V. Writes stay in
// memory until Flush.
type Cache[V any] struct {
	name       string
	path       string
	lock       *fileLock
	serializer codec.Serializer[V]
	closed     func() bool

	loadOnce sync.Once
	loadErr  error

	mu      sync.RWMutex
	entries map[string]V
	dirty   map[string]domain.InternedString
}

func newCache[V any](dir, name string, serializer codec.Serializer[V], opts Options, closed func() bool) *Cache[V] {
	return &Cache[V]{
		name:       name,
		path:       filepath.Join(dir, name+fileExt),
		lock:       newFileLock(filepath.Join(dir, name+lockExt), opts.LockTimeout),
		serializer: serializer,
		closed:     closed,
		entries:    make(map[string]V),
		dirty:      make(map[string]domain.InternedString),
	}
}

// Name returns the cache name.
func (c *Cache[V]) Name() string {
	return c.name
}

// Get returns the value stored under key, or the zero V if there is none.
func (c *Cache[V]) Get(key string) (V, error) {
	var zero V
	if c.closed() {
		return zero, domain.ErrStoreClosed
	}
	if err := c.ensureLoaded(); err != nil {
		return zero, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries[key], nil
}

// Put stores v under key, replacing any previous value.
func (c *Cache[V]) Put(key domain.InternedString, v V) error {
	if c.closed() {
		return domain.ErrStoreClosed
	}
	if err := c.ensureLoaded(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key.String()] = v
	c.dirty[key.String()] = key
	return nil
}

// Len returns the number of entries currently held.
func (c *Cache[V]) Len() (int, error) {
	if err := c.ensureLoaded(); err != nil {
		return 0, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries), nil
}

func (c *Cache[V]) ensureLoaded() error {
	c.loadOnce.Do(func() {
		c.loadErr = c.load()
	})
	return c.loadErr
}

func (c *Cache[V]) load() error {
	if err := c.lock.acquireShared(); err != nil {
		return err
	}
	defer c.lock.release() //nolint:errcheck // Best effort unlock after read

	raw, err := c.readFile()
	if err != nil {
		return err
	}

	entries := make(map[string]V, len(raw))
	for key, data := range raw {
		v, err := codec.Unmarshal(c.serializer, data)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrStoreCorrupt.Error()), "key", key)
		}
		entries[key] = v
	}

	c.mu.Lock()
	c.entries = entries
	c.mu.Unlock()
	return nil
}

// readFile returns the raw entries on disk; a missing file is an empty cache.
func (c *Cache[V]) readFile() (map[string][]byte, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string][]byte{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", c.path)
	}

	entries, err := decodeContainer(data)
	if err != nil {
		return nil, zerr.With(err, "path", c.path)
	}
	return entries, nil
}

// flush merges the keys written since the last flush into the file on disk.
// Entries written by other processes in the meantime are kept.
func (c *Cache[V]) flush() error {
	c.mu.RLock()
	pending := len(c.dirty)
	c.mu.RUnlock()
	if pending == 0 {
		return nil
	}

	if err := c.lock.acquireExclusive(); err != nil {
		return err
	}
	defer c.lock.release() //nolint:errcheck // Best effort unlock after write

	onDisk, err := c.readFile()
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.dirty {
		data, err := codec.Marshal(c.serializer, c.entries[key])
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "key", key)
		}
		onDisk[key] = data
	}

	body, err := encodeContainer(onDisk)
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := writeFileAtomic(c.path, body); err != nil {
		return err
	}

	clear(c.dirty)
	return nil
}

// writeFileAtomic replaces path with data through a temporary file and rename.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	if err := os.Chmod(tmpPath, domain.FilePerm); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	return nil
}
