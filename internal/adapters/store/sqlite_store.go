package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	_ "github.com/tursodatabase/go-libsql" // registers the "libsql" driver
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"go.trai.ch/filehash/internal/core/codec"
	"go.trai.ch/filehash/internal/core/domain"
	"go.trai.ch/filehash/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.PersistentStore  = (*SQLiteStore)(nil)
	_ ports.FingerprintStore = (*sqliteCache)(nil)
)

// fileHashModel is one row of the file_hashes table.
type fileHashModel struct {
	bun.BaseModel `bun:"table:file_hashes"`

	Cache string `bun:"cache,pk"`
	Key   string `bun:"key,pk"`
	Value []byte `bun:"value,notnull"`
}

// SQLiteStore keeps every cache in one SQLite database.
// Writes go straight to the database, so Flush has nothing to do.
type SQLiteStore struct {
	db   *bun.DB
	path string

	mu     sync.Mutex
	caches map[string]*sqliteCache
	closed bool
}

// OpenSQLite opens or creates the cache database at path.
func OpenSQLite(path string, opts Options) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", path)
	}

	sqlDB, err := sql.Open("libsql", "file:"+path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", path)
	}

	// libsql ignores DSN pragmas; busy_timeout must be set explicitly.
	if err := execPragma(sqlDB, fmt.Sprintf("PRAGMA busy_timeout = %d", opts.LockTimeout.Milliseconds())); err != nil {
		_ = sqlDB.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", path)
	}

	db := bun.NewDB(sqlDB, sqlitedialect.New())
	if _, err := db.NewCreateTable().Model((*fileHashModel)(nil)).IfNotExists().Exec(context.Background()); err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", path)
	}

	return &SQLiteStore{
		db:     db,
		path:   path,
		caches: make(map[string]*sqliteCache),
	}, nil
}

// execPragma runs a PRAGMA through Query because libsql returns rows for it.
func execPragma(db *sql.DB, pragma string) error {
	rows, err := db.Query(pragma) //nolint:rowserrcheck // rows are discarded
	if err != nil {
		return err
	}
	return rows.Close()
}

// Fingerprints returns the fingerprint cache called name.
func (s *SQLiteStore) Fingerprints(name string) (ports.FingerprintStore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, domain.ErrStoreClosed
	}
	if c, ok := s.caches[name]; ok {
		return c, nil
	}
	c := &sqliteCache{
		name:   name,
		db:     s.db,
		loaded: make(map[string]*domain.Fingerprint),
		closed: s.isClosed,
	}
	s.caches[name] = c
	return c, nil
}

// Flush is a no-op: every Put is committed immediately.
func (s *SQLiteStore) Flush() error {
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.db.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close cache database"), "path", s.path)
	}
	return nil
}

func (s *SQLiteStore) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// sqliteCache is one named cache inside a SQLiteStore. Decoded values are
// memoized so repeated lookups of an unchanged key return the same pointer.
type sqliteCache struct {
	name   string
	db     *bun.DB
	closed func() bool

	mu     sync.RWMutex
	loaded map[string]*domain.Fingerprint
}

func (c *sqliteCache) Get(key string) (*domain.Fingerprint, error) {
	if c.closed() {
		return nil, domain.ErrStoreClosed
	}

	c.mu.RLock()
	fp, ok := c.loaded[key]
	c.mu.RUnlock()
	if ok {
		return fp, nil
	}

	ctx := context.Background()
	row, err := retry.DoWithData(
		func() (*fileHashModel, error) {
			var m fileHashModel
			err := c.db.NewSelect().
				Model(&m).
				Where("cache = ?", c.name).
				Where("key = ?", key).
				Scan(ctx)
			if err != nil {
				return nil, err
			}
			return &m, nil
		},
		databaseRetryOptions(ctx)...,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreQueryFailed.Error()), "key", key)
	}

	fp, err = codec.Unmarshal[*domain.Fingerprint](codec.FingerprintSerializer{}, row.Value)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreCorrupt.Error()), "key", key)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.loaded[key]; ok {
		return existing, nil
	}
	c.loaded[key] = fp
	return fp, nil
}

func (c *sqliteCache) Put(key domain.InternedString, fp *domain.Fingerprint) error {
	if c.closed() {
		return domain.ErrStoreClosed
	}

	data, err := codec.Marshal[*domain.Fingerprint](codec.FingerprintSerializer{}, fp)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "key", key.String())
	}

	ctx := context.Background()
	err = retry.Do(
		func() error {
			_, err := c.db.NewInsert().
				Model(&fileHashModel{Cache: c.name, Key: key.String(), Value: data}).
				On("CONFLICT (cache, key) DO UPDATE").
				Set("value = EXCLUDED.value").
				Exec(ctx)
			return err
		},
		databaseRetryOptions(ctx)...,
	)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreQueryFailed.Error()), "key", key.String())
	}

	c.mu.Lock()
	c.loaded[key.String()] = fp
	c.mu.Unlock()
	return nil
}

// databaseRetryOptions retries transient lock errors with a short backoff.
func databaseRetryOptions(ctx context.Context) []retry.Option {
	return []retry.Option{
		retry.Attempts(3),
		retry.Delay(100 * time.Millisecond),
		retry.MaxDelay(300 * time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.RetryIf(isDatabaseLocked),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
	}
}

func isDatabaseLocked(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "database is locked")
}
