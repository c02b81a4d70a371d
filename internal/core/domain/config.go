package domain

import "time"

// Backend selects the persistent store implementation.
type Backend string

const (
	// BackendFile stores each cache in a single binary file guarded by a file lock.
	BackendFile Backend = "file"
	// BackendSQLite stores all caches in one SQLite database.
	BackendSQLite Backend = "sqlite"
)

// LogFormat selects the log output format.
type LogFormat string

const (
	// LogFormatPretty prints human-readable, colored log lines.
	LogFormatPretty LogFormat = "pretty"
	// LogFormatJSON prints one JSON object per log record.
	LogFormatJSON LogFormat = "json"
)

// DefaultLockTimeout bounds how long the store waits for the cache lock.
const DefaultLockTimeout = 5 * time.Second

// Config is the resolved tool configuration.
type Config struct {
	// Root is the directory the configuration applies to.
	Root string
	// CacheDir is the absolute path of the persistent cache directory.
	CacheDir string
	// Backend is the persistent store implementation.
	Backend Backend
	// Concurrency is the maximum number of files snapshotted in parallel.
	Concurrency int
	// Ignore holds gitignore-style patterns applied when walking directories.
	Ignore []string
	// LockTimeout bounds cache lock acquisition.
	LockTimeout time.Duration
	// LogFormat is the log output format.
	LogFormat LogFormat
}
