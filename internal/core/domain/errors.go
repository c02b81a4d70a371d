package domain

import "go.trai.ch/zerr"

var (
	// ErrFileOpenFailed is returned when a file cannot be opened for hashing.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when reading a file into the digest fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrPathStatFailed is returned when stating a path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrInputNotFound is returned when a path given to the snapshot command does not exist.
	ErrInputNotFound = zerr.New("input not found")

	// ErrStoreCreateFailed is returned when the cache directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create cache directory")

	// ErrStoreReadFailed is returned when a cache file cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read cache file")

	// ErrStoreWriteFailed is returned when a cache file cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write cache file")

	// ErrStoreCorrupt is returned when a cache file does not match the expected layout.
	ErrStoreCorrupt = zerr.New("cache file is corrupt")

	// ErrStoreVersionUnsupported is returned when a cache file was written by an unknown format version.
	ErrStoreVersionUnsupported = zerr.New("unsupported cache file version")

	// ErrStoreLocked is returned when the cache lock cannot be acquired in time.
	ErrStoreLocked = zerr.New("cache is locked by another process")

	// ErrStoreClosed is returned when a cache is used after its store was closed.
	ErrStoreClosed = zerr.New("cache store is closed")

	// ErrStoreOpenFailed is returned when the SQLite cache database cannot be opened.
	ErrStoreOpenFailed = zerr.New("failed to open cache database")

	// ErrStoreQueryFailed is returned when a cache database query fails.
	ErrStoreQueryFailed = zerr.New("cache database query failed")

	// ErrStoreCleanFailed is returned when the cache directory cannot be removed.
	ErrStoreCleanFailed = zerr.New("failed to remove cache directory")

	// ErrArchiveOpenFailed is returned when an archive cannot be opened.
	ErrArchiveOpenFailed = zerr.New("failed to open archive")

	// ErrArchiveExpandFailed is returned when an archive entry cannot be expanded to disk.
	ErrArchiveExpandFailed = zerr.New("failed to expand archive entry")

	// ErrUnsafeArchiveEntry is returned when an archive entry would escape the expansion directory.
	ErrUnsafeArchiveEntry = zerr.New("archive entry escapes expansion directory")

	// ErrTreeWalkFailed is returned when a directory tree cannot be read.
	ErrTreeWalkFailed = zerr.New("failed to walk file tree")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the config file contains an invalid value.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrWatcherStartFailed is returned when the file watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start file watcher")

	// ErrSnapshotFailed is returned when at least one path could not be snapshotted.
	ErrSnapshotFailed = zerr.New("snapshot failed")
)
