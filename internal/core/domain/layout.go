package domain

import "path/filepath"

const (
	// FilehashDirName is the name of the internal workspace directory.
	FilehashDirName = ".filehash"

	// CacheDirName is the name of the persistent cache directory.
	CacheDirName = "cache"

	// ArchivesDirName is the name of the directory archives are expanded into.
	ArchivesDirName = "archives"

	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "filehash.yaml"

	// SQLiteFileName is the name of the cache database used by the sqlite backend.
	SQLiteFileName = "cache.db"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultFilehashPath returns the default root directory for filehash metadata.
func DefaultFilehashPath() string {
	return FilehashDirName
}

// DefaultCachePath returns the default path for the persistent cache.
// It joins .filehash and cache.
func DefaultCachePath() string {
	return filepath.Join(FilehashDirName, CacheDirName)
}

// ArchivesPath returns the directory archives are expanded into for a cache directory.
func ArchivesPath(cacheDir string) string {
	return filepath.Join(cacheDir, ArchivesDirName)
}
