// Package domain contains the core domain types of the file hash cache.
package domain

import "bytes"

// FileHashesCacheName is the name of the persistent cache holding file fingerprints.
// It is fixed so that repeated runs reopen the same on-disk cache.
const FileHashesCacheName = "fileHashes"

// Fingerprint is the content hash of a file together with the size and
// modification time it was computed from.
//
// A Fingerprint never changes after construction. Callers compare fingerprints
// by pointer: a pointer returned twice means the second lookup was served from
// the cache without hashing.
type Fingerprint struct {
	hash    []byte
	size    int64
	modTime int64
}

// NewFingerprint creates a Fingerprint. The hash slice is copied.
func NewFingerprint(hash []byte, size, modTime int64) *Fingerprint {
	return &Fingerprint{
		hash:    bytes.Clone(hash),
		size:    size,
		modTime: modTime,
	}
}

// Hash returns a copy of the content hash.
func (f *Fingerprint) Hash() []byte {
	return bytes.Clone(f.hash)
}

// Size returns the file size in bytes the hash was computed for.
func (f *Fingerprint) Size() int64 {
	return f.size
}

// ModTime returns the modification time (UnixNano) the hash was computed for.
func (f *Fingerprint) ModTime() int64 {
	return f.modTime
}

// Matches reports whether the recorded size and modification time equal the given ones.
func (f *Fingerprint) Matches(size, modTime int64) bool {
	return f.size == size && f.modTime == modTime
}

// Equal reports whether two fingerprints carry the same hash, size and modification time.
func (f *Fingerprint) Equal(other *Fingerprint) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.size == other.size && f.modTime == other.modTime && bytes.Equal(f.hash, other.hash)
}
