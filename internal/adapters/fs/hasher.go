// Package fs provides file system adapters for hashing files and resolving paths.
package fs

import (
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/filehash/internal/core/domain"
	"go.trai.ch/filehash/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes XXHash64 digests of file content.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Hash returns the 8-byte big-endian XXHash64 digest of the file's content.
// Errors wrap the underlying I/O error, so errors.Is matches fs.ErrNotExist
// and friends.
func (h *Hasher) Hash(file string) ([]byte, error) {
	f, err := os.Open(file) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", file)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	digest := xxhash.New()
	if _, err := io.Copy(digest, f); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", file)
	}

	return digest.Sum(nil), nil
}

// HashBytes returns the XXHash64 digest of data in the same layout as Hash.
func HashBytes(data []byte) []byte {
	digest := xxhash.New()
	_, _ = digest.Write(data)
	return digest.Sum(nil)
}
