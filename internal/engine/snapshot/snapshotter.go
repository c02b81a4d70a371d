// Package snapshot decides when a file's content hash must be recomputed.
//
// A recorded fingerprint is trusted while the file's size and modification
// time both equal the recorded ones. This is a heuristic: a rewrite that keeps
// the size and lands within the same timestamp tick goes unnoticed.
package snapshot

import (
	"path/filepath"

	"go.trai.ch/filehash/internal/core/domain"
	"go.trai.ch/filehash/internal/core/ports"
)

var _ ports.Snapshotter = (*Snapshotter)(nil)

// Snapshotter fingerprints files through a persistent cache.
//
// It holds no state besides its collaborators and performs no locking.
// Concurrent snapshots of the same changed file may both hash it and both
// write; the writes are equal, so the last one winning is harmless.
type Snapshotter struct {
	hasher   ports.Hasher
	store    ports.FingerprintStore
	interner ports.Interner
}

// New creates a Snapshotter.
func New(hasher ports.Hasher, store ports.FingerprintStore, interner ports.Interner) *Snapshotter {
	return &Snapshotter{
		hasher:   hasher,
		store:    store,
		interner: interner,
	}
}

// SnapshotFile fingerprints a plain file.
func (s *Snapshotter) SnapshotFile(file string) (*domain.Fingerprint, error) {
	return s.snapshot(fileAccessor{path: file})
}

// SnapshotElement fingerprints a tree element using the size and modification
// time reported by its tree.
func (s *Snapshotter) SnapshotElement(element ports.TreeElement) (*domain.Fingerprint, error) {
	return s.snapshot(treeElementAccessor{element: element})
}

func (s *Snapshotter) snapshot(target fileWithMetadata) (*domain.Fingerprint, error) {
	file := target.file()
	absolutePath, err := filepath.Abs(file)
	if err != nil {
		return nil, err
	}

	info, err := s.store.Get(absolutePath)
	if err != nil {
		return nil, err
	}

	size := target.size()
	modTime := target.modTime()
	if info != nil && info.Matches(size, modTime) {
		return info, nil
	}

	hash, err := s.hasher.Hash(file)
	if err != nil {
		return nil, err
	}

	info = domain.NewFingerprint(hash, size, modTime)
	if err := s.store.Put(s.interner.Intern(absolutePath), info); err != nil {
		return nil, err
	}
	return info, nil
}
