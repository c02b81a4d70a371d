package ports

import "go.trai.ch/filehash/internal/core/domain"

// Snapshotter returns the fingerprint of a file, reusing the cached one when
// the file's size and modification time are unchanged.
//
//go:generate go run go.uber.org/mock/mockgen -source=snapshotter.go -destination=mocks/mock_snapshotter.go -package=mocks
type Snapshotter interface {
	// SnapshotFile fingerprints a plain file, reading its metadata from disk.
	SnapshotFile(file string) (*domain.Fingerprint, error)

	// SnapshotElement fingerprints a tree element using the metadata the tree reports.
	SnapshotElement(element TreeElement) (*domain.Fingerprint, error)
}

// TreeFactory builds file trees for the paths handed to the tool.
type TreeFactory interface {
	// Dir returns a tree over the regular files below root, skipping paths
	// matched by the gitignore-style patterns in ignore.
	Dir(root string, ignore []string) (FileTree, error)

	// Archive returns a tree over the entries of a zip archive, expanded
	// below expandRoot.
	Archive(archive, expandRoot string) (FileTree, error)
}
