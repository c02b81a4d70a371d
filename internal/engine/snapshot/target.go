package snapshot

import (
	"os"

	"go.trai.ch/filehash/internal/core/ports"
)

// fileWithMetadata is the metadata source the snapshot algorithm works on.
// The set of implementations is closed: a plain file and a tree element.
// New snapshot sources are new ports.TreeElement implementations.
type fileWithMetadata interface {
	file() string
	size() int64
	modTime() int64
}

// fileAccessor reads size and modification time from disk at call time.
// A file that cannot be stat'ed reports zero for both; the hasher then
// reports why it cannot be read.
type fileAccessor struct {
	path string
}

func (a fileAccessor) file() string {
	return a.path
}

func (a fileAccessor) size() int64 {
	info, err := os.Stat(a.path)
	if err != nil {
		return 0
	}
	return info.Size()
}

func (a fileAccessor) modTime() int64 {
	info, err := os.Stat(a.path)
	if err != nil {
		return 0
	}
	return info.ModTime().UnixNano()
}

// treeElementAccessor reports the metadata supplied by the enclosing tree.
type treeElementAccessor struct {
	element ports.TreeElement
}

func (a treeElementAccessor) file() string {
	return a.element.File()
}

func (a treeElementAccessor) size() int64 {
	return a.element.Size()
}

func (a treeElementAccessor) modTime() int64 {
	return a.element.ModTime()
}
