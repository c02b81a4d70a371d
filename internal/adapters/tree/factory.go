package tree

import "go.trai.ch/filehash/internal/core/ports"

var _ ports.TreeFactory = (*Factory)(nil)

// Factory builds directory and archive trees.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Dir returns a DirTree over root.
func (f *Factory) Dir(root string, ignore []string) (ports.FileTree, error) {
	return NewDirTree(root, ignore)
}

// Archive returns a ZipTree over archive expanding into expandRoot.
func (f *Factory) Archive(archive, expandRoot string) (ports.FileTree, error) {
	return NewZipTree(archive, expandRoot)
}
