package ports

// TreeElement is a regular file exposed by a file tree, with the size and
// modification time the tree reports for it. The reported metadata may differ
// from the raw file on disk.
type TreeElement interface {
	// File returns the path of the underlying file holding the element's content.
	File() string
	// RelativePath returns the element's path inside its tree, slash separated.
	RelativePath() string
	// Size returns the reported size in bytes.
	Size() int64
	// ModTime returns the reported modification time in UnixNano.
	ModTime() int64
}

// FileTree is a traversable set of regular files.
//
//go:generate go run go.uber.org/mock/mockgen -source=tree.go -destination=mocks/mock_tree.go -package=mocks
type FileTree interface {
	// Visit calls fn for every element of the tree in lexical order.
	// It stops at the first error returned by fn.
	Visit(fn func(TreeElement) error) error
}
