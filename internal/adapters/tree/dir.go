package tree

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	ignore "github.com/sabhiram/go-gitignore"
	"go.trai.ch/filehash/internal/core/domain"
	"go.trai.ch/filehash/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileTree = (*DirTree)(nil)

// gitignoreFile is read from the tree root when present.
const gitignoreFile = ".gitignore"

// DirTree is the set of regular files below a directory.
//
// Version control metadata and the tool's own directory are always skipped,
// as are paths matched by the ignore patterns. Symbolic links are not followed
// and not reported.
type DirTree struct {
	root    string
	fs      billy.Filesystem
	matcher *ignore.GitIgnore
}

// NewDirTree creates a DirTree over root. Patterns use gitignore syntax and are
// combined with the root's .gitignore file, if any.
func NewDirTree(root string, patterns []string) (*DirTree, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTreeWalkFailed.Error()), "path", root)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", abs)
	}
	if !info.IsDir() {
		return nil, zerr.With(zerr.New("not a directory"), "path", abs)
	}

	matcher, err := compileIgnore(abs, patterns)
	if err != nil {
		return nil, err
	}

	return &DirTree{
		root:    abs,
		fs:      osfs.New(abs, osfs.WithBoundOS()),
		matcher: matcher,
	}, nil
}

func compileIgnore(root string, patterns []string) (*ignore.GitIgnore, error) {
	path := filepath.Join(root, gitignoreFile)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ignore.CompileIgnoreLines(patterns...), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path)
	}

	matcher, err := ignore.CompileIgnoreFileAndLines(path, patterns...)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read ignore file"), "path", path)
	}
	return matcher, nil
}

// Root returns the absolute directory the tree covers.
func (t *DirTree) Root() string {
	return t.root
}

// Visit calls fn for every regular file in lexical path order.
func (t *DirTree) Visit(fn func(ports.TreeElement) error) error {
	return util.Walk(t.fs, ".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrTreeWalkFailed.Error()), "path", filepath.Join(t.root, path))
		}
		if path == "." {
			return nil
		}

		rel := filepath.ToSlash(path)
		if info.IsDir() {
			if t.skipDir(info.Name(), rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.Mode().IsRegular() || t.matcher.MatchesPath(rel) {
			return nil
		}

		return fn(element{
			file:    filepath.Join(t.root, path),
			rel:     rel,
			size:    info.Size(),
			modTime: info.ModTime().UnixNano(),
		})
	})
}

func (t *DirTree) skipDir(name, rel string) bool {
	switch name {
	case ".git", ".jj", domain.FilehashDirName:
		return true
	}
	return t.matcher.MatchesPath(rel + "/")
}
