package tree

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"go.trai.ch/filehash/internal/core/domain"
	"go.trai.ch/filehash/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileTree = (*ZipTree)(nil)

// ZipTree is the set of regular entries of a zip archive.
//
// Entries are expanded below a directory derived from the archive's absolute
// path, so repeated runs reuse the same expanded files. Elements report the
// entry's uncompressed size and modification time, not those of the expanded
// copy.
type ZipTree struct {
	archive   string
	expandDir string
	fs        billy.Filesystem
}

// NewZipTree creates a ZipTree for archive expanding into expandRoot.
func NewZipTree(archive, expandRoot string) (*ZipTree, error) {
	abs, err := filepath.Abs(archive)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrArchiveOpenFailed.Error()), "path", archive)
	}

	expandDir := filepath.Join(expandRoot, fmt.Sprintf("%016x", xxhash.Sum64String(abs)))
	if err := os.MkdirAll(expandDir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrArchiveExpandFailed.Error()), "path", expandDir)
	}

	return &ZipTree{
		archive:   abs,
		expandDir: expandDir,
		fs:        osfs.New(expandDir, osfs.WithBoundOS()),
	}, nil
}

// ExpandDir returns the directory the entries are expanded into.
func (t *ZipTree) ExpandDir() string {
	return t.expandDir
}

// Visit expands each regular entry as needed and calls fn with it, in entry
// name order.
func (t *ZipTree) Visit(fn func(ports.TreeElement) error) error {
	r, err := zip.OpenReader(t.archive)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveOpenFailed.Error()), "path", t.archive)
	}
	defer r.Close() //nolint:errcheck // Read-only archive

	files := slices.Clone(r.File)
	slices.SortFunc(files, func(a, b *zip.File) int {
		return strings.Compare(a.Name, b.Name)
	})

	for _, f := range files {
		if !f.Mode().IsRegular() {
			continue
		}

		name := path.Clean(f.Name)
		if !filepath.IsLocal(filepath.FromSlash(name)) {
			return zerr.With(zerr.With(domain.ErrUnsafeArchiveEntry, "entry", f.Name), "archive", t.archive)
		}

		el := element{
			file:    filepath.Join(t.expandDir, filepath.FromSlash(name)),
			rel:     name,
			size:    int64(f.UncompressedSize64), //nolint:gosec // zip sizes fit int64 in practice
			modTime: f.Modified.UnixNano(),
		}
		if err := t.expand(f, name, el); err != nil {
			return err
		}
		if err := fn(el); err != nil {
			return err
		}
	}
	return nil
}

// expand writes the entry to disk unless an expanded copy with the entry's
// size and modification time already exists.
func (t *ZipTree) expand(f *zip.File, name string, el element) error {
	if info, err := t.fs.Lstat(name); err == nil &&
		info.Mode().IsRegular() &&
		info.Size() == el.size &&
		info.ModTime().UnixNano() == el.modTime {
		return nil
	}

	if err := t.writeEntry(f, name); err != nil {
		return zerr.With(zerr.With(zerr.Wrap(err, domain.ErrArchiveExpandFailed.Error()), "entry", f.Name), "archive", t.archive)
	}

	// The expanded copy carries the entry's timestamp so the next run can skip it.
	if err := os.Chtimes(el.file, f.Modified, f.Modified); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveExpandFailed.Error()), "path", el.file)
	}
	return nil
}

func (t *ZipTree) writeEntry(f *zip.File, name string) error {
	src, err := f.Open()
	if err != nil {
		return err
	}
	defer src.Close() //nolint:errcheck // Read-only entry

	dst, err := t.fs.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil { //nolint:gosec // size is bounded by the archive
		_ = dst.Close()
		return err
	}
	return dst.Close()
}
