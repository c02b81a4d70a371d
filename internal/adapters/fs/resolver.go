package fs

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/filehash/internal/core/domain"
	"go.trai.ch/filehash/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InputResolver = (*Resolver)(nil)

// Resolver turns the paths given on the command line into existing files,
// directories and archives.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveInputs resolves each input against root unless it is absolute.
// Inputs containing glob metacharacters are expanded; plain inputs must exist.
// The result is sorted and free of duplicates. An input that resolves to
// nothing fails with domain.ErrInputNotFound.
func (r *Resolver) ResolveInputs(inputs []string, root string) ([]string, error) {
	var paths []string
	for _, input := range inputs {
		matches, err := resolveInput(input, root)
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}

	slices.Sort(paths)
	return slices.Compact(paths), nil
}

func resolveInput(input, root string) ([]string, error) {
	path := input
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}

	if !strings.ContainsAny(input, "*?[") {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, inputNotFound(path)
			}
			return nil, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path)
		}
		return []string{path}, nil
	}

	matches, err := filepath.Glob(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid glob pattern"), "pattern", input)
	}
	if len(matches) == 0 {
		return nil, inputNotFound(path)
	}
	return matches, nil
}

// inputNotFound keeps domain.ErrInputNotFound in the chain so errors.Is matches.
func inputNotFound(path string) error {
	return zerr.With(zerr.Wrap(domain.ErrInputNotFound, ""), "path", path)
}
