// Package tree implements the file trees snapshotted member by member.
package tree

import "go.trai.ch/filehash/internal/core/ports"

var _ ports.TreeElement = element{}

// element is a regular file of a tree with the metadata the tree reports for it.
type element struct {
	file    string
	rel     string
	size    int64
	modTime int64
}

func (e element) File() string         { return e.file }
func (e element) RelativePath() string { return e.rel }
func (e element) Size() int64          { return e.size }
func (e element) ModTime() int64       { return e.modTime }
