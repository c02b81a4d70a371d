// Package interner provides the string interning pool used for cache keys.
package interner

import (
	"go.trai.ch/filehash/internal/core/domain"
	"go.trai.ch/filehash/internal/core/ports"
)

var _ ports.Interner = (*Pool)(nil)

// Pool interns strings into canonical domain.InternedString handles.
// The handles are process-wide, so every Pool returns the same handle for
// equal strings.
type Pool struct{}

// NewPool creates a Pool.
func NewPool() *Pool {
	return &Pool{}
}

// Intern returns the canonical handle for s.
func (p *Pool) Intern(s string) domain.InternedString {
	return domain.NewInternedString(s)
}
