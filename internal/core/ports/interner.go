package ports

import "go.trai.ch/filehash/internal/core/domain"

// Interner returns a canonical instance for equal strings.
//
//go:generate go run go.uber.org/mock/mockgen -source=interner.go -destination=mocks/mock_interner.go -package=mocks
type Interner interface {
	Intern(s string) domain.InternedString
}
