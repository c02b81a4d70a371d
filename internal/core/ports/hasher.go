// Package ports defines the core interfaces for the application.
package ports

// Hasher computes content hashes of files.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Hash returns the digest of the file's content.
	// It is deterministic for identical bytes and fails with the underlying
	// I/O error when the file cannot be read.
	Hash(file string) ([]byte, error)
}
