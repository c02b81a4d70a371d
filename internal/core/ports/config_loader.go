package ports

import "go.trai.ch/filehash/internal/core/domain"

// ConfigLoader defines the interface for loading the tool configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers the configuration for cwd and returns it with defaults applied.
	Load(cwd string) (*domain.Config, error)
	// LoadFile reads the configuration file at path and returns it with defaults applied.
	LoadFile(path string) (*domain.Config, error)
}
