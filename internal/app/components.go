package app

import "go.trai.ch/filehash/internal/core/ports"

// Components contains the initialized application components the CLI uses.
type Components struct {
	App    *App
	Logger ports.Logger
}
