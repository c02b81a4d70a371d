// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/filehash/internal/adapters/config"
	_ "go.trai.ch/filehash/internal/adapters/fs"
	_ "go.trai.ch/filehash/internal/adapters/interner"
	_ "go.trai.ch/filehash/internal/adapters/logger"
	_ "go.trai.ch/filehash/internal/adapters/store"
	_ "go.trai.ch/filehash/internal/adapters/telemetry"
	_ "go.trai.ch/filehash/internal/adapters/tree"
	_ "go.trai.ch/filehash/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/filehash/internal/app"
	_ "go.trai.ch/filehash/internal/engine/snapshot"
)
