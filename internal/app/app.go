// Package app implements the application layer for filehash.
package app

import (
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/filehash/internal/core/domain"
	"go.trai.ch/filehash/internal/core/ports"
	"go.trai.ch/filehash/internal/engine/snapshot"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	resolver     ports.InputResolver
	trees        ports.TreeFactory
	stores       ports.StoreOpener
	snapshots    *snapshot.Factory
	tracer       ports.Tracer
	watcher      ports.Watcher
	out          io.Writer
}

// New creates a new App instance writing results to stdout.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	resolver ports.InputResolver,
	trees ports.TreeFactory,
	stores ports.StoreOpener,
	snapshots *snapshot.Factory,
	tracer ports.Tracer,
	watcher ports.Watcher,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		resolver:     resolver,
		trees:        trees,
		stores:       stores,
		snapshots:    snapshots,
		tracer:       tracer,
		watcher:      watcher,
		out:          os.Stdout,
	}
}

// WithOutput redirects result lines to w.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// jsonLogger is implemented by loggers that can switch to JSON records.
type jsonLogger interface {
	SetJSON(enable bool)
}

// loadConfig reads the configuration at configPath, or discovers it from the
// working directory when configPath is empty. A configured JSON log format is
// applied to the logger.
func (a *App) loadConfig(configPath string) (*domain.Config, error) {
	var (
		cfg *domain.Config
		err error
	)
	if configPath != "" {
		cfg, err = a.configLoader.LoadFile(configPath)
	} else {
		var cwd string
		cwd, err = os.Getwd()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to get working directory")
		}
		cfg, err = a.configLoader.Load(cwd)
	}
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if l, ok := a.logger.(jsonLogger); ok && cfg.LogFormat == domain.LogFormatJSON {
		l.SetJSON(true)
	}
	return cfg, nil
}

// openFingerprints opens the configured store and its file hash cache.
func (a *App) openFingerprints(cfg *domain.Config) (ports.PersistentStore, ports.FingerprintStore, error) {
	store, err := a.stores.Open(cfg)
	if err != nil {
		return nil, nil, err
	}

	fps, err := store.Fingerprints(domain.FileHashesCacheName)
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	return store, fps, nil
}

// ignorePatterns returns the configured patterns plus the cache directory
// when it lies inside root.
func ignorePatterns(cfg *domain.Config, root string) []string {
	patterns := append([]string(nil), cfg.Ignore...)
	rel, err := filepath.Rel(root, cfg.CacheDir)
	if err == nil && filepath.IsLocal(rel) {
		patterns = append(patterns, "/"+filepath.ToSlash(rel)+"/")
	}
	return patterns
}

// Clean removes the persistent cache.
func (a *App) Clean(configPath string) error {
	cfg, err := a.loadConfig(configPath)
	if err != nil {
		return err
	}

	if err := a.stores.Clean(cfg); err != nil {
		return err
	}

	a.logger.Info("removed " + cfg.CacheDir)
	return nil
}
