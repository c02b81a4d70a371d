// Package config provides the configuration loader for filehash.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"time"

	"go.trai.ch/filehash/internal/core/domain"
	"go.trai.ch/filehash/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// EnvCacheDir overrides the configured cache directory when set.
const EnvCacheDir = "FILEHASH_CACHE_DIR"

// supportedVersion is the only configuration file version understood.
const supportedVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load discovers filehash.yaml in cwd or one of its parents. Without a
// configuration file the defaults apply, rooted at cwd.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	abs, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "cwd", cwd)
	}

	configPath, found := findConfiguration(abs)
	if !found {
		l.Logger.Debug("no " + domain.ConfigFileName + " found, using defaults")
		return resolve(&Filehashfile{}, abs)
	}
	return l.LoadFile(configPath)
}

// LoadFile reads the configuration file at path. Relative paths in the file
// are resolved against the file's directory.
func (l *Loader) LoadFile(path string) (*domain.Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Filehashfile
	if err := readAndUnmarshalYAML(abs, &file); err != nil {
		return nil, zerr.With(err, "path", abs)
	}

	l.Logger.Debug("using configuration " + abs)
	return resolve(&file, filepath.Dir(abs))
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

// resolve validates file and applies defaults.
func resolve(file *Filehashfile, root string) (*domain.Config, error) {
	if file.Version != "" && file.Version != supportedVersion {
		return nil, zerr.With(domain.ErrConfigInvalid, "version", file.Version)
	}

	backend := domain.Backend(file.Backend)
	switch backend {
	case "":
		backend = domain.BackendFile
	case domain.BackendFile, domain.BackendSQLite:
	default:
		return nil, zerr.With(domain.ErrConfigInvalid, "backend", file.Backend)
	}

	if file.Concurrency < 0 {
		return nil, zerr.With(domain.ErrConfigInvalid, "concurrency", file.Concurrency)
	}
	concurrency := file.Concurrency
	if concurrency == 0 {
		concurrency = runtime.NumCPU()
	}

	lockTimeout := domain.DefaultLockTimeout
	if file.LockTimeout != "" {
		d, err := time.ParseDuration(file.LockTimeout)
		if err != nil || d <= 0 {
			return nil, zerr.With(domain.ErrConfigInvalid, "lockTimeout", file.LockTimeout)
		}
		lockTimeout = d
	}

	format := domain.LogFormat(file.Log.Format)
	switch format {
	case "":
		format = domain.LogFormatPretty
	case domain.LogFormatPretty, domain.LogFormatJSON:
	default:
		return nil, zerr.With(domain.ErrConfigInvalid, "log.format", file.Log.Format)
	}

	cacheDir := file.CacheDir
	if env := os.Getenv(EnvCacheDir); env != "" {
		cacheDir = env
	}
	if cacheDir == "" {
		cacheDir = domain.DefaultCachePath()
	}

	return &domain.Config{
		Root:        root,
		CacheDir:    resolvePath(root, cacheDir),
		Backend:     backend,
		Concurrency: concurrency,
		Ignore:      slices.Clone(file.Ignore),
		LockTimeout: lockTimeout,
		LogFormat:   format,
	}, nil
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target
// struct, rejecting unknown fields. An empty file leaves target unchanged.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(configFile))
	dec.KnownFields(true)
	if parseErr := dec.Decode(target); parseErr != nil && !errors.Is(parseErr, io.EOF) {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
