package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/filehash/internal/adapters/config"
	"go.trai.ch/filehash/internal/core/domain"
	"go.trai.ch/filehash/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return config.NewLoader(logger)
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(config.EnvCacheDir, "")
	dir := t.TempDir()

	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, &domain.Config{
		Root:        dir,
		CacheDir:    filepath.Join(dir, ".filehash", "cache"),
		Backend:     domain.BackendFile,
		Concurrency: runtime.NumCPU(),
		LockTimeout: domain.DefaultLockTimeout,
		LogFormat:   domain.LogFormatPretty,
	}, cfg)
}

func TestLoad_FullFile(t *testing.T) {
	t.Setenv(config.EnvCacheDir, "")
	dir := t.TempDir()
	writeConfig(t, dir, `
version: "1"
cacheDir: build/cache
backend: sqlite
concurrency: 3
ignore: ["*.tmp", "node_modules/"]
lockTimeout: 250ms
log:
  format: json
`)

	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, &domain.Config{
		Root:        dir,
		CacheDir:    filepath.Join(dir, "build", "cache"),
		Backend:     domain.BackendSQLite,
		Concurrency: 3,
		Ignore:      []string{"*.tmp", "node_modules/"},
		LockTimeout: 250 * time.Millisecond,
		LogFormat:   domain.LogFormatJSON,
	}, cfg)
}

func TestLoad_DiscoversParentConfig(t *testing.T) {
	t.Setenv(config.EnvCacheDir, "")
	root := t.TempDir()
	writeConfig(t, root, "cacheDir: /var/cache/filehash\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	cfg, err := newLoader(t).Load(nested)
	require.NoError(t, err)

	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, "/var/cache/filehash", cfg.CacheDir)
}

func TestLoad_NearestConfigWins(t *testing.T) {
	t.Setenv(config.EnvCacheDir, "")
	root := t.TempDir()
	writeConfig(t, root, "backend: sqlite\n")
	nested := filepath.Join(root, "pkg")
	require.NoError(t, os.MkdirAll(nested, 0o750))
	writeConfig(t, nested, "backend: file\n")

	cfg, err := newLoader(t).Load(nested)
	require.NoError(t, err)

	assert.Equal(t, nested, cfg.Root)
	assert.Equal(t, domain.BackendFile, cfg.Backend)
}

func TestLoad_EmptyFile(t *testing.T) {
	t.Setenv(config.EnvCacheDir, "")
	dir := t.TempDir()
	writeConfig(t, dir, "")

	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.BackendFile, cfg.Backend)
}

func TestLoad_EnvCacheDir(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "cacheDir: ignored\n")

	t.Setenv(config.EnvCacheDir, "from-env")
	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "from-env"), cfg.CacheDir)

	abs := filepath.Join(t.TempDir(), "abs")
	t.Setenv(config.EnvCacheDir, abs)
	cfg, err = newLoader(t).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, abs, cfg.CacheDir)
}

func TestLoadFile_ExplicitPath(t *testing.T) {
	t.Setenv(config.EnvCacheDir, "")
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("concurrency: 2\n"), 0o600))

	cfg, err := newLoader(t).LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Root)
	assert.Equal(t, 2, cfg.Concurrency)
}

func TestLoadFile_Errors(t *testing.T) {
	t.Setenv(config.EnvCacheDir, "")

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "bad backend", content: "backend: redis\n", want: []string{"invalid configuration"}},
		{name: "negative concurrency", content: "concurrency: -1\n", want: []string{"invalid configuration"}},
		{name: "bad duration", content: "lockTimeout: soon\n", want: []string{"invalid configuration"}},
		{name: "zero duration", content: "lockTimeout: 0s\n", want: []string{"invalid configuration"}},
		{name: "bad log format", content: "log:\n  format: xml\n", want: []string{"invalid configuration"}},
		{name: "unsupported version", content: "version: \"2\"\n", want: []string{"invalid configuration"}},
		{name: "unknown field", content: "tasks: {}\n", want: []string{"failed to parse config file"}},
		{name: "malformed yaml", content: "backend: [\n", want: []string{"failed to parse config file"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)

			_, err := newLoader(t).LoadFile(path)
			require.Error(t, err)
			for _, want := range tt.want {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := newLoader(t).LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
