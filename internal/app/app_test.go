package app_test

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/filehash/internal/adapters/fs"
	"go.trai.ch/filehash/internal/adapters/interner"
	"go.trai.ch/filehash/internal/adapters/telemetry"
	"go.trai.ch/filehash/internal/adapters/tree"
	"go.trai.ch/filehash/internal/app"
	"go.trai.ch/filehash/internal/core/domain"
	"go.trai.ch/filehash/internal/core/ports"
	"go.trai.ch/filehash/internal/core/ports/mocks"
	"go.trai.ch/filehash/internal/engine/snapshot"
	"go.uber.org/mock/gomock"
)

// memoryStore is an in-memory ports.FingerprintStore.
type memoryStore struct {
	mu      sync.Mutex
	entries map[string]*domain.Fingerprint
}

func newMemoryStore() *memoryStore {
	return &memoryStore{entries: make(map[string]*domain.Fingerprint)}
}

func (m *memoryStore) Get(key string) (*domain.Fingerprint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries[key], nil
}

func (m *memoryStore) Put(key domain.InternedString, fp *domain.Fingerprint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key.String()] = fp
	return nil
}

type fixture struct {
	dir     string
	cfg     *domain.Config
	loader  *mocks.MockConfigLoader
	logger  *mocks.MockLogger
	hasher  *mocks.MockHasher
	opener  *mocks.MockStoreOpener
	store   *mocks.MockPersistentStore
	watcher *mocks.MockWatcher
	fps     *memoryStore
	out     *bytes.Buffer
	app     *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)

	ctrl := gomock.NewController(t)
	f := &fixture{
		dir: dir,
		cfg: &domain.Config{
			Root:        dir,
			CacheDir:    filepath.Join(dir, ".filehash", "cache"),
			Backend:     domain.BackendFile,
			Concurrency: 2,
			LockTimeout: time.Second,
			LogFormat:   domain.LogFormatPretty,
		},
		loader:  mocks.NewMockConfigLoader(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
		hasher:  mocks.NewMockHasher(ctrl),
		opener:  mocks.NewMockStoreOpener(ctrl),
		store:   mocks.NewMockPersistentStore(ctrl),
		watcher: mocks.NewMockWatcher(ctrl),
		fps:     newMemoryStore(),
		out:     &bytes.Buffer{},
	}

	tracer := telemetry.NewOTelTracer("test")
	hasher := telemetry.NewTracingHasher(f.hasher, tracer)
	snapshots := snapshot.NewFactory(hasher, interner.NewPool())

	f.app = app.New(
		f.loader, f.logger, fs.NewResolver(), tree.NewFactory(), f.opener, snapshots, tracer, f.watcher,
	).WithOutput(f.out)

	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return f
}

// expectStore sets up one open, flush and close of the persistent store.
func (f *fixture) expectStore() {
	f.loader.EXPECT().Load(gomock.Any()).Return(f.cfg, nil)
	f.opener.EXPECT().Open(f.cfg).Return(f.store, nil)
	f.store.EXPECT().Fingerprints(domain.FileHashesCacheName).Return(f.fps, nil)
	f.store.EXPECT().Flush().Return(nil)
	f.store.EXPECT().Close().Return(nil)
}

// hashByName makes the hasher return the file's base name as its digest.
func (f *fixture) hashByName(times int) {
	f.hasher.EXPECT().Hash(gomock.Any()).DoAndReturn(func(file string) ([]byte, error) {
		return []byte(filepath.Base(file)), nil
	}).Times(times)
}

func (f *fixture) write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(f.dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func hexName(name string) string {
	return hex.EncodeToString([]byte(name))
}

func TestApp_Snapshot(t *testing.T) {
	f := newFixture(t)
	f.write(t, "a.txt", "a")
	f.write(t, "dir/c.txt", "c")
	f.write(t, "dir/b.txt", "b")

	f.expectStore()
	f.hashByName(3)
	f.logger.EXPECT().Info("3 files, 3 hashed")

	err := f.app.Snapshot(context.Background(), []string{"dir", "a.txt"}, app.SnapshotOptions{})
	require.NoError(t, err)

	assert.Equal(t,
		hexName("a.txt")+"  a.txt\n"+
			hexName("b.txt")+"  dir/b.txt\n"+
			hexName("c.txt")+"  dir/c.txt\n",
		f.out.String())
	assert.Len(t, f.fps.entries, 3)
	assert.Contains(t, f.fps.entries, filepath.Join(f.dir, "dir", "b.txt"))
}

func TestApp_Snapshot_ReusesCache(t *testing.T) {
	f := newFixture(t)
	f.write(t, "a.txt", "a")
	f.write(t, "b.txt", "b")

	f.expectStore()
	f.hashByName(2)
	f.logger.EXPECT().Info("2 files, 2 hashed")
	require.NoError(t, f.app.Snapshot(context.Background(), nil, app.SnapshotOptions{}))
	first := f.out.String()

	f.out.Reset()
	f.expectStore()
	f.logger.EXPECT().Info("2 files, 0 hashed")
	require.NoError(t, f.app.Snapshot(context.Background(), nil, app.SnapshotOptions{Jobs: 1}))
	assert.Equal(t, first, f.out.String())
}

func TestApp_Snapshot_PartialFailure(t *testing.T) {
	f := newFixture(t)
	f.write(t, "good.txt", "g")
	bad := f.write(t, "bad.txt", "b")

	f.expectStore()
	f.hasher.EXPECT().Hash(bad).Return(nil, errors.New("permission denied"))
	f.hasher.EXPECT().Hash(filepath.Join(f.dir, "good.txt")).Return([]byte{0x01}, nil)
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.Contains(t, err.Error(), "permission denied")
	})
	f.logger.EXPECT().Info("2 files, 1 hashed")

	err := f.app.Snapshot(context.Background(), []string{"*.txt"}, app.SnapshotOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "snapshot failed")

	assert.Equal(t, "01  good.txt\n", f.out.String())
	assert.Len(t, f.fps.entries, 1)
}

func TestApp_Snapshot_JSON(t *testing.T) {
	f := newFixture(t)
	path := f.write(t, "a.txt", "abc")
	mtime := time.Unix(1_700_000_000, 0)
	require.NoError(t, os.Chtimes(path, mtime, mtime))

	f.expectStore()
	f.hasher.EXPECT().Hash(path).Return([]byte{0xab, 0xcd}, nil)
	f.logger.EXPECT().Info(gomock.Any())

	require.NoError(t, f.app.Snapshot(context.Background(), []string{"a.txt"}, app.SnapshotOptions{JSON: true}))

	var result app.Result
	require.NoError(t, json.Unmarshal(f.out.Bytes(), &result))
	assert.Equal(t, app.Result{Path: "a.txt", Hash: "abcd", Size: 3, ModTime: mtime.UnixNano()}, result)
}

func TestApp_Snapshot_ExpandArchives(t *testing.T) {
	f := newFixture(t)
	archive := filepath.Join(f.dir, "bundle.zip")
	zf, err := os.Create(archive) //nolint:gosec // Test file
	require.NoError(t, err)
	zw := zip.NewWriter(zf)
	for _, name := range []string{"y.txt", "x.txt"} {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Modified: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)})
		require.NoError(t, err)
		_, err = w.Write([]byte(name))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, zf.Close())

	f.expectStore()
	f.hashByName(2)
	f.logger.EXPECT().Info("2 files, 2 hashed")

	err = f.app.Snapshot(context.Background(), []string{"bundle.zip"}, app.SnapshotOptions{ExpandArchives: true})
	require.NoError(t, err)
	assert.Equal(t,
		hexName("x.txt")+"  bundle.zip/x.txt\n"+hexName("y.txt")+"  bundle.zip/y.txt\n",
		f.out.String())

	// Without expansion the archive is one file.
	f.out.Reset()
	f.expectStore()
	f.hashByName(1)
	f.logger.EXPECT().Info("1 files, 1 hashed")
	require.NoError(t, f.app.Snapshot(context.Background(), []string{"bundle.zip"}, app.SnapshotOptions{}))
	assert.Equal(t, hexName("bundle.zip")+"  bundle.zip\n", f.out.String())
}

func TestApp_Snapshot_Errors(t *testing.T) {
	t.Run("config", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(gomock.Any()).Return(nil, errors.New("bad yaml"))

		err := f.app.Snapshot(context.Background(), nil, app.SnapshotOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load configuration")
	})

	t.Run("explicit config", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().LoadFile("custom.yaml").Return(nil, errors.New("missing"))

		err := f.app.Snapshot(context.Background(), nil, app.SnapshotOptions{ConfigPath: "custom.yaml"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing")
	})

	t.Run("missing input", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(gomock.Any()).Return(f.cfg, nil)

		err := f.app.Snapshot(context.Background(), []string{"nope.txt"}, app.SnapshotOptions{})
		require.ErrorIs(t, err, domain.ErrInputNotFound)
	})

	t.Run("store open", func(t *testing.T) {
		f := newFixture(t)
		f.write(t, "a.txt", "a")
		f.loader.EXPECT().Load(gomock.Any()).Return(f.cfg, nil)
		f.opener.EXPECT().Open(f.cfg).Return(nil, domain.ErrStoreLocked)

		err := f.app.Snapshot(context.Background(), nil, app.SnapshotOptions{})
		require.ErrorIs(t, err, domain.ErrStoreLocked)
	})

	t.Run("flush", func(t *testing.T) {
		f := newFixture(t)
		f.write(t, "a.txt", "a")
		f.loader.EXPECT().Load(gomock.Any()).Return(f.cfg, nil)
		f.opener.EXPECT().Open(f.cfg).Return(f.store, nil)
		f.store.EXPECT().Fingerprints(domain.FileHashesCacheName).Return(f.fps, nil)
		f.store.EXPECT().Flush().Return(domain.ErrStoreWriteFailed)
		f.store.EXPECT().Close().Return(nil)
		f.hashByName(1)
		f.logger.EXPECT().Info(gomock.Any())

		err := f.app.Snapshot(context.Background(), nil, app.SnapshotOptions{})
		require.ErrorIs(t, err, domain.ErrStoreWriteFailed)
	})

	t.Run("cancelled", func(t *testing.T) {
		f := newFixture(t)
		f.write(t, "a.txt", "a")
		f.expectStore()
		f.logger.EXPECT().Info(gomock.Any())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := f.app.Snapshot(ctx, nil, app.SnapshotOptions{})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestApp_Clean(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(gomock.Any()).Return(f.cfg, nil)
	f.opener.EXPECT().Clean(f.cfg).Return(nil)
	f.logger.EXPECT().Info("removed " + f.cfg.CacheDir)

	require.NoError(t, f.app.Clean(""))
}

func TestApp_Clean_Error(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(gomock.Any()).Return(f.cfg, nil)
	f.opener.EXPECT().Clean(f.cfg).Return(domain.ErrStoreCleanFailed)

	require.ErrorIs(t, f.app.Clean(""), domain.ErrStoreCleanFailed)
}

func TestApp_Watch(t *testing.T) {
	f := newFixture(t)
	changed := f.write(t, "src/main.go", "v1")
	f.write(t, "src/util.go", "u")
	ignored := f.write(t, "debug.tmp", "t")
	f.cfg.Ignore = []string{"*.tmp"}

	f.loader.EXPECT().Load(gomock.Any()).Return(f.cfg, nil)
	f.opener.EXPECT().Open(f.cfg).Return(f.store, nil)
	f.store.EXPECT().Fingerprints(domain.FileHashesCacheName).Return(f.fps, nil)
	f.store.EXPECT().Flush().Return(nil).Times(2)
	f.store.EXPECT().Close().Return(nil)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	f.hasher.EXPECT().Hash(gomock.Any()).DoAndReturn(func(file string) ([]byte, error) {
		content, err := os.ReadFile(file) //nolint:gosec // Test file
		return content, err
	}).Times(3)

	f.watcher.EXPECT().Start(gomock.Any(), f.dir).Return(nil)
	f.watcher.EXPECT().Stop().Return(nil)
	f.watcher.EXPECT().Events().Return(iter.Seq[ports.WatchEvent](func(yield func(ports.WatchEvent) bool) {
		require.NoError(t, os.WriteFile(changed, []byte("v2-longer"), 0o600))
		for _, ev := range []ports.WatchEvent{
			{Path: changed, Operation: ports.OpWrite},
			{Path: ignored, Operation: ports.OpWrite},
			{Path: filepath.Join(f.dir, "gone.txt"), Operation: ports.OpCreate},
			{Path: changed, Operation: ports.OpRemove},
		} {
			if !yield(ev) {
				return
			}
		}
	}))

	err := f.app.Watch(context.Background(), "", app.WatchOptions{Debounce: time.Hour})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(f.out.String()), "\n")
	assert.Equal(t, []string{
		hex.EncodeToString([]byte("v1")) + "  src/main.go",
		hex.EncodeToString([]byte("u")) + "  src/util.go",
		hex.EncodeToString([]byte("v2-longer")) + "  src/main.go",
	}, lines)
}
