package app

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	ignore "github.com/sabhiram/go-gitignore"
	"go.trai.ch/filehash/internal/adapters/watcher" //nolint:depguard // Debouncing is shared with the adapter
	"go.trai.ch/filehash/internal/core/ports"
	"go.trai.ch/zerr"
)

// WatchOptions configures a watch session.
type WatchOptions struct {
	// ConfigPath is an explicit configuration file; empty means discovery.
	ConfigPath string
	// Jobs overrides the configured concurrency when positive.
	Jobs int
	// JSON prints one JSON object per file instead of text lines.
	JSON bool
	// Debounce is the window coalescing change events; zero uses the default.
	Debounce time.Duration
}

// Watch snapshots the directory root, then keeps re-snapshotting files as
// they are created or written until ctx is cancelled.
func (a *App) Watch(ctx context.Context, root string, opts WatchOptions) error {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to get working directory")
	}
	if root == "" {
		root = "."
	}
	if !filepath.IsAbs(root) {
		root = filepath.Join(cwd, root)
	}

	jobs, err := a.collectJobs(cfg, cwd, []string{root}, false)
	if err != nil {
		return err
	}

	store, fps, err := a.openFingerprints(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			a.logger.Error(closeErr)
		}
	}()

	concurrency := cfg.Concurrency
	if opts.Jobs > 0 {
		concurrency = opts.Jobs
	}

	session := &watchSession{
		app:         a,
		store:       store,
		fps:         fps,
		cwd:         cwd,
		root:        root,
		matcher:     ignore.CompileIgnoreLines(ignorePatterns(cfg, root)...),
		concurrency: concurrency,
		json:        opts.JSON,
	}

	if err := session.snapshot(ctx, jobs); err != nil {
		return err
	}

	if err := a.watcher.Start(ctx, root); err != nil {
		return err
	}
	defer func() { _ = a.watcher.Stop() }()
	a.logger.Info("watching " + root)

	window := opts.Debounce
	if window <= 0 {
		window = watcher.DefaultDebounceWindow
	}
	debouncer := watcher.NewDebouncer(window, func(paths []string) {
		session.changed(context.WithoutCancel(ctx), paths)
	})

	for event := range a.watcher.Events() {
		switch event.Operation {
		case ports.OpCreate, ports.OpWrite:
			debouncer.Add(event.Path)
		case ports.OpRemove, ports.OpRename:
		}
	}

	debouncer.Flush()
	session.close()
	return nil
}

// watchSession re-snapshots changed files one batch at a time.
type watchSession struct {
	app         *App
	store       ports.PersistentStore
	fps         ports.FingerprintStore
	cwd         string
	root        string
	matcher     *ignore.GitIgnore
	concurrency int
	json        bool

	mu     sync.Mutex
	closed bool
}

// snapshot runs, prints and flushes one batch. Per-file failures are logged
// by the run and do not end the session.
func (s *watchSession) snapshot(ctx context.Context, jobs []job) error {
	results, _, err := s.app.run(ctx, s.fps, jobs, s.concurrency)
	if err != nil {
		return err
	}
	if err := s.app.print(results, s.json); err != nil {
		return err
	}
	return s.store.Flush()
}

// changed snapshots the batch of paths that still are regular, non-ignored files.
func (s *watchSession) changed(ctx context.Context, paths []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	var jobs []job
	for _, path := range paths {
		rel, err := filepath.Rel(s.root, path)
		if err != nil || !filepath.IsLocal(rel) || s.matcher.MatchesPath(filepath.ToSlash(rel)) {
			continue
		}
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		jobs = append(jobs, job{display: displayPath(s.cwd, path), file: path})
	}
	if len(jobs) == 0 {
		return
	}

	if err := s.snapshot(ctx, jobs); err != nil {
		s.app.logger.Error(err)
	}
}

// close stops further batches. Batches already running finish first.
func (s *watchSession) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}
