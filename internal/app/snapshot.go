package app

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/filehash/internal/core/domain"
	"go.trai.ch/filehash/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// SnapshotOptions configures a snapshot run.
type SnapshotOptions struct {
	// ConfigPath is an explicit configuration file; empty means discovery.
	ConfigPath string
	// ExpandArchives snapshots the members of .zip files instead of the archive itself.
	ExpandArchives bool
	// Jobs overrides the configured concurrency when positive.
	Jobs int
	// JSON prints one JSON object per file instead of text lines.
	JSON bool
}

// Result is the fingerprint of one snapshotted file.
type Result struct {
	Path    string `json:"path"`
	Hash    string `json:"hash"`
	Size    int64  `json:"size"`
	ModTime int64  `json:"modTime"`
}

// job is one file to snapshot: either a plain file or a tree element.
type job struct {
	display string
	file    string
	element ports.TreeElement
}

// Snapshot fingerprints every file named by paths, expanding directories
// (and archives when requested), and prints the results sorted by path.
// Failures of individual files are logged and reported as ErrSnapshotFailed
// after the successful fingerprints were printed and persisted.
func (a *App) Snapshot(ctx context.Context, paths []string, opts SnapshotOptions) error {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to get working directory")
	}
	if len(paths) == 0 {
		paths = []string{"."}
	}

	resolved, err := a.resolver.ResolveInputs(paths, cwd)
	if err != nil {
		return err
	}

	jobs, err := a.collectJobs(cfg, cwd, resolved, opts.ExpandArchives)
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

	results, failed, runErr := a.run(ctx, fps, jobs, concurrency)

	if err := a.print(results, opts.JSON); err != nil {
		return err
	}

	// Successful fingerprints persist even when other files failed.
	if err := store.Flush(); err != nil {
		return err
	}

	if runErr != nil {
		return runErr
	}
	if failed > 0 {
		return zerr.With(zerr.With(domain.ErrSnapshotFailed, "failed", failed), "total", len(jobs))
	}
	return nil
}

// collectJobs expands resolved paths into the files to snapshot.
func (a *App) collectJobs(cfg *domain.Config, cwd string, resolved []string, expandArchives bool) ([]job, error) {
	var jobs []job

	for _, path := range resolved {
		info, err := os.Stat(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path)
		}

		var tree ports.FileTree
		switch {
		case info.IsDir():
			tree, err = a.trees.Dir(path, ignorePatterns(cfg, path))
		case expandArchives && strings.EqualFold(filepath.Ext(path), ".zip"):
			tree, err = a.trees.Archive(path, domain.ArchivesPath(cfg.CacheDir))
		default:
			jobs = append(jobs, job{display: displayPath(cwd, path), file: path})
			continue
		}
		if err != nil {
			return nil, err
		}

		err = tree.Visit(func(el ports.TreeElement) error {
			jobs = append(jobs, job{
				display: displayPath(cwd, filepath.Join(path, filepath.FromSlash(el.RelativePath()))),
				element: el,
			})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return jobs, nil
}

// run snapshots jobs with at most concurrency in flight. Per-file failures
// are logged and counted; only cancellation aborts the run.
func (a *App) run(ctx context.Context, fps ports.FingerprintStore, jobs []job, concurrency int) ([]Result, int, error) {
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	snap := a.snapshots.New(fps)
	before := a.tracer.Stats()

	var (
		mu      sync.Mutex
		results = make([]Result, 0, len(jobs))
		failed  int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, j := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			fp, err := a.snapshotOne(gctx, snap, j)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				a.logger.Error(zerr.With(err, "file", j.display))
				return nil
			}
			results = append(results, Result{
				Path:    j.display,
				Hash:    hex.EncodeToString(fp.Hash()),
				Size:    fp.Size(),
				ModTime: fp.ModTime(),
			})
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	after := a.tracer.Stats()
	a.logger.Info(fmt.Sprintf("%d files, %d hashed", after.Snapshots-before.Snapshots, after.Hashed-before.Hashed))

	slices.SortFunc(results, func(x, y Result) int {
		return strings.Compare(x.Path, y.Path)
	})
	return results, failed, err
}

func (a *App) snapshotOne(ctx context.Context, snap ports.Snapshotter, j job) (*domain.Fingerprint, error) {
	_, span := a.tracer.Start(ctx, domain.SpanSnapshot, ports.Attribute{Key: domain.AttrPath, Value: j.display})
	defer span.End()

	var (
		fp  *domain.Fingerprint
		err error
	)
	if j.element != nil {
		fp, err = snap.SnapshotElement(j.element)
	} else {
		fp, err = snap.SnapshotFile(j.file)
	}
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return fp, nil
}

// print writes results as "<hash>  <path>" lines or as JSON lines.
func (a *App) print(results []Result, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(a.out)
		for _, r := range results {
			if err := enc.Encode(r); err != nil {
				return zerr.Wrap(err, "failed to write output")
			}
		}
		return nil
	}

	for _, r := range results {
		if _, err := fmt.Fprintf(a.out, "%s  %s\n", r.Hash, r.Path); err != nil {
			return zerr.Wrap(err, "failed to write output")
		}
	}
	return nil
}

// displayPath returns path relative to cwd when it lies below it.
func displayPath(cwd, path string) string {
	if rel, err := filepath.Rel(cwd, path); err == nil && filepath.IsLocal(rel) {
		return filepath.ToSlash(rel)
	}
	return path
}
