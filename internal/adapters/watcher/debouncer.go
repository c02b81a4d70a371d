// Package watcher implements file system watching for continuous snapshots.
package watcher

import (
	"slices"
	"sync"
	"time"
	"unique"
)

// DefaultDebounceWindow is the default time window for debouncing file events.
const DefaultDebounceWindow = 50 * time.Millisecond

// Debouncer coalesces rapid file system events into sorted batches of paths.
// Add must not be called concurrently with Flush.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[unique.Handle[string]]struct{}
	timer    *time.Timer
	gen      uint64
	window   time.Duration
	callback func(paths []string)

	// inflight counts armed timers and running callbacks.
	inflight sync.WaitGroup
}

// NewDebouncer creates a new debouncer with the given time window and callback.
func NewDebouncer(window time.Duration, callback func(paths []string)) *Debouncer {
	return &Debouncer{
		pending:  make(map[unique.Handle[string]]struct{}),
		window:   window,
		callback: callback,
	}
}

// Add adds a file path to the pending set and restarts the window.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[unique.Make(path)] = struct{}{}

	d.stopTimer()
	d.gen++
	gen := d.gen
	d.inflight.Add(1)
	d.timer = time.AfterFunc(d.window, func() { d.fire(gen) })
}

// stopTimer disarms the current timer. A timer that already fired releases
// its inflight slot from fire. The caller must hold d.mu.
func (d *Debouncer) stopTimer() {
	if d.timer == nil {
		return
	}
	if d.timer.Stop() {
		d.inflight.Done()
	}
	d.timer = nil
}

// fire is called when the debounce window of timer gen expires.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if d.gen == gen {
		d.timer = nil
	}
	paths := d.drain()
	d.mu.Unlock()

	if len(paths) == 0 || d.callback == nil {
		d.inflight.Done()
		return
	}
	go func() {
		defer d.inflight.Done()
		d.callback(paths)
	}()
}

// Flush immediately runs the callback with all pending paths and blocks until
// it and every batch started by an expired window have returned.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	d.stopTimer()
	paths := d.drain()
	d.mu.Unlock()

	if len(paths) > 0 && d.callback != nil {
		d.callback(paths)
	}
	d.inflight.Wait()
}

// drain empties the pending set. The caller must hold d.mu.
func (d *Debouncer) drain() []string {
	if len(d.pending) == 0 {
		return nil
	}
	paths := make([]string, 0, len(d.pending))
	for handle := range d.pending {
		paths = append(paths, handle.Value())
	}
	d.pending = make(map[unique.Handle[string]]struct{})
	slices.Sort(paths)
	return paths
}
