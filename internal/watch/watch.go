// Package watch re-runs a build step whenever a source file changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events a single save produces.
const DefaultDebounce = 100 * time.Millisecond

// BuildFunc regenerates output from the watched source.
type BuildFunc func() error

// Watcher runs a BuildFunc once and then after every change to a file.
// It watches the parent directory so editors that save by renaming a
// temporary file over the original are still noticed.
type Watcher struct {
	path     string
	build    BuildFunc
	watcher  *fsnotify.Watcher
	debounce time.Duration

	// OnResult is called after every build with its error, which may be nil.
	// A failed build does not stop the watcher.
	OnResult func(err error)
}

// New creates a watcher for path. Close must be called when done.
func New(path string, build BuildFunc) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		build:    build,
		watcher:  watcher,
		debounce: DefaultDebounce,
	}, nil
}

// SetDebounce overrides the quiet period before a rebuild.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// Run builds once, then rebuilds after each change until ctx is done.
// It returns nil on cancellation and an error only if watching itself fails.
func (w *Watcher) Run(ctx context.Context) error {
	w.runBuild()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.runBuild()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching %s: %w", w.path, err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func (w *Watcher) runBuild() {
	err := w.build()
	if w.OnResult != nil {
		w.OnResult(err)
	}
}
