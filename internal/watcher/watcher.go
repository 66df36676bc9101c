// Package watcher re-runs a shelf-list sort whenever the input file
// changes on disk.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/josiewhittington/Regular-Expression-Call-Numbers/internal/logging"
)

// Handler reloads and reprints a shelf list after it changed.
type Handler interface {
	Reload(path string) error
}

// Watcher watches a single shelf-list file for writes. Events are
// debounced so editors that write in several steps (or write a temp
// file and rename it over the target) trigger one reload, not many.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	handler   Handler
	path      string
	debounce  time.Duration
	log       *logging.Logger
}

type Option func(*Watcher)

// WithDebounce overrides the debounce interval.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(log *logging.Logger) Option {
	return func(w *Watcher) {
		w.log = log
	}
}

// New creates a watcher for the file at path.
func New(path string, handler Handler, opts ...Option) (*Watcher, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("cannot watch %s: %w", path, err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("unable to create watcher: %w", err)
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		handler:   handler,
		path:      path,
		debounce:  250 * time.Millisecond,
		log:       logging.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}

	// Watch the containing directory, not the file: editors replace
	// files by rename, which drops a direct file watch.
	if err := fsWatcher.Add(filepath.Dir(path)); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("unable to watch %s: %w", filepath.Dir(path), err)
	}
	return w, nil
}

// Run blocks until ctx is done, reloading after each debounced burst of
// changes to the watched file. The initial load is the caller's job.
func (w *Watcher) Run(ctx context.Context) error {
	var timer *time.Timer
	var fire <-chan time.Time

	target, err := filepath.Abs(w.path)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || name != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.log.Debug("watcher", "change detected", logging.F("op", event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-fire:
			timer = nil
			fire = nil
			w.log.Info("watcher", "reloading", logging.F("path", w.path))
			if err := w.handler.Reload(w.path); err != nil {
				w.log.Error("watcher", "reload failed", err)
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.log.Error("watcher", "watch error", err)
		}
	}
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}
