// Package watch re-runs a build callback when watched files change.
package watch

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a set of files and invokes a callback when any of them
// changes. Bursts of events are coalesced within a debounce window, since
// editors tend to emit several events per save.
type Watcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]bool // absolute paths of the watched files
	debounce time.Duration
	onChange func()

	done    chan struct{}
	mu      sync.Mutex
	running bool
}

// New creates a watcher for the given files. The callback runs on the watch
// goroutine after the debounce window closes.
func New(files []string, debounce time.Duration, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	watched := make(map[string]bool, len(files))
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fsw.Close()
			return nil, err
		}
		watched[abs] = true
	}

	return &Watcher{
		watcher:  fsw,
		files:    watched,
		debounce: debounce,
		onChange: onChange,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching. The parent directories are watched rather than the
// files themselves, which survives the replace-by-rename saves editors do.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	dirs := make(map[string]bool)
	for f := range w.files {
		dirs[filepath.Dir(f)] = true
	}
	for dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
	}

	go w.watch()
	return nil
}

// watch is the main watch loop.
func (w *Watcher) watch() {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Only care about our files
			if !w.files[event.Name] {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			slog.Debug("file changed", "file", event.Name, "op", event.Op.String())

			if timer != nil {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C

		case <-fire:
			timer = nil
			fire = nil
			w.onChange()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("file watcher error", "error", err)

		case <-w.done:
			return
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}

	w.running = false
	close(w.done)
	return w.watcher.Close()
}
