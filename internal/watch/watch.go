// Package watch re-runs a callback when watched files change.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is the quiet period before a change is reported.
const DefaultDebounce = 200 * time.Millisecond

// Config configures a Watcher.
type Config struct {
	// Debounce delays a change until writes have settled (default: DefaultDebounce).
	Debounce time.Duration
	// Logger for watch events (default: no-op).
	Logger *zap.Logger
	// OnChange is called with the path as given to New. Calls never overlap.
	OnChange func(path string)
}

// Watcher reports changes to a fixed set of files.
//
// The parent directories are watched instead of the files, so editors that
// save by renaming a temporary file over the original are still seen.
type Watcher struct {
	config  Config
	logger  *zap.Logger
	targets map[string]string // absolute path -> path as given

	timers   map[string]*time.Timer
	queued   map[string]bool // paths sent on fired and not yet handled
	timersMu sync.Mutex
	fired    chan string
}

// New creates a watcher for paths.
func New(paths []string, config Config) (*Watcher, error) {
	if config.OnChange == nil {
		return nil, fmt.Errorf("watch: OnChange is required")
	}
	if config.Debounce <= 0 {
		config.Debounce = DefaultDebounce
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}

	targets := make(map[string]string, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", p, err)
		}
		targets[abs] = p
	}

	return &Watcher{
		config:  config,
		logger:  config.Logger,
		targets: targets,
		timers:  make(map[string]*time.Timer),
		queued:  make(map[string]bool),
		fired:   make(chan string, len(targets)),
	}, nil
}

// Run watches until ctx is done. It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fw.Close()

	dirs := make(map[string]bool)
	for abs := range w.targets {
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	w.logger.Info("Watching for changes",
		zap.Int("files", len(w.targets)),
		zap.Int("directories", len(dirs)),
		zap.Duration("debounce", w.config.Debounce))

	defer w.stopTimers()

	for {
		select {
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("File watcher error", zap.Error(err))

		case path := <-w.fired:
			w.timersMu.Lock()
			delete(w.queued, path)
			w.timersMu.Unlock()
			w.config.OnChange(path)

		case <-ctx.Done():
			w.logger.Info("Stopping watcher")
			return nil
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	path, ok := w.targets[filepath.Clean(event.Name)]
	if !ok {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	w.logger.Debug("File changed",
		zap.String("file", path),
		zap.String("operation", event.Op.String()))

	w.debounce(path)
}

// debounce reports path once changes to it have settled.
func (w *Watcher) debounce(path string) {
	w.timersMu.Lock()
	defer w.timersMu.Unlock()

	if timer, exists := w.timers[path]; exists {
		timer.Stop()
	}

	w.timers[path] = time.AfterFunc(w.config.Debounce, func() {
		w.timersMu.Lock()
		defer w.timersMu.Unlock()

		delete(w.timers, path)
		if w.queued[path] {
			return
		}
		// fired holds at most one report per path.
		w.queued[path] = true
		w.fired <- path
	})
}

func (w *Watcher) stopTimers() {
	w.timersMu.Lock()
	defer w.timersMu.Unlock()

	for path, timer := range w.timers {
		timer.Stop()
		delete(w.timers, path)
	}
}
