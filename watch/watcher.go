// Package watch emits debounced change events for a manifest and a set of
// data files so callers can revalidate on save.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Config configures the file watcher.
type Config struct {
	// Paths are the files to watch. Watches are placed on the containing
	// directories so editors that replace files on save are still seen.
	Paths []string

	// DebounceDelay is how long to wait for more changes before emitting
	DebounceDelay time.Duration

	// Logger for logging events
	Logger *slog.Logger
}

// Operation indicates the type of file operation.
type Operation string

const (
	OpCreate Operation = "create"
	OpModify Operation = "modify"
	OpDelete Operation = "delete"
)

// Event represents a change to a watched file.
type Event struct {
	// Path is the watched file that changed.
	Path string

	Operation Operation
}

// Watcher watches files and emits debounced change events.
type Watcher struct {
	config  Config
	watcher *fsnotify.Watcher
	logger  *slog.Logger

	// Debouncing: collect changes before emitting
	pendingMu sync.Mutex
	pending   map[string]fsnotify.Op // path → accumulated operations

	watched map[string]bool // absolute path → watched

	events chan Event
}

// NewWatcher creates a watcher for the configured paths.
func NewWatcher(config Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if config.DebounceDelay == 0 {
		config.DebounceDelay = 100 * time.Millisecond
	}

	watched := make(map[string]bool, len(config.Paths))
	for _, path := range config.Paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, err
		}
		watched[abs] = true
	}

	return &Watcher{
		config:  config,
		watcher: fsw,
		logger:  logger,
		pending: make(map[string]fsnotify.Op),
		watched: watched,
		events:  make(chan Event, 100),
	}, nil
}

// Events returns the channel of watch events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Start places the watches and begins the event loop. It returns once the
// watches are in place; events arrive on Events() until ctx is canceled or
// Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	dirs := make(map[string]bool)
	for path := range w.watched {
		dirs[filepath.Dir(path)] = true
	}
	for dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
		w.logger.Debug("Watching directory", "path", dir)
	}

	go w.processEvents(ctx)

	w.logger.Info("File watcher started",
		"files", len(w.watched),
		"debounce", w.config.DebounceDelay)

	return nil
}

// Stop stops the watcher. The event loop closes Events() on its way out.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

// processEvents handles fsnotify events with debouncing. It owns the event
// channel and closes it on exit.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	ticker := time.NewTicker(w.config.DebounceDelay)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "error", err)

		case <-ticker.C:
			w.flushPending(ctx)
		}
	}
}

// handleFSEvent accumulates a single fsnotify event for a watched file.
func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	abs, err := filepath.Abs(event.Name)
	if err != nil || !w.watched[abs] {
		return
	}

	w.pendingMu.Lock()
	w.pending[abs] |= event.Op
	w.pendingMu.Unlock()

	w.logger.Debug("File change detected",
		"path", event.Name,
		"op", event.Op.String())
}

// flushPending emits one event per changed file, coalescing the operations
// seen during the debounce window.
func (w *Watcher) flushPending(ctx context.Context) {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}
	toEmit := w.pending
	w.pending = make(map[string]fsnotify.Op)
	w.pendingMu.Unlock()

	for path, op := range toEmit {
		event := Event{Path: path, Operation: OpModify}
		switch {
		case op.Has(fsnotify.Remove) || op.Has(fsnotify.Rename):
			// An editor save-by-rename shows up as remove+create; treat
			// anything that ends with a create or write as a modify.
			if !op.Has(fsnotify.Create) && !op.Has(fsnotify.Write) {
				event.Operation = OpDelete
			}
		case op.Has(fsnotify.Create):
			event.Operation = OpCreate
		}

		select {
		case <-ctx.Done():
			return
		case w.events <- event:
		default:
			w.logger.Warn("Event channel full, dropping event", "path", path)
		}
	}
}
