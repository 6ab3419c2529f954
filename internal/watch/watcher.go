// Package watch re-reads an input file whenever it changes on disk.
package watch

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType represents the kind of file event.
type EventType int

const (
	// Initial carries the file contents at Start, if the file exists.
	Initial EventType = iota
	// Changed indicates the file was created or written.
	Changed
	// Removed indicates the file was deleted or renamed away.
	Removed
)

// String returns the string representation of the event type.
func (e EventType) String() string {
	switch e {
	case Initial:
		return "initial"
	case Changed:
		return "changed"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// Event represents a change to the watched file.
type Event struct {
	Type    EventType
	Path    string
	Content string // empty for Removed events
}

// FileWatcher monitors a single file for changes.
//
// The parent directory is watched rather than the file itself so that editors
// which save by renaming a temp file over the original are still observed.
type FileWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	events  chan Event
	logger  *slog.Logger

	debounceDelay time.Duration
	debounceTimer *time.Timer
	timerMu       sync.Mutex

	stopCh    chan struct{}
	stoppedCh chan struct{}
	running   bool
	runningMu sync.Mutex
}

// Option configures a FileWatcher.
type Option func(*FileWatcher)

// WithDebounce sets how long to wait after the last change before emitting.
func WithDebounce(d time.Duration) Option {
	return func(w *FileWatcher) {
		w.debounceDelay = d
	}
}

// WithLogger sets the logger for the watcher.
func WithLogger(logger *slog.Logger) Option {
	return func(w *FileWatcher) {
		w.logger = logger
	}
}

// NewFileWatcher creates a new watcher for the file at path.
func NewFileWatcher(path string, opts ...Option) *FileWatcher {
	w := &FileWatcher{
		path:          filepath.Clean(path),
		events:        make(chan Event, 16),
		logger:        slog.Default(),
		debounceDelay: 100 * time.Millisecond,
		stopCh:        make(chan struct{}),
		stoppedCh:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start begins watching. The parent directory must exist; the file need not.
func (w *FileWatcher) Start() error {
	w.runningMu.Lock()
	defer w.runningMu.Unlock()

	if w.running {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		watcher.Close()
		return err
	}
	w.watcher = watcher

	if content, err := os.ReadFile(w.path); err == nil {
		w.emit(Event{Type: Initial, Path: w.path, Content: string(content)})
	} else if !errors.Is(err, fs.ErrNotExist) {
		w.logger.Warn("initial read failed", "path", w.path, "error", err)
	}

	w.running = true
	go w.watchLoop()

	w.logger.Debug("watch started", "path", w.path, "debounce", w.debounceDelay)
	return nil
}

// Stop terminates the watcher and closes the events channel.
func (w *FileWatcher) Stop() {
	w.runningMu.Lock()
	if !w.running {
		w.runningMu.Unlock()
		return
	}
	w.running = false
	w.runningMu.Unlock()

	close(w.stopCh)
	<-w.stoppedCh

	w.watcher.Close()

	w.timerMu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	// Hold the lock while closing so an in-flight timer callback cannot send.
	close(w.events)
	w.timerMu.Unlock()
}

// Events returns the channel for receiving file events.
func (w *FileWatcher) Events() <-chan Event {
	return w.events
}

// Path returns the watched file path.
func (w *FileWatcher) Path() string {
	return w.path
}

func (w *FileWatcher) watchLoop() {
	defer close(w.stoppedCh)

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFsEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "path", w.path, "error", err)
		}
	}
}

func (w *FileWatcher) handleFsEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	w.timerMu.Lock()
	defer w.timerMu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debounceDelay, w.processChange)
}

// processChange reads the file after the debounce window closes. The on-disk
// state decides the event type, since a rename-over save arrives as Remove
// followed by Create.
func (w *FileWatcher) processChange() {
	ev := Event{Path: w.path}
	content, err := os.ReadFile(w.path)
	switch {
	case err == nil:
		ev.Type = Changed
		ev.Content = string(content)
	case errors.Is(err, fs.ErrNotExist):
		ev.Type = Removed
	default:
		w.logger.Warn("read failed", "path", w.path, "error", err)
		return
	}

	w.timerMu.Lock()
	defer w.timerMu.Unlock()

	select {
	case <-w.stopCh:
		return
	default:
	}
	w.emit(ev)
}

func (w *FileWatcher) emit(ev Event) {
	select {
	case w.events <- ev:
	default:
		w.logger.Debug("event dropped, channel full", "path", w.path, "type", ev.Type.String())
	}
}
