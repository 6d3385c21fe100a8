// Package watch reloads the viewed document when its file changes on disk.
package watch

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/jsontree/errors"
	"github.com/grovetools/jsontree/logging"
)

// Watcher watches a single document file and invokes a callback after
// changes settle. Editors typically replace files via rename, so the parent
// directory is watched and events are filtered by base name.
type Watcher struct {
	watcher    *fsnotify.Watcher
	path       string
	debounce   time.Duration
	timer      *time.Timer
	mu         sync.Mutex
	logger     *logrus.Entry
	onChange   func()
	done       chan struct{}
	closeOnce  sync.Once
}

// New creates a Watcher for path. The debounce window collapses rapid
// successive events (a single editor save can produce several) into one
// onChange call. onChange runs on the watcher's goroutine; callers bridge to
// their own loop, e.g. with tea.Program.Send.
func New(path string, debounce time.Duration, onChange func()) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.WatchFailed(path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fsWatcher.Close()
		return nil, errors.WatchFailed(path, err)
	}

	if err := fsWatcher.Add(filepath.Dir(abs)); err != nil {
		fsWatcher.Close()
		return nil, errors.WatchFailed(path, err)
	}

	return &Watcher{
		watcher:  fsWatcher,
		path:     abs,
		debounce: debounce,
		logger:   logging.NewLogger("watcher"),
		onChange: onChange,
		done:     make(chan struct{}),
	}, nil
}

// Start begins processing file events until Stop is called.
func (w *Watcher) Start() {
	go w.loop()
	w.logger.WithField("path", w.path).Debug("Watching document for changes")
}

// Stop ends event processing and releases the underlying watcher.
func (w *Watcher) Stop() {
	w.closeOnce.Do(func() {
		close(w.done)
		w.watcher.Close()
		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
	})
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.WithFields(logrus.Fields{
				"path": w.path,
				"op":   event.Op.String(),
			}).Debug("Document changed")
			w.scheduleReload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.WithField("error", err).Warn("File watcher error")
		}
	}
}

// scheduleReload (re)arms the debounce timer; only the last event within the
// window triggers the callback.
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case <-w.done:
		default:
			w.onChange()
		}
	})
}
