// Package watch reloads configuration files when they change on disk.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/grovetools/navpanel/logging"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce is the quiet period after the last write before a change is reported.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports changes to a fixed set of files. It watches their parent
// directories so editors that save by renaming a temp file are still seen.
type Watcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]bool
	debounce time.Duration
	onChange func(path string)
	logger   *logrus.Entry

	closeOnce sync.Once
}

// New creates a watcher for files. onChange runs on the watcher goroutine
// once per burst of writes, with the path of the last file written.
func New(files []string, debounce time.Duration, onChange func(path string)) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	logger := logging.NewLogger("watch")
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		watcher:  watcher,
		files:    make(map[string]bool),
		debounce: debounce,
		onChange: onChange,
		logger:   logger,
	}

	watchedDirs := make(map[string]bool)
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			watcher.Close()
			return nil, err
		}
		w.files[abs] = true

		dir := filepath.Dir(abs)
		if watchedDirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, err
		}
		watchedDirs[dir] = true
		logger.WithField("dir", dir).Debug("Watching directory")
	}

	return w, nil
}

// Run delivers change notifications until ctx is cancelled or the watcher
// is closed.
func (w *Watcher) Run(ctx context.Context) {
	defer w.Close()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := ""

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			name := filepath.Clean(event.Name)
			if !w.files[name] {
				continue
			}
			w.logger.Debugf("fsnotify event: %s op=%v", name, event.Op)
			pending = name
			timer.Reset(w.debounce)

		case <-timer.C:
			if pending == "" {
				continue
			}
			w.logger.WithField("path", pending).Info("Configuration changed")
			if w.onChange != nil {
				w.onChange(pending)
			}
			pending = ""

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Errorf("Watcher error: %v", err)

		case <-ctx.Done():
			return
		}
	}
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.watcher.Close()
	})
	return err
}
