package resource

import (
	"github.com/fsnotify/fsnotify"

	"github.com/nicolasmd87/voxelmesh/internal/log"
	"go.uber.org/zap"
)

// Watcher observes a resource-pack directory on disk and invokes onChange
// whenever a file under it is created, written, removed, or renamed. It only
// signals that *something* changed: it rebuilds and invalidates nothing
// itself, and the build session (internal/buildsession) does not start one.
// Resource-pack archive I/O itself stays out of scope.
type Watcher struct {
	fsw *fsnotify.Watcher
	done chan struct{}
}

// WatchDirectory starts watching root (recursively is the caller's
// responsibility — add subdirectories with AddDir) and calls onChange for
// every write/create/remove/rename event, coalescing nothing: callers debounce if
// they care to.
func WatchDirectory(root string, onChange func(path string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(root); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{fsw: fsw, done: make(chan struct{})}
	go w.loop(onChange)
	return w, nil
}

// AddDir adds an additional directory to the watch set (e.g. a pack's
// "models" or "textures" subtree).
func (w *Watcher) AddDir(path string) error {
	return w.fsw.Add(path)
}

func (w *Watcher) loop(onChange func(path string)) {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				onChange(event.Name)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Log.Warn("resource pack watcher error", zap.Error(err))
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
