package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file whenever it is written or replaced.
type Watcher struct {
	path string
	w    *fsnotify.Watcher
}

// NewWatcher starts watching path. The parent directory is watched so that
// editors which save by renaming a temp file over path are seen too.
func NewWatcher(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch config %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch config %s: %w", path, err)
	}
	return &Watcher{path: filepath.Clean(path), w: w}, nil
}

// Run calls fn with the result of Load after every change to the file. It
// returns when ctx is done and closes the watcher.
func (w *Watcher) Run(ctx context.Context, fn func(Config, error)) {
	defer w.w.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			fn(Load(w.path))
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			fn(Config{}, fmt.Errorf("watch config %s: %w", w.path, err))
		}
	}
}
