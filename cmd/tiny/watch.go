package main

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 50 * time.Millisecond

// watchFile runs onChange once immediately, then again every time path is
// modified, debounced so a burst of writes from an editor's save collapses
// into a single reparse.
//
// It watches path's containing directory rather than path itself. Editors
// commonly save by writing a temp file and renaming it into place, which
// replaces the watched inode — a watch on the file directly goes silent
// after the first such save. Watching the directory and filtering events
// down to path's basename survives that rename.
func watchFile(path string, logger *slog.Logger, onChange func() error) error {
	if err := onChange(); err != nil {
		logger.Error("parse failed", "error", err)
	}

	dir := filepath.Dir(path)
	name := filepath.Base(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return err
	}

	var timer *time.Timer
	fire := func() {
		if err := onChange(); err != nil {
			logger.Error("parse failed", "error", err)
		}
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, fire)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", "error", err)
		}
	}
}
