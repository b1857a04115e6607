package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the config file whenever it is written or created and
// passes the result to fn. Parse errors are passed to fn as well, with the
// defaults. Watch blocks until ctx is cancelled.
//
// The parent directory is watched rather than the file so that editors that
// replace the file on save are still followed.
func Watch(ctx context.Context, path string, fn func(Config, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating config watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	target := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				fn(Load(path))
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fn(Default(), fmt.Errorf("config watcher: %w", err))
		}
	}
}
