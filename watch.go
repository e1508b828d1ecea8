package portfolio

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// WatchCatalog invalidates c whenever a file in its content directory is
// written, created, renamed or removed. It returns once the watcher is
// running; the watcher stops when ctx is done.
func WatchCatalog(ctx context.Context, c *Catalog, log *zap.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	// Editors often replace files instead of writing them in place, so
	// watch the directory rather than the individual files.
	if err := w.Add(c.Dir()); err != nil {
		w.Close()
		return fmt.Errorf("watch %s: %w", c.Dir(), err)
	}

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !relevantContent(ev) {
					continue
				}
				c.Invalidate()
				log.Info("content changed, catalog reloaded on next request",
					zap.String("file", filepath.Base(ev.Name)),
					zap.String("op", ev.Op.String()))
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("content watcher error", zap.Error(err))
			}
		}
	}()
	return nil
}

func relevantContent(ev fsnotify.Event) bool {
	switch filepath.Base(ev.Name) {
	case projectsFile, aboutFile:
	default:
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) ||
		ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Remove)
}
