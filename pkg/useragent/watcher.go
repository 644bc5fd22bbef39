package useragent

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchRules reloads the shared rule table whenever the configured rules
// file changes on disk, until ctx is cancelled. The containing directory is
// watched rather than the file itself so atomic save strategies
// (write-temp-then-rename) are picked up. A reload that fails keeps the
// previous table and logs the failure; it never tears down the watcher.
func WatchRules(ctx context.Context, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}
	if err := Init(); err != nil {
		return err
	}

	path, err := filepath.Abs(rulesPath())
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				log.Debug("rules watcher stopped")
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				if err := Reload(); err != nil {
					log.Warn("rules reload failed, keeping previous table",
						slog.String("path", path), slog.Any("error", err))
					continue
				}
				log.Info("rules reloaded", slog.String("path", path))

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Error("rules watcher error", slog.Any("error", err))
			}
		}
	}()

	return nil
}
