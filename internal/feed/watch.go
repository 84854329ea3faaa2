package feed

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce coalesces the burst of events editors emit for one save.
const debounce = 100 * time.Millisecond

// Watch reloads path whenever it is written, created or renamed into place
// and calls fn with the result. fn runs on the watcher goroutine. Watch
// returns once the watcher is established; it stops when ctx is done.
func Watch(ctx context.Context, path string, logger *slog.Logger, fn func(*SecondaryOutput, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	// Watch the directory so atomic rename-over saves are seen.
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		w.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	name := filepath.Clean(path)

	go func() {
		defer w.Close()
		timer := time.NewTimer(debounce)
		timer.Stop()
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != name {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				timer.Reset(debounce)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("feed watcher error", "err", err)
			case <-timer.C:
				out, err := Load(path)
				if err != nil {
					logger.Warn("feed reload failed", "path", path, "err", err)
				} else {
					logger.Info("feed reloaded", "path", path, "news", len(out.News), "events", len(out.Events))
				}
				fn(out, err)
			}
		}
	}()
	return nil
}
