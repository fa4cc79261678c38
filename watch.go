package routegen

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rohanthewiz/serr"
)

// watchDebounce coalesces the bursts of events editors emit per save.
const watchDebounce = 100 * time.Millisecond

// Watch runs regen whenever source changes, until ctx is cancelled.
// The source's directory is watched rather than the file itself, since
// editors typically replace the file on save. Regeneration failures are
// logged and watching continues; only watcher failures end the loop.
func Watch(ctx context.Context, source string, regen func() error) error {
	source, err := filepath.Abs(source)
	if err != nil {
		return serr.Wrap(err, "resolving route source path")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return serr.Wrap(err, "creating watcher")
	}
	defer func() { _ = w.Close() }()

	if err = w.Add(filepath.Dir(source)); err != nil {
		return serr.Wrap(err, "watching route source directory")
	}
	slog.Info("watching route source", "source", source)

	var debounce *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != source {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case <-pending:
			if err := regen(); err != nil {
				slog.Error("regeneration failed", "source", source, "err", err)
				continue
			}
			slog.Info("regenerated", "source", source)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "err", err)
		}
	}
}
