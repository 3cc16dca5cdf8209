package engine

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/ink"
)

// WatchImages drops cached textures whose image files in dir change,
// until ctx is done. Image names are paths relative to dir, as used by
// DirImages; only files directly in dir are watched.
//
// WatchImages blocks; run it in its own goroutine. It returns nil when
// ctx is cancelled.
func (e *Engine) WatchImages(ctx context.Context, dir string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("engine: watch images: %w", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return fmt.Errorf("engine: watch images %s: %w", dir, err)
	}
	ink.Logger().Debug("engine: watching images", "dir", dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
				!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			name, err := filepath.Rel(dir, ev.Name)
			if err != nil {
				continue
			}
			e.InvalidateImage(filepath.ToSlash(name))
			ink.Logger().Debug("engine: image changed", "image", name, "op", ev.Op.String())
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			ink.Logger().Warn("engine: image watcher", "err", err)
		}
	}
}
