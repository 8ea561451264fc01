package platform

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// FileWatcher reports when a single file is removed or renamed away.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
	once    sync.Once
}

// WatchFile starts watching path. onGone is called at most once, from the
// watcher goroutine, when the file is removed or renamed.
func WatchFile(path string, logger zerolog.Logger, onGone func()) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fsnotify.NewWatcher: %w", err)
	}

	// Watch the parent directory; editors and tools replace files via rename
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch directory %s: %w", dir, err)
	}

	fw := &FileWatcher{watcher: watcher, done: make(chan struct{})}
	target := filepath.Clean(path)

	go func() {
		defer close(fw.done)
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					logger.Warn().Str("path", target).Str("op", event.Op.String()).Msg("watched media file went away")
					if onGone != nil {
						onGone()
					}
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn().Err(err).Msg("fsnotify watcher error")
			}
		}
	}()

	return fw, nil
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *FileWatcher) Close() error {
	var err error
	w.once.Do(func() {
		err = w.watcher.Close()
		<-w.done
	})
	return err
}
