package format

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// JavaSuffix identifies the files watch mode reformats inside watched
// directories. Explicitly listed files are reformatted regardless of suffix.
const JavaSuffix = ".java"

// Watcher monitors files and directories and triggers a reformat of
// whatever changed.
type Watcher struct {
	logger *slog.Logger
	Ready  chan struct{}

	newWatcher func() (*fsnotify.Watcher, error)
}

// NewWatcher creates a Watcher.
func NewWatcher(logger *slog.Logger) *Watcher {
	return &Watcher{
		logger:     logger.With("component", "watcher"),
		Ready:      make(chan struct{}),
		newWatcher: fsnotify.NewWatcher,
	}
}

// Watch monitors paths (files or directories, directories recursively) and
// calls the provided callback with the batch of changed files. It blocks
// until the context is cancelled.
func (w *Watcher) Watch(ctx context.Context, paths []string, callback func(files []string)) error {
	watcher, err := w.newWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Explicitly named files are always relevant; their parent directory
	// carries the watch.
	tracked := make(map[string]bool)
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return err
		}
		if info.IsDir() {
			if err := w.addRecursive(watcher, p); err != nil {
				return err
			}
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		tracked[abs] = true
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return err
		}
	}

	w.logger.Info("Watching for changes", "paths", paths)
	if w.Ready != nil {
		close(w.Ready)
	}

	const debounceDuration = 100 * time.Millisecond
	var mu sync.Mutex
	var timer *time.Timer
	pending := make(map[string]struct{})

	flush := func() {
		mu.Lock()
		files := make([]string, 0, len(pending))
		for f := range pending {
			files = append(files, f)
		}
		pending = make(map[string]struct{})
		mu.Unlock()
		if len(files) > 0 {
			callback(files)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-watcher.Errors:
			w.logger.Error("Watcher error", "error", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if path := w.handleEvent(watcher, event, tracked); path != "" {
				mu.Lock()
				pending[path] = struct{}{}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounceDuration, flush)
				mu.Unlock()
			}
		}
	}
}

// handleEvent processes a single fsnotify event. New directories join the
// watch; relevant file changes return the file path.
func (w *Watcher) handleEvent(watcher *fsnotify.Watcher, event fsnotify.Event, tracked map[string]bool) string {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return ""
	}

	if event.Has(fsnotify.Create) {
		info, err := os.Stat(event.Name)
		if err == nil && info.IsDir() {
			if err := w.addRecursive(watcher, event.Name); err != nil {
				w.logger.Error("Failed to watch new directory", "path", event.Name, "error", err)
			}
			return ""
		}
	}

	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return ""
	}
	if tracked[abs] || strings.HasSuffix(abs, JavaSuffix) {
		return abs
	}
	return ""
}

// addRecursive adds the given path and all its subdirectories to the watcher.
func (w *Watcher) addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if strings.HasPrefix(filepath.Base(path), ".") && path != root {
				return filepath.SkipDir
			}
			return watcher.Add(path)
		}
		return nil
	})
}
