package out

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"dayplanner/internal/platform/logfields"
)

// FileWatcher reports writes to one key of a FileKeyValueStore made by other processes.
// Bursts of events (temp file, rename) are coalesced into one notification per debounce window.
type FileWatcher struct {
	dir      string
	file     string
	debounce time.Duration
	logger   *slog.Logger
}

func NewFileWatcher(dir, key string, debounce time.Duration, logger *slog.Logger) *FileWatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileWatcher{dir: dir, file: key + ".json", debounce: debounce, logger: logger}
}

// Watch sends on the returned channel after each settled change until ctx is done.
func (w *FileWatcher) Watch(ctx context.Context) (<-chan struct{}, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create watch dir: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fsnotify: %w", err)
	}
	if err := watcher.Add(w.dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", w.dir, err)
	}
	changes := make(chan struct{}, 1)
	go w.loop(ctx, watcher, changes)
	return changes, nil
}

func (w *FileWatcher) loop(ctx context.Context, watcher *fsnotify.Watcher, changes chan<- struct{}) {
	defer close(changes)
	defer func() { _ = watcher.Close() }()

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("schedule watcher error", logfields.Path(w.dir), logfields.Error(err))
		case <-fire:
			fire = nil
			select {
			case changes <- struct{}{}:
			default:
			}
		}
	}
}

func (w *FileWatcher) relevant(ev fsnotify.Event) bool {
	if filepath.Base(ev.Name) != w.file || strings.HasPrefix(filepath.Base(ev.Name), ".") {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Remove)
}
