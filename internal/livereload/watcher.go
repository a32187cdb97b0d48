package livereload

import (
	"context"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/pubsub"
)

// debounceWindow collapses editor write bursts into a single event.
const debounceWindow = 100 * time.Millisecond

// Watcher publishes an asset-changed event whenever a file under any of the
// watched directories is written, created, renamed or removed.
type Watcher struct {
	fsw       *fsnotify.Watcher
	publisher pubsub.Publisher
}

// NewWatcher starts watching the given directories. Directories that do not
// exist are skipped with a warning so a missing static dir does not prevent
// startup.
func NewWatcher(publisher pubsub.Publisher, dirs ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			slog.Warn("livereload: cannot watch directory", "dir", dir, "error", err)
		}
	}
	return &Watcher{fsw: fsw, publisher: publisher}, nil
}

// Run consumes filesystem events until the context is canceled. It must be
// started on its own goroutine.
func (w *Watcher) Run(ctx context.Context) {
	var (
		timer   *time.Timer
		pending string
	)
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			pending = ev.Name
			if timer == nil {
				timer = time.AfterFunc(debounceWindow, func() { fire <- struct{}{} })
			} else {
				timer.Reset(debounceWindow)
			}

		case <-fire:
			timer = nil
			err := w.publisher.Publish(ctx, pubsub.Message{
				Topic:   pubsub.TopicAssetChanged,
				Payload: []byte(pending),
			})
			if err != nil {
				slog.Error("livereload: failed to publish asset change", "error", err)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Error("livereload: watcher error", "error", err)
		}
	}
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
