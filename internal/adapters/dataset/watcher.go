package dataset

import (
	"context"
	"errors"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/okian/glorypath/pkg/logger"
	"github.com/okian/glorypath/pkg/metrics"
)

// ErrWatcherStarted is returned by Start on a running watcher.
var ErrWatcherStarted = errors.New("watcher already started")

// Invalidator drops a cached table.
type Invalidator interface {
	Invalidate(ctx context.Context, t Table)
}

// Watcher invalidates cached tables when their files change on disk.
type Watcher struct {
	mu      sync.Mutex
	dir     string
	target  Invalidator
	logger  logger.Logger
	watcher *fsnotify.Watcher
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

// NewWatcher returns a stopped watcher for dir.
func NewWatcher(dir string, target Invalidator, l logger.Logger) *Watcher {
	if l == nil {
		l = logger.Named("watcher")
	}
	return &Watcher{dir: dir, target: target, logger: l}
}

// Start begins watching the data directory. It does not block.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return ErrWatcherStarted
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fw.Add(w.dir); err != nil {
		_ = fw.Close()
		return err
	}

	w.watcher = fw
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	w.running = true
	go w.run(ctx, fw, w.stopCh, w.doneCh)

	w.logger.Info(ctx, "watching data directory", logger.String("dir", w.dir))
	return nil
}

// Stop ends the watch loop and waits for it to exit. It is safe to call on
// a stopped watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.stopCh)
	done, fw := w.doneCh, w.watcher
	w.mu.Unlock()

	<-done
	if err := fw.Close(); err != nil {
		w.logger.Error(context.Background(), "closing watcher", logger.Error(err))
	}
}

func (w *Watcher) run(ctx context.Context, fw *fsnotify.Watcher, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case <-ctx.Done():
			return
		case <-stop:
			return
		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			w.handle(ctx, ev)
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			metrics.RecordWatcherError()
			w.logger.Warn(ctx, "watcher error", logger.Error(err))
		}
	}
}

func (w *Watcher) handle(ctx context.Context, ev fsnotify.Event) {
	var op string
	switch {
	case ev.Has(fsnotify.Create):
		op = "create"
	case ev.Has(fsnotify.Write):
		op = "write"
	case ev.Has(fsnotify.Remove):
		op = "remove"
	case ev.Has(fsnotify.Rename):
		op = "rename"
	default:
		return
	}

	t, ok := TableForFile(ev.Name)
	if !ok {
		return
	}
	metrics.RecordWatcherEvent(op)
	w.logger.Debug(ctx, "data file changed",
		logger.String("table", string(t)),
		logger.String("op", op),
	)
	w.target.Invalidate(ctx, t)
}
