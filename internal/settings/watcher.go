package settings

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watchDebounce coalesces editor write bursts into one reload.
const watchDebounce = 200 * time.Millisecond

// Watcher reloads the store when its backing file changes on disk and
// notifies subscribers.
type Watcher struct {
	store *Store
	log   *zap.Logger

	fw   *fsnotify.Watcher
	done chan struct{}

	mu        sync.Mutex
	onReload  []func()
	closeOnce sync.Once
}

// Watch starts watching the store's file. The parent directory is
// watched so atomic saves (write to temp, rename over) are seen.
func Watch(store *Store, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(store.Path())); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		store: store,
		log:   log,
		fw:    fw,
		done:  make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// OnReload registers a callback invoked after a successful reload.
func (w *Watcher) OnReload(fn func()) {
	w.mu.Lock()
	w.onReload = append(w.onReload, fn)
	w.mu.Unlock()
}

// Close stops watching.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() { close(w.done) })
	return w.fw.Close()
}

func (w *Watcher) run() {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.store.Path()) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
				timerC = timer.C
			} else {
				timer.Reset(watchDebounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			if err := w.store.Load(); err != nil {
				w.log.Warn("settings reload failed", zap.Error(err))
				continue
			}
			w.log.Debug("settings reloaded", zap.String("path", w.store.Path()))
			w.mu.Lock()
			callbacks := make([]func(), len(w.onReload))
			copy(callbacks, w.onReload)
			w.mu.Unlock()
			for _, fn := range callbacks {
				fn()
			}

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.log.Warn("settings watcher error", zap.Error(err))
		}
	}
}
