package vfswatch

import (
	"context"
	"os"
	"time"
)

func timeNow() time.Time { return time.Now() }

// pollingWatcher is a portable fallback used when fsnotify setup fails (for
// example, inside some sandboxes and network filesystems).
type pollingWatcher struct {
	evCh chan Event
	erCh chan error
	stop context.CancelFunc
}

func newPollingWatcher(path string, interval time.Duration) *pollingWatcher {
	w := &pollingWatcher{evCh: make(chan Event, 64), erCh: make(chan error, 1)}

	ctx, cancel := context.WithCancel(context.Background())
	w.stop = cancel

	go w.poll(ctx, path, interval)

	return w
}

func (w *pollingWatcher) poll(ctx context.Context, path string, interval time.Duration) {
	var lastMod time.Time
	if info, err := os.Stat(path); err == nil {
		lastMod = info.ModTime()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				w.erCh <- err
				continue
			}

			if info.ModTime().After(lastMod) {
				lastMod = info.ModTime()
				w.evCh <- Event{Path: path, Op: OpWrite, Time: timeNow()}
			}
		}
	}
}

func (w *pollingWatcher) Events() <-chan Event     { return w.evCh }
func (w *pollingWatcher) Errors() <-chan error     { return w.erCh }
func (w *pollingWatcher) Add(name string) error    { return nil }
func (w *pollingWatcher) Remove(name string) error { return nil }

func (w *pollingWatcher) Close() error {
	if w.stop != nil {
		w.stop()
	}

	close(w.evCh)

	return nil
}
