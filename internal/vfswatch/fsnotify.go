package vfswatch

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow collapses the several fsnotify events a single editor save
// typically produces (Write, then Chmod, sometimes a Create+Rename pair for
// atomic-save editors) into one. Without it, memarena-bench -watch would
// restart its whole workload once per raw event instead of once per save.
const debounceWindow = 150 * time.Millisecond

// fsNotifyWatcher implements Watcher using fsnotify for OS-native
// notifications, debounced per path.
type fsNotifyWatcher struct {
	w   *fsnotify.Watcher
	evC chan Event
	erC chan error

	mu       sync.Mutex
	lastSeen map[string]time.Time
}

func newFSNotifyWatcher() (*fsNotifyWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	fw := &fsNotifyWatcher{
		w:        w,
		evC:      make(chan Event, 128),
		erC:      make(chan error, 1),
		lastSeen: make(map[string]time.Time),
	}
	go fw.loop()

	return fw, nil
}

func (fw *fsNotifyWatcher) loop() {
	for {
		select {
		case ev, ok := <-fw.w.Events:
			if !ok {
				return
			}

			op := translateOp(ev.Op)
			if op == 0 || fw.debounced(ev.Name) {
				continue
			}

			fw.evC <- Event{Path: ev.Name, Op: op, Time: timeNow()}
		case err, ok := <-fw.w.Errors:
			if !ok {
				return
			}

			fw.erC <- err
		}
	}
}

// debounced reports whether name already produced an event within the last
// debounceWindow, updating its last-seen time either way.
func (fw *fsNotifyWatcher) debounced(name string) bool {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	now := timeNow()

	last, seen := fw.lastSeen[name]
	fw.lastSeen[name] = now

	return seen && now.Sub(last) < debounceWindow
}

// translateOp maps fsnotify's bitmask onto this package's platform-neutral
// Op, so pollingWatcher and fsNotifyWatcher report the same vocabulary.
func translateOp(op fsnotify.Op) Op {
	var out Op

	if op&fsnotify.Create != 0 {
		out |= OpCreate
	}
	if op&fsnotify.Write != 0 {
		out |= OpWrite
	}
	if op&fsnotify.Remove != 0 {
		out |= OpRemove
	}
	if op&fsnotify.Rename != 0 {
		out |= OpRename
	}
	if op&fsnotify.Chmod != 0 {
		out |= OpChmod
	}

	return out
}

func (fw *fsNotifyWatcher) Events() <-chan Event     { return fw.evC }
func (fw *fsNotifyWatcher) Errors() <-chan error     { return fw.erC }
func (fw *fsNotifyWatcher) Add(name string) error    { return fw.w.Add(name) }
func (fw *fsNotifyWatcher) Remove(name string) error { return fw.w.Remove(name) }
func (fw *fsNotifyWatcher) Close() error             { return fw.w.Close() }
