// Package vfswatch provides a platform-independent file-change notification
// API used by the memarena-bench --watch mode to re-run a workload whenever
// the watched file changes.
package vfswatch

import "time"

// Op indicates a change operation reported by a Watcher.
type Op uint32

const (
	OpCreate Op = 1 << iota
	OpWrite
	OpRemove
	OpRename
	OpChmod
)

// Event describes a single filesystem change.
type Event struct {
	Path string
	Op   Op
	Time time.Time
}

// Watcher is a platform-independent file watching API. New prefers an
// fsnotify-backed Watcher and falls back to a polling Watcher if the OS
// watch cannot be established.
type Watcher interface {
	Events() <-chan Event
	Errors() <-chan error
	Add(name string) error
	Remove(name string) error
	Close() error
}

// New returns an fsnotify-backed Watcher, or a polling Watcher watching the
// given path every interval if fsnotify setup fails.
func New(path string, interval time.Duration) (Watcher, error) {
	w, err := newFSNotifyWatcher()
	if err != nil {
		return newPollingWatcher(path, interval), nil
	}

	if err := w.Add(path); err != nil {
		_ = w.Close()
		return newPollingWatcher(path, interval), nil
	}

	return w, nil
}
