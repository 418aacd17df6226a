// Package watcher detects source and config file changes for watch mode.
package watcher

import (
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"
)

// Op is the kind of change observed on a file.
type Op string

const (
	OpCreate Op = "create"
	OpWrite  Op = "write"
	OpRemove Op = "remove"
)

// Event represents one observed file change.
type Event struct {
	Path string
	Op   Op
}

// DefaultPollInterval is how often the watcher rescans when no interval
// was configured.
const DefaultPollInterval = 500 * time.Millisecond

// Watcher watches directories and explicit files for changes by polling.
// Polling behaves identically across platforms and avoids inotify descriptor
// limits on large projects.
type Watcher struct {
	dirs         []string
	extensions   []string // ".ts", ".mts", and friends
	debounce     time.Duration
	pollInterval time.Duration
	onChange     func(events []Event)

	mu      sync.Mutex
	files   []string
	pending []Event
	timer   *time.Timer
	stopCh  chan struct{}
}

// New creates a watcher over dirs (recursive, filtered by extensions) plus
// the explicitly listed files. Config files are the typical explicit
// entries: they must be watched even though they match no source extension.
func New(dirs []string, extensions []string, files []string, debounce time.Duration, onChange func(events []Event)) *Watcher {
	return &Watcher{
		dirs:         dirs,
		extensions:   extensions,
		files:        files,
		debounce:     debounce,
		pollInterval: DefaultPollInterval,
		onChange:     onChange,
		stopCh:       make(chan struct{}),
	}
}

// SetPollInterval overrides the rescan interval. Tests shorten it to keep
// polling rounds fast.
func (w *Watcher) SetPollInterval(d time.Duration) {
	w.pollInterval = d
}

// SetFiles replaces the explicit file list. The next poll picks it up; watch
// mode uses this to follow the program's file set as imports come and go
// between extractions.
func (w *Watcher) SetFiles(paths []string) {
	w.mu.Lock()
	w.files = slices.Clone(paths)
	w.mu.Unlock()
}

// Watch polls for changes until Stop is called, delivering debounced event
// batches to the onChange callback.
func (w *Watcher) Watch() error {
	prev := w.scan()

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return nil
		case <-ticker.C:
			next := w.scan()
			if events := diff(prev, next); len(events) > 0 {
				w.queue(events)
			}
			prev = next
		}
	}
}

// Stop ends the Watch loop. Safe to call from another goroutine.
func (w *Watcher) Stop() {
	close(w.stopCh)
}

// queue adds events to the pending batch and re-arms the debounce timer, so
// a burst of saves produces a single onChange call.
func (w *Watcher) queue(events []Event) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending = append(w.pending, events...)
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.flush)
}

// flush hands the accumulated batch to onChange. The batch may be empty if a
// stopped timer had already fired.
func (w *Watcher) flush() {
	w.mu.Lock()
	pending := w.pending
	w.pending = nil
	w.mu.Unlock()
	if len(pending) > 0 {
		w.onChange(pending)
	}
}

// stamp records what the poller compares between scans. Mtime granularity
// alone can miss rapid successive saves, so size is compared as well.
type stamp struct {
	mtime time.Time
	size  int64
}

func (s stamp) differs(o stamp) bool {
	return !s.mtime.Equal(o.mtime) || s.size != o.size
}

type snapshot map[string]stamp

// scan walks the watched directories and stats the explicit files, recording
// a stamp per live file. Unreadable entries are skipped; they will show up
// as creates once they become readable.
func (w *Watcher) scan() snapshot {
	snap := make(snapshot)
	for _, dir := range w.dirs {
		filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
			if err != nil || d.IsDir() || !slices.Contains(w.extensions, filepath.Ext(path)) {
				return nil
			}
			if info, err := d.Info(); err == nil {
				snap[path] = stamp{mtime: info.ModTime(), size: info.Size()}
			}
			return nil
		})
	}

	w.mu.Lock()
	files := slices.Clone(w.files)
	w.mu.Unlock()
	for _, path := range files {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			snap[path] = stamp{mtime: info.ModTime(), size: info.Size()}
		}
	}
	return snap
}

// diff compares two snapshots and reports one event per changed path.
func diff(prev, next snapshot) []Event {
	var events []Event
	for path, cur := range next {
		before, existed := prev[path]
		switch {
		case !existed:
			events = append(events, Event{Path: path, Op: OpCreate})
		case cur.differs(before):
			events = append(events, Event{Path: path, Op: OpWrite})
		}
	}
	for path := range prev {
		if _, alive := next[path]; !alive {
			events = append(events, Event{Path: path, Op: OpRemove})
		}
	}
	return events
}
