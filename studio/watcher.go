package studio

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/cj-mills/trimotion/studio/core"
)

// Watcher folds filesystem events into debounced change signals. Editors
// tend to emit bursts of writes per save; one signal comes out per burst.
type Watcher struct {
	fsnotify *fsnotify.Watcher
	debounce time.Duration
	pending  chan struct{}
	done     chan struct{}
	wg       sync.WaitGroup

	mutex    sync.Mutex
	isClosed bool
	targets  map[string]struct{}
	watchAll bool
}

func NewWatcher(debounce time.Duration) (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsnotify: fsWatch,
		debounce: debounce,
		pending:  make(chan struct{}, 1),
		done:     make(chan struct{}),
		targets:  make(map[string]struct{}),
	}, nil
}

// Add starts watching the named file or directory (non-recursively).
// A file is watched through its parent directory and matched by name, so
// a save that replaces the file keeps the watch on the live path instead
// of a dead inode.
func (w *Watcher) Add(path string) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.isClosed {
		return errors.New("watcher instance already closed")
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		w.watchAll = true
		return w.fsnotify.Add(path)
	}
	target := filepath.Clean(path)
	if err := w.fsnotify.Add(filepath.Dir(target)); err != nil {
		return err
	}
	w.targets[target] = struct{}{}
	return nil
}

// matches reports whether an event path names a watched target. Directory
// watches accept everything.
func (w *Watcher) matches(name string) bool {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.watchAll {
		return true
	}
	_, ok := w.targets[filepath.Clean(name)]
	return ok
}

// Run blocks until Close, invoking onChange after each debounced burst.
func (w *Watcher) Run(onChange func()) {
	w.wg.Add(1)
	go w.watchLoop()

	for {
		select {
		case <-w.done:
			return
		case <-w.pending:
			timer := time.NewTimer(w.debounce)
		settle:
			for {
				select {
				case <-w.pending:
				case <-timer.C:
					break settle
				case <-w.done:
					timer.Stop()
					return
				}
			}
			onChange()
		}
	}
}

func (w *Watcher) watchLoop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 && w.matches(event.Name) {
				core.LogDebug("filesystem event: %s %s", event.Op, event.Name)
				select {
				case w.pending <- struct{}{}:
				default:
				}
			}
		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("watch error: %s", err)
		}
	}
}

// Close stops the watcher and unblocks Run. Safe to call more than once.
func (w *Watcher) Close() error {
	w.mutex.Lock()
	if w.isClosed {
		w.mutex.Unlock()
		return nil
	}
	w.isClosed = true
	w.mutex.Unlock()

	close(w.done)
	err := w.fsnotify.Close()
	w.wg.Wait()
	return err
}
