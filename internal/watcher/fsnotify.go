package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a single file using fsnotify.
type Watcher struct {
	mu sync.Mutex

	watcher *fsnotify.Watcher
	path    string

	delay   time.Duration
	bufSize int

	// Output channels
	events chan Event
	errors chan error

	// Coalescing state
	pendingOp Op
	timer     *time.Timer
	muteUntil time.Time

	// Lifecycle
	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// New starts watching path. The file itself need not exist yet, but its
// directory must.
func New(path string, opts ...Option) (*Watcher, error) {
	absPath, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:    absPath,
		delay:   100 * time.Millisecond,
		bufSize: 16,
		closeCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	dir := filepath.Dir(absPath)
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotExist, dir)
		}
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	w.watcher = fsw
	w.events = make(chan Event, w.bufSize)
	w.errors = make(chan error, w.bufSize)

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Events returns the event channel. It is closed by Close.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the error channel. It is closed by Close.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Mute drops events for the duration d, including any event still being
// coalesced. It is used around writes made by the editor itself.
func (w *Watcher) Mute(d time.Duration) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	w.muteUntil = time.Now().Add(d)
	w.cancelPendingLocked()
	return nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.cancelPendingLocked()
	w.mu.Unlock()

	// Wait for processLoop to finish
	w.closedWg.Wait()

	close(w.events)
	close(w.errors)

	return w.watcher.Close()
}

// processLoop handles incoming fsnotify events.
func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case fsEvent, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(fsEvent)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

// resolvePath makes path absolute and resolves symlinks so it matches the
// names fsnotify reports. A file that does not exist yet is resolved
// through its directory.
func resolvePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if real, err := filepath.EvalSymlinks(absPath); err == nil {
		return real, nil
	}
	if dir, err := filepath.EvalSymlinks(filepath.Dir(absPath)); err == nil {
		return filepath.Join(dir, filepath.Base(absPath)), nil
	}
	return absPath, nil
}

// handleFSEvent filters events down to the watched file and starts or
// extends the coalescing window.
func (w *Watcher) handleFSEvent(fsEvent fsnotify.Event) {
	if filepath.Clean(fsEvent.Name) != w.path {
		return
	}
	op := convertOp(fsEvent.Op)
	if op == 0 {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || time.Now().Before(w.muteUntil) {
		return
	}

	w.pendingOp |= op
	if w.timer == nil {
		w.timer = time.AfterFunc(w.delay, w.flush)
	}
}

// flush delivers the coalesced event.
func (w *Watcher) flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || w.pendingOp == 0 {
		return
	}

	event := Event{
		Path:      w.path,
		Op:        w.pendingOp,
		Timestamp: time.Now(),
	}
	w.pendingOp = 0
	w.timer = nil

	select {
	case w.events <- event:
	default:
		// Channel full, drop event
	}
}

func (w *Watcher) cancelPendingLocked() {
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.pendingOp = 0
}

// sendError sends an error to the output channel.
func (w *Watcher) sendError(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	select {
	case w.errors <- err:
	default:
		// Channel full, drop error
	}
}

// convertOp converts fsnotify.Op to watcher.Op. Permission changes are
// not reported.
func convertOp(fsOp fsnotify.Op) Op {
	var op Op
	if fsOp.Has(fsnotify.Create) {
		op |= OpCreate
	}
	if fsOp.Has(fsnotify.Write) {
		op |= OpWrite
	}
	if fsOp.Has(fsnotify.Remove) {
		op |= OpRemove
	}
	if fsOp.Has(fsnotify.Rename) {
		op |= OpRename
	}
	return op
}
