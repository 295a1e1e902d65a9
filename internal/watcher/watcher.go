// Package watcher reports changes made to the open file by other programs.
//
// The watcher observes the file's parent directory so that editors which
// save by writing a temporary file and renaming it over the original are
// still noticed. Bursts of events for the file are coalesced into a single
// Event after a short delay.
package watcher

import (
	"errors"
	"strings"
	"time"
)

// Common errors returned by watcher operations.
var (
	ErrWatcherClosed = errors.New("watcher is closed")
	ErrPathNotExist  = errors.New("path does not exist")
)

// Op represents the kind of change observed. Coalesced events may carry
// several bits.
type Op uint32

const (
	// OpCreate indicates the file was created.
	OpCreate Op = 1 << iota
	// OpWrite indicates the file was written to.
	OpWrite
	// OpRemove indicates the file was removed.
	OpRemove
	// OpRename indicates the file was renamed away.
	OpRename
)

// String returns a human-readable representation of the operation.
func (op Op) String() string {
	var names []string
	if op.Has(OpCreate) {
		names = append(names, "CREATE")
	}
	if op.Has(OpWrite) {
		names = append(names, "WRITE")
	}
	if op.Has(OpRemove) {
		names = append(names, "REMOVE")
	}
	if op.Has(OpRename) {
		names = append(names, "RENAME")
	}
	if len(names) == 0 {
		return "UNKNOWN"
	}
	return strings.Join(names, "|")
}

// Has returns true if the operation includes the given op.
func (op Op) Has(o Op) bool {
	return op&o == o
}

// Gone reports whether the file no longer exists at its path.
func (op Op) Gone() bool {
	return (op.Has(OpRemove) || op.Has(OpRename)) && !op.Has(OpCreate)
}

// Event represents a change to the watched file.
type Event struct {
	// Path is the absolute path of the watched file.
	Path string

	// Op is the combined set of operations seen during the delay window.
	Op Op

	// Timestamp is when the event was delivered.
	Timestamp time.Time
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDelay sets how long events are coalesced before delivery.
func WithDelay(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.delay = d
		}
	}
}

// WithBufferSize sets the capacity of the event and error channels.
func WithBufferSize(n int) Option {
	return func(w *Watcher) {
		if n > 0 {
			w.bufSize = n
		}
	}
}
