// Package clipboard mirrors the editor's clipboard register to the
// operating system clipboard.
//
// The mirror is write-only. Paste always reads the editor's own register,
// so a missing or failing system clipboard never changes editing results.
package clipboard

import (
	"errors"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is reported when no system clipboard utility is available.
var ErrUnsupported = errors.New("system clipboard unsupported")

// WriteFunc writes text to a clipboard.
type WriteFunc func(text string) error

// Logger receives mirror failures.
type Logger interface {
	Debug(msg string, args ...any)
}

// Option configures a System mirror.
type Option func(*System)

// WithWriter replaces the OS clipboard writer.
func WithWriter(w WriteFunc) Option {
	return func(s *System) {
		s.write = w
	}
}

// WithLogger sets the logger for write failures.
func WithLogger(l Logger) Option {
	return func(s *System) {
		s.logger = l
	}
}

// System publishes clipboard text to the OS clipboard.
// It is safe for concurrent use.
type System struct {
	mu      sync.Mutex
	write   WriteFunc
	logger  Logger
	lastErr error
}

// New creates a mirror backed by the OS clipboard.
func New(opts ...Option) *System {
	s := &System{write: writeSystem}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func writeSystem(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// Publish writes text to the OS clipboard. Failures are logged and kept
// for LastError; they are never returned to the editor.
func (s *System) Publish(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.write(text); err != nil {
		s.lastErr = err
		if s.logger != nil {
			s.logger.Debug("clipboard mirror failed: %v", err)
		}
		return
	}
	s.lastErr = nil
}

// LastError returns the error from the most recent Publish, if any.
func (s *System) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
