package engine

import "github.com/dshills/scribe/internal/engine/buffer"

// Default configuration values.
const (
	// DefaultTabWidth is the distance between tab stops.
	DefaultTabWidth = 4
)

// ClipboardSink receives every value written to the clipboard register.
// Implementations must not call back into the engine.
type ClipboardSink interface {
	Publish(text string)
}

// Option is a functional option for configuring an Engine.
type Option func(*Engine)

// WithTabWidth sets the tab stop distance used when a tab is inserted.
func WithTabWidth(width int) Option {
	return func(e *Engine) {
		if width > 0 {
			e.tabWidth = width
		}
	}
}

// WithBuffer starts the engine on existing content. The cursor is placed at
// the end of the document.
func WithBuffer(buf *buffer.Buffer) Option {
	return func(e *Engine) {
		if buf != nil {
			e.buf = buf
		}
	}
}

// WithClipboardSink mirrors the clipboard register to sink on every cut or
// copy.
func WithClipboardSink(sink ClipboardSink) Option {
	return func(e *Engine) {
		e.sink = sink
	}
}

// WithDirty sets the initial value of the dirty flag.
func WithDirty(dirty bool) Option {
	return func(e *Engine) {
		e.dirty = dirty
	}
}
