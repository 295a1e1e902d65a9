package engine

import (
	"github.com/dshills/scribe/internal/engine/buffer"
	"github.com/dshills/scribe/internal/engine/cursor"
)

// Re-export commonly used types for convenience.
type (
	// Point represents a line/column position.
	Point = buffer.Point

	// Range is an ordered selection range.
	Range = cursor.Range

	// Selection is NoSelection or ActiveSelection.
	Selection = cursor.Selection
)

// Engine is the editing core: document, cursor, selection, clipboard
// register and dirty flag.
type Engine struct {
	buf *buffer.Buffer
	cur cursor.Cursor
	sel cursor.Selection

	register string
	sink     ClipboardSink

	dirty    bool
	tabWidth int
}

// New creates an Engine with the given options. Without WithBuffer the
// document is a single empty line.
func New(opts ...Option) *Engine {
	e := &Engine{
		buf:      buffer.NewBuffer(),
		sel:      cursor.NoSelection{},
		tabWidth: DefaultTabWidth,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.cur = cursor.NewCursor(e.buf.End())
	return e
}

// Read Operations

// LineCount returns the number of lines. It is always at least 1.
func (e *Engine) LineCount() int {
	return e.buf.LineCount()
}

// LineLength returns the length of a line in bytes.
func (e *Engine) LineLength(line int) int {
	return e.buf.LineLength(line)
}

// Line returns the content of a line.
func (e *Engine) Line(line int) string {
	return e.buf.Line(line)
}

// Lines returns a copy of every line.
func (e *Engine) Lines() []string {
	return e.buf.Lines()
}

// Cursor returns the cursor position.
func (e *Engine) Cursor() Point {
	return e.cur.Position()
}

// NavigationMode returns the cursor's navigation mode.
func (e *Engine) NavigationMode() cursor.Mode {
	return e.cur.Mode()
}

// TabWidth returns the tab stop distance.
func (e *Engine) TabWidth() int {
	return e.tabWidth
}

// Size returns the serialized byte total: every line plus one separator
// between consecutive lines.
func (e *Engine) Size() int {
	return e.buf.Size()
}

// Bytes returns the serialized document.
func (e *Engine) Bytes() []byte {
	return e.buf.Bytes()
}

// Text returns the serialized document as a string.
func (e *Engine) Text() string {
	return e.buf.String()
}

// Dirty reports whether the document may differ from its persisted form.
func (e *Engine) Dirty() bool {
	return e.dirty
}

// MarkDirty sets the dirty flag.
func (e *Engine) MarkDirty() {
	e.dirty = true
}

// MarkClean clears the dirty flag after a successful save.
func (e *Engine) MarkClean() {
	e.dirty = false
}
