package engine

import (
	"strings"

	"github.com/dshills/scribe/internal/engine/cursor"
)

// Selection returns the current selection variant.
func (e *Engine) Selection() Selection {
	return e.sel
}

// HasSelection reports whether a selection is active.
func (e *Engine) HasSelection() bool {
	return cursor.IsActive(e.sel)
}

// StartSelection latches the anchor at the cursor. It is a no-op while a
// selection is already active.
func (e *Engine) StartSelection() {
	if e.HasSelection() {
		return
	}
	e.sel = cursor.ActiveSelection{Anchor: e.cur.Position()}
}

// ClearSelection drops the selection without touching the text.
func (e *Engine) ClearSelection() {
	e.sel = cursor.NoSelection{}
}

// SelectAll anchors at (0:0) and moves the cursor to the end of the last
// line. It is a no-op on an empty document.
func (e *Engine) SelectAll() {
	if e.buf.IsEmpty() {
		return
	}
	e.sel = cursor.ActiveSelection{Anchor: Point{}}
	e.cur.Place(e.buf.End())
}

// SelectionRange returns the ordered selection range. ok is false when no
// selection is active.
func (e *Engine) SelectionRange() (r Range, ok bool) {
	active, ok := e.sel.(cursor.ActiveSelection)
	if !ok {
		return Range{}, false
	}
	return active.Range(e.cur.Position()), true
}

// InSelection reports whether (line, col) lies inside the selection. It is
// meant for highlighting and never mutates state.
func (e *Engine) InSelection(line, col int) bool {
	r, ok := e.SelectionRange()
	if !ok {
		return false
	}
	return r.Contains(Point{Line: line, Col: col})
}

// SelectedText returns the selected text with '\n' between lines, or ""
// when no selection is active.
func (e *Engine) SelectedText() string {
	r, ok := e.SelectionRange()
	if !ok {
		return ""
	}

	if !r.IsMultiLine() {
		return e.buf.Slice(r.Start.Line, r.Start.Col, r.End.Col)
	}

	var sb strings.Builder
	sb.WriteString(e.buf.Slice(r.Start.Line, r.Start.Col, e.buf.LineLength(r.Start.Line)))
	for line := r.Start.Line + 1; line < r.End.Line; line++ {
		sb.WriteByte('\n')
		sb.WriteString(e.buf.Line(line))
	}
	sb.WriteByte('\n')
	sb.WriteString(e.buf.Slice(r.End.Line, 0, r.End.Col))
	return sb.String()
}

// EraseSelection removes the selected text, leaving the cursor at the start
// of the former range. It is a no-op when no selection is active.
func (e *Engine) EraseSelection() {
	r, ok := e.SelectionRange()
	if !ok {
		return
	}

	merged := e.buf.Slice(r.Start.Line, 0, r.Start.Col) +
		e.buf.Slice(r.End.Line, r.End.Col, e.buf.LineLength(r.End.Line))
	e.buf.ReplaceLines(r.Start.Line, r.End.Line, merged)

	e.sel = cursor.NoSelection{}
	e.cur.Place(r.Start)
	e.dirty = true
}
