package engine

import "github.com/dshills/scribe/internal/engine/cursor"

// MoveRight moves one byte right, wrapping to the next line.
func (e *Engine) MoveRight(extend bool) {
	e.navigate(extend, func() bool { return e.cur.MoveRight(e.buf) })
}

// MoveLeft moves one byte left, wrapping to the previous line.
func (e *Engine) MoveLeft(extend bool) {
	e.navigate(extend, func() bool { return e.cur.MoveLeft(e.buf) })
}

// MoveUp moves one line up, keeping the remembered column.
func (e *Engine) MoveUp(extend bool) {
	e.navigate(extend, func() bool { return e.cur.MoveUp(e.buf) })
}

// MoveDown moves one line down, keeping the remembered column.
func (e *Engine) MoveDown(extend bool) {
	e.navigate(extend, func() bool { return e.cur.MoveDown(e.buf) })
}

// MoveToLineStart jumps to column 0. When already there nothing changes,
// so a shifted press does not start an empty selection.
func (e *Engine) MoveToLineStart(extend bool) {
	if !e.cur.CanMoveToLineStart() {
		return
	}
	e.navigate(extend, e.cur.MoveToLineStart)
}

// MoveToLineEnd jumps past the last byte of the line. When already there
// nothing changes.
func (e *Engine) MoveToLineEnd(extend bool) {
	if !e.cur.CanMoveToLineEnd(e.buf) {
		return
	}
	e.navigate(extend, func() bool { return e.cur.MoveToLineEnd(e.buf) })
}

// navigate applies the selection rule shared by every movement: extending
// latches the anchor at the pre-move position, anything else clears the
// selection before moving. A blocked move never leaves a fresh selection.
func (e *Engine) navigate(extend bool, move func() bool) {
	had := e.HasSelection()

	if extend {
		e.StartSelection()
	} else {
		e.sel = cursor.NoSelection{}
	}

	if !move() && !had {
		e.sel = cursor.NoSelection{}
	}
}
