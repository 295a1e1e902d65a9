package cursor

import (
	"fmt"

	"github.com/dshills/scribe/internal/engine/buffer"
)

// Point is an alias for buffer.Point for convenience.
type Point = buffer.Point

// Lines is the read-only view of a document the cursor navigates over.
// *buffer.Buffer satisfies it.
type Lines interface {
	LineCount() int
	LineLength(line int) int
}

// Mode is the navigation mode of a cursor.
type Mode uint8

const (
	// ModeFree is the mode after any horizontal move or placement.
	ModeFree Mode = iota
	// ModeVertical is held across consecutive vertical moves.
	ModeVertical
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeFree:
		return "free"
	case ModeVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Cursor is the edit position with vertical-move column memory.
// The zero value is a free cursor at (0:0).
type Cursor struct {
	pos       Point
	mode      Mode
	targetCol int
}

// NewCursor creates a free cursor at the given position.
func NewCursor(p Point) Cursor {
	return Cursor{pos: p}
}

// Position returns the cursor position.
func (c Cursor) Position() Point {
	return c.pos
}

// Line returns the cursor line.
func (c Cursor) Line() int {
	return c.pos.Line
}

// Col returns the cursor column.
func (c Cursor) Col() int {
	return c.pos.Col
}

// Mode returns the navigation mode.
func (c Cursor) Mode() Mode {
	return c.mode
}

// TargetCol returns the remembered column. It is only meaningful in
// ModeVertical.
func (c Cursor) TargetCol() int {
	return c.targetCol
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	if c.mode == ModeVertical {
		return fmt.Sprintf("Cursor%s[target %d]", c.pos, c.targetCol)
	}
	return fmt.Sprintf("Cursor%s", c.pos)
}

// Place moves the cursor to p and returns it to ModeFree.
// Edits use Place after changing the document.
func (c *Cursor) Place(p Point) {
	c.pos = p
	c.mode = ModeFree
}

// MoveRight advances one byte, wrapping to the start of the next line.
// Returns false when already at the end of the last line.
func (c *Cursor) MoveRight(l Lines) bool {
	c.mode = ModeFree

	if c.pos.Col < l.LineLength(c.pos.Line) {
		c.pos.Col++
		return true
	}
	if c.pos.Line < l.LineCount()-1 {
		c.pos = Point{Line: c.pos.Line + 1}
		return true
	}
	return false
}

// MoveLeft retreats one byte, wrapping to the end of the previous line.
// Returns false when already at (0:0).
func (c *Cursor) MoveLeft(l Lines) bool {
	c.mode = ModeFree

	if c.pos.Col > 0 {
		c.pos.Col--
		return true
	}
	if c.pos.Line > 0 {
		line := c.pos.Line - 1
		c.pos = Point{Line: line, Col: l.LineLength(line)}
		return true
	}
	return false
}

// MoveUp moves to the previous line at the target column, clamped to the
// line length. Returns false on the first line.
func (c *Cursor) MoveUp(l Lines) bool {
	c.enterVertical()

	if c.pos.Line == 0 {
		return false
	}
	c.pos.Line--
	c.pos.Col = min(c.targetCol, l.LineLength(c.pos.Line))
	return true
}

// MoveDown moves to the next line at the target column, clamped to the
// line length. Returns false on the last line.
func (c *Cursor) MoveDown(l Lines) bool {
	c.enterVertical()

	if c.pos.Line >= l.LineCount()-1 {
		return false
	}
	c.pos.Line++
	c.pos.Col = min(c.targetCol, l.LineLength(c.pos.Line))
	return true
}

// CanMoveToLineStart reports whether MoveToLineStart would move.
func (c Cursor) CanMoveToLineStart() bool {
	return c.pos.Col > 0
}

// MoveToLineStart jumps to column 0. Returns false if already there, in
// which case nothing changes.
func (c *Cursor) MoveToLineStart() bool {
	if !c.CanMoveToLineStart() {
		return false
	}
	c.Place(Point{Line: c.pos.Line})
	return true
}

// CanMoveToLineEnd reports whether MoveToLineEnd would move.
func (c Cursor) CanMoveToLineEnd(l Lines) bool {
	return c.pos.Col < l.LineLength(c.pos.Line)
}

// MoveToLineEnd jumps past the last byte of the line. Returns false if
// already there, in which case nothing changes.
func (c *Cursor) MoveToLineEnd(l Lines) bool {
	if !c.CanMoveToLineEnd(l) {
		return false
	}
	c.Place(Point{Line: c.pos.Line, Col: l.LineLength(c.pos.Line)})
	return true
}

// enterVertical captures the target column on the first vertical move of a
// sequence.
func (c *Cursor) enterVertical() {
	if c.mode != ModeVertical {
		c.mode = ModeVertical
		c.targetCol = c.pos.Col
	}
}
