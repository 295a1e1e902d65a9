package engine

import "bytes"

// Insert types one byte at the cursor. Any active selection is erased first.
//
//   - '\t' inserts spaces up to the next tab stop
//   - '\n' splits the line at the cursor and moves to the start of the new line
//   - any other byte is inserted and the cursor advances past it
func (e *Engine) Insert(ch byte) {
	e.dirty = true
	e.EraseSelection()

	p := e.cur.Position()
	switch ch {
	case '\t':
		n := e.tabWidth - p.Col%e.tabWidth
		e.buf.InsertBytes(p.Line, p.Col, bytes.Repeat([]byte{' '}, n))
		p.Col += n
	case '\n':
		e.buf.SplitLine(p.Line, p.Col)
		p = Point{Line: p.Line + 1}
	default:
		e.buf.InsertByte(p.Line, p.Col, ch)
		p.Col++
	}
	e.cur.Place(p)
}

// InsertText types every byte of s in order through Insert.
func (e *Engine) InsertText(s string) {
	for i := 0; i < len(s); i++ {
		e.Insert(s[i])
	}
}

// Feed types raw file bytes into the document, exactly as if they had been
// typed. Tabs are expanded. The dirty flag is left untouched.
func (e *Engine) Feed(data []byte) {
	dirty := e.dirty
	for _, ch := range data {
		e.Insert(ch)
	}
	e.dirty = dirty
}

// Erase deletes forward. An active selection is erased instead. At the end of
// a line the next line is joined onto the current one; at the end of the last
// line nothing happens.
func (e *Engine) Erase() {
	if e.HasSelection() {
		e.EraseSelection()
		return
	}

	p := e.cur.Position()
	if p.Col == e.buf.LineLength(p.Line) {
		if p.Line == e.buf.LastLine() {
			return
		}
		e.buf.JoinLine(p.Line)
	} else {
		e.buf.DeleteByte(p.Line, p.Col)
	}
	e.cur.Place(p)
	e.dirty = true
}

// Backspace deletes backward. An active selection is erased instead. At the
// document start nothing happens; at a line start the line is merged into
// the previous one.
func (e *Engine) Backspace() {
	if e.HasSelection() {
		e.EraseSelection()
		return
	}

	if e.cur.Position().IsZero() {
		return
	}
	e.MoveLeft(false)
	e.Erase()
}
