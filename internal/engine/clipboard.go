package engine

// Clipboard returns the register text.
func (e *Engine) Clipboard() string {
	return e.register
}

// Copy stores the selected text in the register, or the whole current line
// (without a line break) when nothing is selected.
func (e *Engine) Copy() {
	if e.HasSelection() {
		e.setRegister(e.SelectedText())
		return
	}
	e.setRegister(e.buf.Line(e.cur.Line()))
}

// Cut copies and then removes the selection. Without a selection the whole
// current line is copied and removed; the only line is emptied instead.
func (e *Engine) Cut() {
	if e.HasSelection() {
		e.setRegister(e.SelectedText())
		e.EraseSelection()
		return
	}

	line := e.cur.Line()
	e.setRegister(e.buf.Line(line))

	switch {
	case e.buf.LineCount() == 1:
		e.buf.SetLine(0, "")
		e.cur.Place(Point{})
	case line == e.buf.LastLine():
		e.buf.RemoveLine(line)
		e.cur.Place(e.buf.End())
	default:
		e.buf.RemoveLine(line)
		e.cur.Place(Point{Line: line})
	}
	e.dirty = true
}

// Paste types the register through Insert, so tabs and line breaks are
// handled exactly as typed input. The register is kept.
func (e *Engine) Paste() {
	e.InsertText(e.register)
}

func (e *Engine) setRegister(text string) {
	e.register = text
	if e.sink != nil {
		e.sink.Publish(text)
	}
}
