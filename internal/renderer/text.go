package renderer

import "github.com/dshills/scribe/internal/renderer/core"

// displayColumn returns the screen column of byte offset col in line when
// tabs advance to the next multiple of tabWidth.
func displayColumn(line string, col, tabWidth int) int {
	x := 0
	for i := 0; i < col && i < len(line); i++ {
		x += byteWidth(line[i], x, tabWidth)
	}
	if col > len(line) {
		x += col - len(line)
	}
	return x
}

// byteWidth returns the cells taken by b when drawn at display column x.
func byteWidth(b byte, x, tabWidth int) int {
	if b == '\t' {
		return tabWidth - x%tabWidth
	}
	return 1
}

// displayRune maps a document byte to the rune shown for it. Bytes outside
// printable ASCII are shown as '?'.
func displayRune(b byte) rune {
	if b < 0x20 || b >= 0x7F {
		return '?'
	}
	return rune(b)
}

// drawLine draws the text of line on screen row, honouring the horizontal
// scroll offset and the selection.
func (r *Renderer) drawLine(doc Document, row, line, gutter, width int) {
	text := doc.Line(line)
	left := r.viewport.LeftColumn()

	put := func(x int, ch rune, selected bool) {
		sx := gutter + x - left
		if x < left || sx >= width {
			return
		}
		style := r.theme.Text
		if selected {
			style = r.theme.Selection
		}
		r.backend.SetCell(sx, row, core.NewStyledCell(ch, style))
	}

	x := 0
	for col := 0; col < len(text); col++ {
		selected := doc.InSelection(line, col)
		b := text[col]
		w := byteWidth(b, x, r.opts.TabWidth)
		if b == '\t' {
			for i := 0; i < w; i++ {
				put(x+i, ' ', selected)
			}
		} else {
			put(x, displayRune(b), selected)
		}
		x += w
	}

	// The line break of every line but the last is selectable
	if line < doc.LineCount()-1 && doc.InSelection(line, len(text)) {
		put(x, ' ', true)
	}
}
