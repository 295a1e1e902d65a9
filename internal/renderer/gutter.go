package renderer

import (
	"strconv"
	"strings"
)

// gutterSpacing separates line numbers from text.
const gutterSpacing = 2

// gutterWidth returns the total gutter width including spacing, or zero
// when line numbers are hidden.
func (r *Renderer) gutterWidth(lineCount int) int {
	if !r.opts.ShowLineNumbers {
		return 0
	}
	return numberWidth(lineCount, r.opts.MinGutterWidth) + gutterSpacing
}

// numberWidth returns the digits reserved for line numbers.
func numberWidth(lineCount, minWidth int) int {
	digits := len(strconv.Itoa(lineCount))
	if digits < minWidth {
		return minWidth
	}
	return digits
}

func (r *Renderer) drawGutter(row, line, gutter int, current bool) {
	if gutter == 0 {
		return
	}
	style := r.theme.LineNumber
	if current {
		style = r.theme.CurrentLineNumber
	}
	r.drawText(0, row, formatLineNumber(line+1, gutter-gutterSpacing), style)
}

// formatLineNumber right-aligns n in width columns and appends the spacing.
func formatLineNumber(n, width int) string {
	num := strconv.Itoa(n)
	if pad := width - len(num); pad > 0 {
		num = strings.Repeat(" ", pad) + num
	}
	return num + strings.Repeat(" ", gutterSpacing)
}

// drawTilde marks a row past the end of the document.
func (r *Renderer) drawTilde(row, gutter int) {
	x := 0
	if gutter > 0 {
		x = gutter - gutterSpacing - 1
	}
	r.drawText(x, row, "~", r.theme.Tilde)
}
