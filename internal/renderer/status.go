package renderer

import (
	"fmt"

	"github.com/dshills/scribe/internal/renderer/core"
)

// statusIndent is the column where the file name starts.
const statusIndent = 4

// drawStatus draws the status bar on row y.
func (r *Renderer) drawStatus(doc Document, status Status, y, width int) {
	style := r.theme.StatusBar
	r.clearRow(y, width, core.NewStyledCell(' ', style))

	posX := width - r.opts.StatusPositionOffset
	if posX < 0 {
		posX = 0
	}

	left := status.Filename
	if doc.Dirty() {
		left += "*"
	}
	left += fmt.Sprintf("    %d bytes", doc.Size())
	if status.Message != "" {
		left += "    " + status.Message
	}

	// Keep one blank cell before the cursor position
	room := posX - statusIndent - 1
	if room > 0 {
		r.drawText(statusIndent, y, core.Truncate(left, room, "…"), style)
	}

	cur := doc.Cursor()
	r.drawText(posX, y, fmt.Sprintf("%d,%d", cur.Line+1, cur.Col+1), style)
}
