package renderer

import (
	"github.com/dshills/scribe/internal/engine/buffer"
	"github.com/dshills/scribe/internal/renderer/backend"
	"github.com/dshills/scribe/internal/renderer/core"
	"github.com/dshills/scribe/internal/renderer/viewport"
)

// Document provides read access to the text being edited.
type Document interface {
	// LineCount returns the number of lines, always at least one.
	LineCount() int

	// Line returns the bytes of a line (0-indexed) as a string.
	Line(line int) string

	// Cursor returns the cursor position.
	Cursor() buffer.Point

	// InSelection reports whether the cell at (line, col) is selected.
	// col may equal the line length, meaning the line break.
	InSelection(line, col int) bool

	// Dirty reports unsaved changes.
	Dirty() bool

	// Size returns the document size in bytes.
	Size() int
}

// Status carries the status bar text that does not come from the document.
type Status struct {
	Filename string
	Message  string
}

// Options configures the renderer.
type Options struct {
	ShowLineNumbers      bool // Show line numbers in gutter
	MinGutterWidth       int  // Minimum digits reserved for line numbers
	TabWidth             int  // Tab stop interval for literal tabs
	ScrollMargin         int  // Lines kept between cursor and top/bottom edge
	StatusPositionOffset int  // Distance of the cursor position from the right edge
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		ShowLineNumbers:      true,
		MinGutterWidth:       4,
		TabWidth:             4,
		ScrollMargin:         4,
		StatusPositionOffset: 16,
	}
}

// Renderer draws a Document onto a backend.
type Renderer struct {
	backend  backend.Backend
	viewport *viewport.Viewport
	opts     Options
	theme    Theme
}

// New creates a renderer drawing to b.
func New(b backend.Backend, opts Options) *Renderer {
	if opts.TabWidth < 1 {
		opts.TabWidth = 4
	}
	if opts.StatusPositionOffset < 1 {
		opts.StatusPositionOffset = 16
	}

	w, h := b.Size()
	vp := viewport.NewViewport(w, h-1)
	vp.SetMargin(opts.ScrollMargin)

	return &Renderer{
		backend:  b,
		viewport: vp,
		opts:     opts,
		theme:    DefaultTheme(),
	}
}

// Viewport returns the renderer's viewport.
func (r *Renderer) Viewport() *viewport.Viewport {
	return r.viewport
}

// Options returns the renderer options.
func (r *Renderer) Options() Options {
	return r.opts
}

// Render draws the whole screen and flushes it to the backend.
func (r *Renderer) Render(doc Document, status Status) {
	width, height := r.backend.Size()
	if width < 1 || height < 1 {
		return
	}

	textHeight := height - 1
	gutter := r.gutterWidth(doc.LineCount())
	textWidth := width - gutter
	if textWidth < 1 {
		textWidth = 1
	}

	cur := doc.Cursor()
	cursorCol := displayColumn(doc.Line(cur.Line), cur.Col, r.opts.TabWidth)

	r.viewport.Resize(textWidth, textHeight)
	r.viewport.Reveal(cur.Line, doc.LineCount())
	r.viewport.RevealColumn(cursorCol, textWidth)

	for row := 0; row < textHeight; row++ {
		line := r.viewport.ScreenRowToLine(row)
		r.clearRow(row, width, core.EmptyCell())
		if line < doc.LineCount() {
			r.drawGutter(row, line, gutter, line == cur.Line)
			r.drawLine(doc, row, line, gutter, width)
		} else {
			r.drawTilde(row, gutter)
		}
	}

	r.drawStatus(doc, status, height-1, width)

	screenRow := r.viewport.LineToScreenRow(cur.Line)
	if textHeight > 0 && screenRow >= 0 {
		r.backend.ShowCursor(gutter+cursorCol-r.viewport.LeftColumn(), screenRow)
	} else {
		r.backend.HideCursor()
	}

	r.backend.Show()
}

func (r *Renderer) clearRow(row, width int, cell core.Cell) {
	r.backend.Fill(core.RectFromSize(row, 0, 1, width), cell)
}

// drawText writes s starting at column x and returns the column after it.
func (r *Renderer) drawText(x, y int, s string, style core.Style) int {
	for _, ch := range s {
		cell := core.NewStyledCell(ch, style)
		r.backend.SetCell(x, y, cell)
		if cell.Width > 0 {
			x += cell.Width
		}
	}
	return x
}
