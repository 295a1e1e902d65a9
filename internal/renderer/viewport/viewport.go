// Package viewport tracks which part of the document is on screen.
//
// The viewport is owned by the event loop and is not safe for concurrent use.
package viewport

// Viewport represents the visible portion of the buffer.
type Viewport struct {
	// Position in buffer (first visible line, first visible display column)
	topLine    int
	leftColumn int

	// Size in screen cells
	width  int
	height int

	// Lines to keep between the cursor and the top or bottom edge
	margin int
}

// NewViewport creates a viewport with the given size.
// Width and height are clamped to a minimum of 1 to prevent underflow.
func NewViewport(width, height int) *Viewport {
	v := &Viewport{}
	v.Resize(width, height)
	return v
}

// Width returns the viewport width.
func (v *Viewport) Width() int {
	return v.width
}

// Height returns the viewport height.
func (v *Viewport) Height() int {
	return v.height
}

// TopLine returns the first visible line.
func (v *Viewport) TopLine() int {
	return v.topLine
}

// LeftColumn returns the first visible display column.
func (v *Viewport) LeftColumn() int {
	return v.leftColumn
}

// Resize updates the viewport size.
func (v *Viewport) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	v.width = width
	v.height = height
}

// SetMargin sets the vertical scroll margin. Negative values become zero.
func (v *Viewport) SetMargin(lines int) {
	if lines < 0 {
		lines = 0
	}
	v.margin = lines
}

// Margin returns the configured vertical scroll margin.
func (v *Viewport) Margin() int {
	return v.margin
}

// EffectiveMargin returns the margin reduced so that the cursor line and
// both margins always fit on screen.
func (v *Viewport) EffectiveMargin() int {
	maxMargin := (v.height - 1) / 2
	if v.margin > maxMargin {
		return maxMargin
	}
	return v.margin
}

// ScrollTo sets the first visible line, clamped at zero.
func (v *Viewport) ScrollTo(line int) {
	if line < 0 {
		line = 0
	}
	v.topLine = line
}

// Reveal scrolls minimally so that line, plus up to EffectiveMargin lines
// of context on each side, is visible. lineCount bounds the context below.
// Returns true if scrolling occurred.
func (v *Viewport) Reveal(line, lineCount int) bool {
	margin := v.EffectiveMargin()

	above := line - margin
	if above < 0 {
		above = 0
	}
	below := line + margin
	if below > lineCount-1 {
		below = lineCount - 1
	}

	prev := v.topLine
	if v.topLine > above {
		v.topLine = above
	} else if v.topLine < below-v.height+1 {
		v.topLine = below - v.height + 1
	}
	return v.topLine != prev
}

// RevealColumn scrolls horizontally so that display column col is visible
// in a text area of the given width. Returns true if scrolling occurred.
func (v *Viewport) RevealColumn(col, width int) bool {
	if width < 1 {
		width = 1
	}

	prev := v.leftColumn
	if col < v.leftColumn {
		v.leftColumn = col
	} else if col >= v.leftColumn+width {
		v.leftColumn = col - width + 1
	}
	return v.leftColumn != prev
}

// IsLineVisible returns true if the line is on screen.
func (v *Viewport) IsLineVisible(line int) bool {
	return line >= v.topLine && line < v.topLine+v.height
}

// LineToScreenRow converts a buffer line to a screen row.
// Returns -1 if the line is not visible.
func (v *Viewport) LineToScreenRow(line int) int {
	if !v.IsLineVisible(line) {
		return -1
	}
	return line - v.topLine
}

// ScreenRowToLine converts a screen row to a buffer line.
func (v *Viewport) ScreenRowToLine(row int) int {
	return v.topLine + row
}
