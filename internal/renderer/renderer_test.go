package renderer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dshills/scribe/internal/engine"
	"github.com/dshills/scribe/internal/engine/buffer"
	"github.com/dshills/scribe/internal/renderer/backend"
	"github.com/dshills/scribe/internal/renderer/core"
)

func newTestRenderer(t *testing.T, width, height int, opts Options) (*Renderer, *backend.NullBackend) {
	t.Helper()
	b := backend.NewNullBackend(width, height)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return New(b, opts), b
}

func newDoc(lines ...string) *engine.Engine {
	return engine.New(engine.WithBuffer(buffer.NewBufferFromLines(lines...)))
}

// Text Area Tests

func TestRenderLinesAndGutter(t *testing.T) {
	r, b := newTestRenderer(t, 60, 6, DefaultOptions())
	doc := newDoc("hello", "world")

	r.Render(doc, Status{Filename: "notes.txt"})

	if got := b.Row(0); got != "   1  hello" {
		t.Errorf("row 0: expected %q, got %q", "   1  hello", got)
	}
	if got := b.Row(1); got != "   2  world" {
		t.Errorf("row 1: expected %q, got %q", "   2  world", got)
	}
	for row := 2; row < 5; row++ {
		if got := b.Row(row); got != "   ~" {
			t.Errorf("row %d: expected tilde row, got %q", row, got)
		}
	}

	x, y, visible := b.CursorPosition()
	if !visible || x != 11 || y != 1 {
		t.Errorf("expected cursor at (11, 1), got (%d, %d) visible=%v", x, y, visible)
	}
	if b.ShowCount() != 1 {
		t.Errorf("expected one Show, got %d", b.ShowCount())
	}
}

func TestRenderHighlightsCurrentLineNumber(t *testing.T) {
	r, b := newTestRenderer(t, 40, 5, DefaultOptions())
	doc := newDoc("a", "b")

	r.Render(doc, Status{})

	theme := DefaultTheme()
	if got := b.GetCell(3, 1).Style; !got.Equals(theme.CurrentLineNumber) {
		t.Errorf("current line number should use CurrentLineNumber style, got %+v", got)
	}
	if got := b.GetCell(3, 0).Style; !got.Equals(theme.LineNumber) {
		t.Errorf("other line numbers should use LineNumber style, got %+v", got)
	}
}

func TestRenderGutterGrowsWithLineCount(t *testing.T) {
	lines := make([]string, 12345)
	r, b := newTestRenderer(t, 40, 4, DefaultOptions())
	doc := newDoc(lines...)
	doc.MoveUp(false)

	r.Render(doc, Status{})

	// Three text rows with a margin of one end at line 12345
	if got := b.Row(0); got != "12343" {
		t.Errorf("expected five digit gutter, got %q", got)
	}
	if r.gutterWidth(doc.LineCount()) != 7 {
		t.Errorf("expected gutter width 7, got %d", r.gutterWidth(doc.LineCount()))
	}
}

func TestRenderWithoutLineNumbers(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowLineNumbers = false
	r, b := newTestRenderer(t, 40, 4, opts)

	r.Render(newDoc("abc"), Status{})

	if got := b.Row(0); got != "abc" {
		t.Errorf("expected %q, got %q", "abc", got)
	}
	if got := b.Row(1); got != "~" {
		t.Errorf("expected tilde at column 0, got %q", got)
	}
	if x, _, _ := b.CursorPosition(); x != 3 {
		t.Errorf("expected cursor x 3, got %d", x)
	}
}

func TestRenderTabs(t *testing.T) {
	r, b := newTestRenderer(t, 40, 4, DefaultOptions())

	r.Render(newDoc("\tx", "ab\tc"), Status{})

	if got := b.Row(0); got != "   1      x" {
		t.Errorf("row 0: expected %q, got %q", "   1      x", got)
	}
	if got := b.Row(1); got != "   2  ab  c" {
		t.Errorf("row 1: expected %q, got %q", "   2  ab  c", got)
	}
	// Cursor after "ab\tc" is display column 5
	if x, _, _ := b.CursorPosition(); x != 11 {
		t.Errorf("expected cursor x 11, got %d", x)
	}
}

func TestRenderNonPrintableBytes(t *testing.T) {
	r, b := newTestRenderer(t, 40, 3, DefaultOptions())

	r.Render(newDoc("a\x01b\xc3"), Status{})

	if got := b.Row(0); got != "   1  a?b?" {
		t.Errorf("expected %q, got %q", "   1  a?b?", got)
	}
}

// Selection Tests

func TestRenderSelectionIncludesLineBreak(t *testing.T) {
	r, b := newTestRenderer(t, 40, 5, DefaultOptions())
	doc := newDoc("ab", "cd")
	doc.MoveUp(true) // selects from (0,2) to (1,2)

	r.Render(doc, Status{})

	reversed := func(x, y int) bool {
		return b.GetCell(x, y).Style.Attributes.Has(core.AttrReverse)
	}

	if reversed(6, 0) || reversed(7, 0) {
		t.Error("text before the selection start should not be reversed")
	}
	if !reversed(8, 0) {
		t.Error("the line break cell of line 0 should be reversed")
	}
	if !reversed(6, 1) || !reversed(7, 1) {
		t.Error("selected text on line 1 should be reversed")
	}
	if reversed(8, 1) {
		t.Error("cell after the last line should not be reversed")
	}
}

func TestRenderSelectAllLastLineHasNoBreakCell(t *testing.T) {
	r, b := newTestRenderer(t, 40, 5, DefaultOptions())
	doc := newDoc("ab", "cd")
	doc.SelectAll()

	r.Render(doc, Status{})

	if !b.GetCell(6, 0).Style.Attributes.Has(core.AttrReverse) {
		t.Error("first cell should be selected")
	}
	if b.GetCell(8, 1).Style.Attributes.Has(core.AttrReverse) {
		t.Error("no line break cell is drawn after the last line")
	}
}

// Scrolling Tests

func TestRenderScrollsToCursor(t *testing.T) {
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = fmt.Sprintf("line%d", i)
	}
	r, b := newTestRenderer(t, 40, 11, DefaultOptions())
	doc := newDoc(lines...)

	r.Render(doc, Status{})

	if r.Viewport().TopLine() != 20 {
		t.Errorf("expected top line 20, got %d", r.Viewport().TopLine())
	}
	if got := b.Row(0); got != "  21  line20" {
		t.Errorf("expected %q, got %q", "  21  line20", got)
	}
	if _, y, _ := b.CursorPosition(); y != 9 {
		t.Errorf("expected cursor on row 9, got %d", y)
	}

	for i := 0; i < 29; i++ {
		doc.MoveUp(false)
	}
	r.Render(doc, Status{})
	if r.Viewport().TopLine() != 0 {
		t.Errorf("expected top line 0 after moving up, got %d", r.Viewport().TopLine())
	}
}

func TestRenderHorizontalScroll(t *testing.T) {
	r, b := newTestRenderer(t, 16, 3, DefaultOptions())
	doc := newDoc(strings.Repeat("x", 20) + "END")

	r.Render(doc, Status{})

	// Text area is 10 columns; cursor at display column 23 must be visible
	if r.Viewport().LeftColumn() != 14 {
		t.Errorf("expected left column 14, got %d", r.Viewport().LeftColumn())
	}
	if got := b.Row(0); got != "   1  xxxxxxEND" {
		t.Errorf("expected %q, got %q", "   1  xxxxxxEND", got)
	}
	if x, _, _ := b.CursorPosition(); x != 15 {
		t.Errorf("expected cursor x 15, got %d", x)
	}
}

// Status Bar Tests

func TestRenderStatusBar(t *testing.T) {
	r, b := newTestRenderer(t, 60, 6, DefaultOptions())
	doc := newDoc("hello", "world")

	r.Render(doc, Status{Filename: "notes.txt"})

	want := fmt.Sprintf("%-44s%s", "    notes.txt    11 bytes", "2,6")
	if got := b.Row(5); got != want {
		t.Errorf("status: expected %q, got %q", want, got)
	}
	if !b.GetCell(0, 5).Style.Equals(DefaultTheme().StatusBar) {
		t.Error("status bar should use the StatusBar style")
	}
}

func TestRenderStatusBarDirtyAndMessage(t *testing.T) {
	r, b := newTestRenderer(t, 80, 4, DefaultOptions())
	doc := newDoc("x")
	doc.MarkDirty()

	r.Render(doc, Status{Filename: "a.txt", Message: "save failed"})

	want := fmt.Sprintf("%-64s%s", "    a.txt*    1 bytes    save failed", "1,2")
	if got := b.Row(3); got != want {
		t.Errorf("status: expected %q, got %q", want, got)
	}
}

func TestRenderStatusBarTruncatesLongNames(t *testing.T) {
	r, b := newTestRenderer(t, 30, 3, DefaultOptions())

	r.Render(newDoc(""), Status{Filename: strings.Repeat("n", 40)})

	row := b.Row(2)
	if !strings.Contains(row, "…") {
		t.Errorf("expected truncated file name, got %q", row)
	}
	if !strings.HasSuffix(row, "1,1") {
		t.Errorf("cursor position should still be shown, got %q", row)
	}
}

func TestRenderTinyScreen(t *testing.T) {
	r, b := newTestRenderer(t, 10, 1, DefaultOptions())

	r.Render(newDoc("abc"), Status{Filename: "f"})

	if _, _, visible := b.CursorPosition(); visible {
		t.Error("cursor should be hidden when there is no text area")
	}
}

// Helper Tests

func TestDisplayColumn(t *testing.T) {
	tests := []struct {
		line string
		col  int
		want int
	}{
		{"abc", 0, 0},
		{"abc", 3, 3},
		{"\tx", 1, 4},
		{"\tx", 2, 5},
		{"ab\tc", 3, 4},
		{"abcd\t", 5, 8},
		{"a", 3, 3},
	}

	for _, tt := range tests {
		if got := displayColumn(tt.line, tt.col, 4); got != tt.want {
			t.Errorf("displayColumn(%q, %d) = %d, want %d", tt.line, tt.col, got, tt.want)
		}
	}
}

func TestFormatLineNumber(t *testing.T) {
	if got := formatLineNumber(7, 4); got != "   7  " {
		t.Errorf("expected %q, got %q", "   7  ", got)
	}
	if got := formatLineNumber(12345, 4); got != "12345  " {
		t.Errorf("expected %q, got %q", "12345  ", got)
	}
}

func TestNumberWidth(t *testing.T) {
	if w := numberWidth(9, 4); w != 4 {
		t.Errorf("expected 4, got %d", w)
	}
	if w := numberWidth(100000, 4); w != 6 {
		t.Errorf("expected 6, got %d", w)
	}
}
