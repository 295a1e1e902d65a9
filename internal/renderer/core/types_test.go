package core

import (
	"testing"
)

func TestColorDefault(t *testing.T) {
	c := ColorDefault
	if !c.IsDefault() {
		t.Error("ColorDefault should be default")
	}
}

func TestColorFromRGB(t *testing.T) {
	c := ColorFromRGB(255, 128, 64)

	if c.R != 255 || c.G != 128 || c.B != 64 {
		t.Errorf("expected (255,128,64), got (%d,%d,%d)", c.R, c.G, c.B)
	}
	if c.Indexed {
		t.Error("RGB color should not be indexed")
	}
	if c.IsDefault() {
		t.Error("RGB color should not be default")
	}
}

func TestColorFromIndex(t *testing.T) {
	c := ColorFromIndex(42)

	if c.R != 42 {
		t.Errorf("expected index 42, got %d", c.R)
	}
	if !c.Indexed {
		t.Error("indexed color should have Indexed true")
	}
}

func TestColorEquals(t *testing.T) {
	tests := []struct {
		a, b Color
		want bool
	}{
		{ColorDefault, ColorDefault, true},
		{ColorDefault, ColorBlue, false},
		{ColorBlue, ColorFromIndex(4), true},
		{ColorBlue, ColorCyan, false},
		{ColorFromIndex(4), ColorFromRGB(4, 0, 0), false},
		{ColorFromRGB(1, 2, 3), ColorFromRGB(1, 2, 3), true},
		{Color{R: 7, G: 1, Indexed: true}, Color{R: 7, G: 2, Indexed: true}, true},
	}

	for _, tt := range tests {
		if got := tt.a.Equals(tt.b); got != tt.want {
			t.Errorf("%v.Equals(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestColorString(t *testing.T) {
	if s := ColorDefault.String(); s != "default" {
		t.Errorf("expected default, got %q", s)
	}
	if s := ColorBlue.String(); s != "palette(4)" {
		t.Errorf("expected palette(4), got %q", s)
	}
	if s := ColorFromRGB(255, 0, 16).String(); s != "#ff0010" {
		t.Errorf("expected #ff0010, got %q", s)
	}
}

func TestAttributeHas(t *testing.T) {
	attrs := AttrBold.With(AttrReverse)

	if !attrs.Has(AttrBold) {
		t.Error("should have bold")
	}
	if !attrs.Has(AttrReverse) {
		t.Error("should have reverse")
	}
	if attrs.Has(AttrUnderline) {
		t.Error("should not have underline")
	}
}

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()

	if !s.Foreground.IsDefault() || !s.Background.IsDefault() {
		t.Error("default style should use default colors")
	}
	if s.Attributes != AttrNone {
		t.Errorf("default style should have no attributes, got %d", s.Attributes)
	}
}

func TestStyleBuilders(t *testing.T) {
	s := DefaultStyle().WithForeground(ColorBlue).WithBackground(ColorCyan).Bold().Reverse()

	if !s.Foreground.Equals(ColorBlue) {
		t.Errorf("expected blue foreground, got %v", s.Foreground)
	}
	if !s.Background.Equals(ColorCyan) {
		t.Errorf("expected cyan background, got %v", s.Background)
	}
	if !s.Attributes.Has(AttrBold) || !s.Attributes.Has(AttrReverse) {
		t.Error("expected bold and reverse")
	}
	if s.Equals(DefaultStyle()) {
		t.Error("modified style should differ from default")
	}
}

func TestEmptyCell(t *testing.T) {
	c := EmptyCell()

	if c.Rune != ' ' {
		t.Errorf("empty cell rune should be space, got %q", c.Rune)
	}
	if c.Width != 1 {
		t.Errorf("empty cell width should be 1, got %d", c.Width)
	}
	if !c.Style.Equals(DefaultStyle()) {
		t.Error("empty cell should have default style")
	}
}

func TestNewStyledCell(t *testing.T) {
	style := DefaultStyle().WithForeground(ColorBlue)
	c := NewStyledCell('A', style)

	if c.Rune != 'A' {
		t.Errorf("expected rune 'A', got %q", c.Rune)
	}
	if !c.Style.Foreground.Equals(ColorBlue) {
		t.Error("styled cell should have blue foreground")
	}
	if !c.Equals(NewStyledCell('A', style)) {
		t.Error("identical cells should be equal")
	}
	if c.Equals(NewStyledCell('B', style)) {
		t.Error("cells with different runes should differ")
	}
}

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r     rune
		width int
	}{
		{'A', 1},
		{'0', 1},
		{' ', 1},
		{'中', 2},
		{'あ', 2},
		{'\t', 0},
		{'\n', 0},
		{'\x00', 0},
		{'\x7f', 0},
	}

	for _, tt := range tests {
		got := RuneWidth(tt.r)
		if got != tt.width {
			t.Errorf("RuneWidth(%q) = %d, want %d", tt.r, got, tt.width)
		}
	}
}

func TestStringWidth(t *testing.T) {
	if w := StringWidth("notes.txt"); w != 9 {
		t.Errorf("expected width 9, got %d", w)
	}
	if w := StringWidth("日本.txt"); w != 8 {
		t.Errorf("expected width 8, got %d", w)
	}
}

func TestRectFromSize(t *testing.T) {
	r := RectFromSize(2, 3, 10, 20)

	if r.Top != 2 || r.Left != 3 || r.Bottom != 12 || r.Right != 23 {
		t.Errorf("unexpected rect %+v", r)
	}
	if r.Width() != 20 {
		t.Errorf("expected width 20, got %d", r.Width())
	}
	if r.Height() != 10 {
		t.Errorf("expected height 10, got %d", r.Height())
	}

	empty := ScreenRect{Top: 5, Bottom: 3, Left: 4, Right: 1}
	if empty.Width() != 0 || empty.Height() != 0 {
		t.Error("inverted rect should have zero size")
	}
}
