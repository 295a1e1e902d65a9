package buffer

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func assertLines(t *testing.T, b *Buffer, want ...string) {
	t.Helper()
	if got := b.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected lines %q, got %q", want, got)
	}
}

func expectOutOfRange(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrOutOfRange) {
			t.Errorf("expected ErrOutOfRange panic, got %v", r)
		}
	}()
	fn()
}

func TestNewBuffer(t *testing.T) {
	b := NewBuffer()

	if !b.IsEmpty() {
		t.Error("new buffer should be empty")
	}
	if b.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", b.LineCount())
	}
	if b.Size() != 0 {
		t.Errorf("expected size 0, got %d", b.Size())
	}
}

func TestNewBufferFromLines(t *testing.T) {
	b := NewBufferFromLines("ab", "", "cde")

	assertLines(t, b, "ab", "", "cde")
	if b.LineLength(2) != 3 {
		t.Errorf("expected length 3, got %d", b.LineLength(2))
	}
	if b.End() != (Point{Line: 2, Col: 3}) {
		t.Errorf("expected end (2:3), got %v", b.End())
	}

	empty := NewBufferFromLines()
	if !empty.IsEmpty() {
		t.Error("no lines should produce an empty buffer")
	}
}

func TestBufferSize(t *testing.T) {
	tests := []struct {
		lines []string
		want  int
	}{
		{[]string{""}, 0},
		{[]string{"abc"}, 3},
		{[]string{"abc", ""}, 4},
		{[]string{"a", "b", "c"}, 5},
	}

	for _, tt := range tests {
		b := NewBufferFromLines(tt.lines...)
		if got := b.Size(); got != tt.want {
			t.Errorf("Size(%q) = %d, want %d", tt.lines, got, tt.want)
		}
		if got := len(b.Bytes()); got != tt.want {
			t.Errorf("len(Bytes(%q)) = %d, want %d", tt.lines, got, tt.want)
		}
	}
}

// Structural Edit Tests

func TestInsertByte(t *testing.T) {
	b := NewBufferFromLines("ac")

	b.InsertByte(0, 1, 'b')
	b.InsertByte(0, 3, 'd')
	b.InsertByte(0, 0, '_')

	assertLines(t, b, "_abcd")
}

func TestInsertBytes(t *testing.T) {
	b := NewBufferFromLines("ab")

	b.InsertBytes(0, 1, []byte("  "))
	b.InsertBytes(0, 0, nil)

	assertLines(t, b, "a  b")
}

func TestDeleteByte(t *testing.T) {
	b := NewBufferFromLines("abc")

	b.DeleteByte(0, 1)
	assertLines(t, b, "ac")

	expectOutOfRange(t, func() { b.DeleteByte(0, 2) })
}

func TestSplitLine(t *testing.T) {
	b := NewBufferFromLines("abc", "xyz")

	b.SplitLine(0, 1)
	assertLines(t, b, "a", "bc", "xyz")

	b.SplitLine(2, 3)
	assertLines(t, b, "a", "bc", "xyz", "")

	b.SplitLine(0, 0)
	assertLines(t, b, "", "a", "bc", "xyz", "")
}

func TestSplitLineDoesNotAlias(t *testing.T) {
	b := NewBufferFromLines("abcd")

	b.SplitLine(0, 2)
	b.InsertByte(0, 2, 'X')

	assertLines(t, b, "abX", "cd")
}

func TestJoinLine(t *testing.T) {
	b := NewBufferFromLines("ab", "cd", "ef")

	b.JoinLine(0)
	assertLines(t, b, "abcd", "ef")

	expectOutOfRange(t, func() { b.JoinLine(1) })
}

func TestRemoveLine(t *testing.T) {
	b := NewBufferFromLines("a", "b", "c")

	b.RemoveLine(1)
	assertLines(t, b, "a", "c")

	b.RemoveLine(1)
	assertLines(t, b, "a")

	expectOutOfRange(t, func() { b.RemoveLine(0) })
}

func TestReplaceLines(t *testing.T) {
	b := NewBufferFromLines("one", "two", "three", "four")

	b.ReplaceLines(1, 2, "t-e")
	assertLines(t, b, "one", "t-e", "four")

	b.ReplaceLines(0, 0, "1")
	assertLines(t, b, "1", "t-e", "four")

	expectOutOfRange(t, func() { b.ReplaceLines(2, 1, "") })
}

func TestSetLineAndSlice(t *testing.T) {
	b := NewBufferFromLines("hello")

	if got := b.Slice(0, 1, 4); got != "ell" {
		t.Errorf("expected %q, got %q", "ell", got)
	}
	b.SetLine(0, "")
	assertLines(t, b, "")
}

func TestOutOfRangePanics(t *testing.T) {
	b := NewBufferFromLines("abc")

	expectOutOfRange(t, func() { b.Line(1) })
	expectOutOfRange(t, func() { b.LineLength(-1) })
	expectOutOfRange(t, func() { b.InsertByte(0, 4, 'x') })
	expectOutOfRange(t, func() { b.SplitLine(0, 5) })
}

// Serialization Tests

func TestBytesHasNoTrailingSeparator(t *testing.T) {
	b := NewBufferFromLines("a", "b")

	if got := string(b.Bytes()); got != "a\nb" {
		t.Errorf("expected %q, got %q", "a\nb", got)
	}
	if got := b.String(); got != "a\nb" {
		t.Errorf("expected %q, got %q", "a\nb", got)
	}
}

func TestWriteTo(t *testing.T) {
	b := NewBufferFromLines("first", "", "third")

	var out bytes.Buffer
	n, err := b.WriteTo(&out)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != int64(b.Size()) {
		t.Errorf("expected %d bytes written, got %d", b.Size(), n)
	}
	if out.String() != "first\n\nthird" {
		t.Errorf("unexpected output %q", out.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteToPropagatesError(t *testing.T) {
	b := NewBufferFromLines("a", "b")

	if _, err := b.WriteTo(failingWriter{}); err == nil {
		t.Error("expected error from failing writer")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{""}},
		{"abc", []string{"abc"}},
		{"abc\n", []string{"abc", ""}},
		{"a\nb\nc", []string{"a", "b", "c"}},
		{"\n\n", []string{"", "", ""}},
		{"tab\there", []string{"tab\there"}},
		{"cr\r\nlf", []string{"cr\r", "lf"}},
	}

	for _, tt := range tests {
		b := Parse([]byte(tt.in))
		if got := b.Lines(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if got := string(b.Bytes()); got != tt.in {
			t.Errorf("Parse(%q).Bytes() = %q", tt.in, got)
		}
	}
}

func TestReadFrom(t *testing.T) {
	b, err := ReadFrom(strings.NewReader("x\ny"))
	if err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}
	assertLines(t, b, "x", "y")
}

func TestPointCompare(t *testing.T) {
	a := Point{Line: 1, Col: 5}
	b := Point{Line: 2, Col: 0}
	c := Point{Line: 1, Col: 5}

	if a.Compare(b) != -1 || !a.Before(b) {
		t.Error("a should be before b")
	}
	if b.Compare(a) != 1 || !b.After(a) {
		t.Error("b should be after a")
	}
	if a.Compare(c) != 0 {
		t.Error("a should equal c")
	}
	if !(Point{}).IsZero() {
		t.Error("zero point should report IsZero")
	}
	if a.String() != "(1:5)" {
		t.Errorf("unexpected String %q", a.String())
	}
}
