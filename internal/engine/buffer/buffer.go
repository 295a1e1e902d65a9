package buffer

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrOutOfRange is carried by the panic raised when a line or column index
// falls outside the buffer.
var ErrOutOfRange = errors.New("position out of range")

// Buffer is an ordered, non-empty sequence of byte lines.
type Buffer struct {
	lines [][]byte
}

// NewBuffer creates a buffer holding a single empty line.
func NewBuffer() *Buffer {
	return &Buffer{lines: [][]byte{{}}}
}

// NewBufferFromLines creates a buffer with the given lines.
// No lines yields a single empty line.
func NewBufferFromLines(lines ...string) *Buffer {
	if len(lines) == 0 {
		return NewBuffer()
	}
	b := &Buffer{lines: make([][]byte, len(lines))}
	for i, l := range lines {
		b.lines[i] = []byte(l)
	}
	return b
}

// Read Operations

// LineCount returns the number of lines. It is always at least 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// LineLength returns the length of a line in bytes.
func (b *Buffer) LineLength(line int) int {
	b.checkLine(line)
	return len(b.lines[line])
}

// LastLine returns the index of the last line.
func (b *Buffer) LastLine() int {
	return len(b.lines) - 1
}

// Line returns the content of a line.
func (b *Buffer) Line(line int) string {
	b.checkLine(line)
	return string(b.lines[line])
}

// Slice returns the bytes of a line in [from, to).
func (b *Buffer) Slice(line, from, to int) string {
	b.checkCol(line, from)
	b.checkCol(line, to)
	if from > to {
		panic(fmt.Errorf("%w: slice [%d, %d) on line %d", ErrOutOfRange, from, to, line))
	}
	return string(b.lines[line][from:to])
}

// Lines returns a copy of every line.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = string(l)
	}
	return out
}

// End returns the position after the last byte of the last line.
func (b *Buffer) End() Point {
	last := b.LastLine()
	return Point{Line: last, Col: len(b.lines[last])}
}

// IsEmpty returns true if the buffer is a single empty line.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

// Size returns the byte total of the serialized form: every line plus one
// separator between consecutive lines.
func (b *Buffer) Size() int {
	total := len(b.lines) - 1
	for _, l := range b.lines {
		total += len(l)
	}
	return total
}

// Write Operations

// InsertByte inserts ch at (line, col).
func (b *Buffer) InsertByte(line, col int, ch byte) {
	b.checkCol(line, col)
	l := b.lines[line]
	l = append(l, 0)
	copy(l[col+1:], l[col:])
	l[col] = ch
	b.lines[line] = l
}

// InsertBytes inserts s at (line, col). s must not contain a separator.
func (b *Buffer) InsertBytes(line, col int, s []byte) {
	b.checkCol(line, col)
	if len(s) == 0 {
		return
	}
	l := b.lines[line]
	out := make([]byte, 0, len(l)+len(s))
	out = append(out, l[:col]...)
	out = append(out, s...)
	out = append(out, l[col:]...)
	b.lines[line] = out
}

// DeleteByte removes the byte at (line, col).
// col must be strictly less than the line length.
func (b *Buffer) DeleteByte(line, col int) {
	b.checkLine(line)
	l := b.lines[line]
	if col < 0 || col >= len(l) {
		panic(fmt.Errorf("%w: delete at col %d on line %d of length %d", ErrOutOfRange, col, line, len(l)))
	}
	b.lines[line] = append(l[:col], l[col+1:]...)
}

// SplitLine truncates line to [0, col) and inserts a new line holding
// [col, end) immediately after it.
func (b *Buffer) SplitLine(line, col int) {
	b.checkCol(line, col)
	l := b.lines[line]
	tail := make([]byte, len(l)-col)
	copy(tail, l[col:])
	b.lines[line] = l[:col:col]

	b.lines = append(b.lines, nil)
	copy(b.lines[line+2:], b.lines[line+1:])
	b.lines[line+1] = tail
}

// JoinLine appends line+1 to line and removes line+1.
// line must not be the last line.
func (b *Buffer) JoinLine(line int) {
	b.checkLine(line)
	if line == b.LastLine() {
		panic(fmt.Errorf("%w: join past last line %d", ErrOutOfRange, line))
	}
	b.lines[line] = append(b.lines[line], b.lines[line+1]...)
	b.lines = append(b.lines[:line+1], b.lines[line+2:]...)
}

// SetLine replaces the content of a line.
func (b *Buffer) SetLine(line int, text string) {
	b.checkLine(line)
	b.lines[line] = []byte(text)
}

// RemoveLine deletes a line. The buffer must hold more than one line.
func (b *Buffer) RemoveLine(line int) {
	b.checkLine(line)
	if len(b.lines) == 1 {
		panic(fmt.Errorf("%w: cannot remove the only line", ErrOutOfRange))
	}
	b.lines = append(b.lines[:line], b.lines[line+1:]...)
}

// ReplaceLines replaces the inclusive span [start, end] with a single line.
func (b *Buffer) ReplaceLines(start, end int, merged string) {
	b.checkLine(start)
	b.checkLine(end)
	if start > end {
		panic(fmt.Errorf("%w: span [%d, %d]", ErrOutOfRange, start, end))
	}
	b.lines[start] = []byte(merged)
	b.lines = append(b.lines[:start+1], b.lines[end+1:]...)
}

// Serialization

// Bytes joins the lines with a single '\n' and no trailing separator.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, 0, b.Size())
	for i, l := range b.lines {
		if i > 0 {
			out = append(out, '\n')
		}
		out = append(out, l...)
	}
	return out
}

// String returns the serialized content.
func (b *Buffer) String() string {
	var sb strings.Builder
	sb.Grow(b.Size())
	for i, l := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(l)
	}
	return sb.String()
}

// WriteTo writes the serialized content to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	var total int64
	sep := []byte{'\n'}
	for i, l := range b.lines {
		if i > 0 {
			n, err := w.Write(sep)
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
		n, err := w.Write(l)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (b *Buffer) checkLine(line int) {
	if line < 0 || line >= len(b.lines) {
		panic(fmt.Errorf("%w: line %d of %d", ErrOutOfRange, line, len(b.lines)))
	}
}

func (b *Buffer) checkCol(line, col int) {
	b.checkLine(line)
	if col < 0 || col > len(b.lines[line]) {
		panic(fmt.Errorf("%w: col %d on line %d of length %d", ErrOutOfRange, col, line, len(b.lines[line])))
	}
}
