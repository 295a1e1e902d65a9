package buffer

import (
	"bytes"
	"io"
)

// Parse splits data on '\n' into a buffer. Bytes are kept verbatim, so a tab
// stays a tab and a '\r' stays part of its line. A trailing separator yields a
// final empty line, which makes Parse the exact inverse of Bytes.
func Parse(data []byte) *Buffer {
	parts := bytes.Split(data, []byte{'\n'})
	b := &Buffer{lines: make([][]byte, len(parts))}
	for i, p := range parts {
		l := make([]byte, len(p))
		copy(l, p)
		b.lines[i] = l
	}
	return b
}

// ReadFrom reads everything from r and parses it.
func ReadFrom(r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data), nil
}
