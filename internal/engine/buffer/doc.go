// Package buffer provides the line store behind the editing engine.
//
// A Buffer is an ordered, never-empty sequence of byte lines. An empty
// document is one empty line, never zero lines. Lines hold raw bytes with no
// line terminator; the separator is implied between consecutive lines and is
// only materialized when the buffer is serialized with Bytes or WriteTo.
//
// The package provides:
//
//   - Structural edits: insert/delete of bytes, split/join/remove of lines
//   - Span replacement used for erasing multi-line selections
//   - Parse, a load-time splitter that keeps bytes verbatim
//   - Size, the byte total including separators
//
// Basic usage:
//
//	buf := buffer.Parse([]byte("hello\nworld"))
//	buf.SplitLine(0, 2)  // ["he", "llo", "world"]
//	buf.JoinLine(0)      // ["hello", "world"]
//	buf.Size()           // 11
//
// Index Contract:
//
// Every line index must satisfy 0 <= line < LineCount() and every column
// 0 <= col <= LineLength(line). Violations are programming errors, not user
// conditions, and cause a panic carrying ErrOutOfRange.
//
// Thread Safety:
//
// Buffer is not safe for concurrent use. It is owned by a single editing
// engine and mutated only from that engine's caller.
package buffer
