// Package engine provides the editing core for Scribe.
//
// The engine owns one document, one cursor, an optional selection and a
// clipboard register, and exposes the edit, navigation, selection and
// clipboard operations a terminal front-end drives from keystrokes.
//
// # Architecture
//
// The engine is built on two sub-packages:
//
//   - buffer: the never-empty sequence of byte lines
//   - cursor: cursor navigation, vertical-move memory and the selection variant
//
// # Invariants
//
// After every public operation the document has at least one line, the
// cursor satisfies 0 <= line < LineCount() and 0 <= col <= LineLength(line),
// and a selection is either absent or anchored at an in-range point.
//
// # Basic Usage
//
//	e := engine.New()
//	e.InsertText("hello\nworld")
//	e.MoveUp(false)
//	e.MoveToLineStart(true) // select "hello"
//	e.Cut()                 // register = "hello"
//	e.Paste()
//
// # Loading Content
//
//	e := engine.New(engine.WithBuffer(buffer.Parse(data)))
//
// WithBuffer leaves the cursor at the end of the document and the dirty flag
// clear. Feed reproduces typing every byte instead, expanding tabs.
//
// # Thread Safety
//
// Engine is not safe for concurrent use. Every operation runs to completion
// on the caller's goroutine; a front-end that receives input on other
// goroutines must funnel operations through a single loop.
package engine
