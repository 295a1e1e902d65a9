// Package renderer draws the document onto a terminal backend.
//
// The renderer is responsible for:
//   - The line number gutter, with the cursor line highlighted
//   - Line text, with literal tabs shown as spaces up to the next tab stop
//   - Reverse video for selected cells
//   - The status bar (file name, dirty marker, size, cursor position)
//
// Layout:
//
//	┌──────┬──────────────────────────────────┐
//	│   1  │ first line                       │
//	│   2  │ second line                      │
//	│   ~  │                                  │
//	├──────┴──────────────────────────────────┤
//	│    notes.txt*    24 bytes      2,7      │  ← status bar
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	b, _ := backend.NewTerminal()
//	r := renderer.New(b, renderer.DefaultOptions())
//	r.Render(doc, renderer.Status{Filename: "notes.txt"})
//
// The renderer reads the document only; it never mutates it.
package renderer
