// Package cursor provides cursor navigation and the selection model.
//
// The cursor package handles:
//
//   - A single cursor at a (line, col) Point with boundary-aware movement
//   - Vertical-move column memory, modelled as an explicit navigation Mode
//   - Selections as a variant: NoSelection or ActiveSelection{Anchor}
//   - Ordered ranges and containment queries used for highlighting
//
// Navigation Mode:
//
// A Cursor is either in ModeFree or ModeVertical. The first vertical move
// captures the current column as the target column and enters ModeVertical;
// further vertical moves reuse that target so a column survives passing
// through shorter lines. Horizontal moves and Place return to ModeFree.
// Nothing that merely reads the cursor changes its mode.
//
// Selection Model:
//
// An ActiveSelection holds only the anchor, the fixed end of the selection.
// The live cursor is the moving end. Range orders the two ends so that
// Start <= End regardless of direction:
//
//	sel := cursor.ActiveSelection{Anchor: buffer.Point{Line: 2, Col: 4}}
//	r := sel.Range(cur.Position())
//	r.Contains(buffer.Point{Line: 2, Col: 5})
//
// Thread Safety:
//
// Cursor and the selection types are plain values with no internal locking.
package cursor
