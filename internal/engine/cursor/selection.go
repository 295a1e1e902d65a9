package cursor

import "fmt"

// Selection is either NoSelection or ActiveSelection.
type Selection interface {
	fmt.Stringer
	isSelection()
}

// NoSelection means no text is selected.
type NoSelection struct{}

func (NoSelection) isSelection() {}

// String returns "NoSelection".
func (NoSelection) String() string {
	return "NoSelection"
}

// ActiveSelection is a selection anchored at Anchor. The other end is the
// live cursor, which is not stored here.
type ActiveSelection struct {
	Anchor Point
}

func (ActiveSelection) isSelection() {}

// String returns a string representation of the selection.
func (s ActiveSelection) String() string {
	return fmt.Sprintf("Selection(anchor %s)", s.Anchor)
}

// Range returns the ordered range between the anchor and head.
func (s ActiveSelection) Range(head Point) Range {
	return NewRange(s.Anchor, head)
}

// IsActive reports whether sel is an ActiveSelection.
func IsActive(sel Selection) bool {
	_, ok := sel.(ActiveSelection)
	return ok
}

// Range is an ordered pair of points with Start <= End.
type Range struct {
	Start Point
	End   Point
}

// NewRange orders a and b into a Range.
func NewRange(a, b Point) Range {
	if b.Before(a) {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

// IsEmpty returns true if the range covers nothing.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// IsMultiLine returns true if the range crosses at least one line break.
func (r Range) IsMultiLine() bool {
	return r.Start.Line != r.End.Line
}

// Contains returns true if p falls within [Start, End).
func (r Range) Contains(p Point) bool {
	return !p.Before(r.Start) && p.Before(r.End)
}

// String returns a string representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("Range[%s-%s)", r.Start, r.End)
}
