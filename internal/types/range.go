// internal/types/range.go
package types

import "fmt"

// Range is a half-open interval [Start, End).
// Its unit depends on the owner: codepoints for cursor selections,
// bytes for token and highlight spans.
type Range struct {
	Start int
	End   int
}

// NewRange returns the range spanning a and b regardless of their order.
func NewRange(a, b int) Range {
	if a > b {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

func (r Range) Empty() bool { return r.Len() == 0 }

func (r Range) Contains(i int) bool { return i >= r.Start && i < r.End }

// Union returns the smallest range covering both r and o.
func (r Range) Union(o Range) Range {
	return Range{Start: min(r.Start, o.Start), End: max(r.End, o.End)}
}

// Shift moves both ends of the range by n.
func (r Range) Shift(n int) Range {
	return Range{Start: r.Start + n, End: r.End + n}
}

func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}
