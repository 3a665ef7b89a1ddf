// internal/text/text.go
package text

import (
	"sort"
	"unicode/utf8"

	"github.com/bethropolis/resolver/internal/types"
)

// Text is an editable, word-wrapped buffer. Its rows are recomputed by
// Layout after every mutation. The cursor and selection are codepoint
// indices; byte offsets never leave this package.
type Text struct {
	text   string
	width  int
	lines  []Line
	spans  []Span // absolute byte ranges, sorted by start
	loc    int    // cursor
	sel    types.Range
	hasSel bool
}

// New returns an empty buffer wrapping at width.
func New(width int) *Text {
	return &Text{width: max(width, 1)}
}

// NewWithString returns a buffer holding s.
func NewWithString(width int, s string) *Text {
	t := New(width)
	t.text = s
	t.reflow()
	return t
}

// NewWithAttributed returns a buffer holding a and its highlight spans.
func NewWithAttributed(width int, a Attributed) *Text {
	t := NewWithString(width, a.Text)
	t.SetSpans(a.Spans)
	return t
}

func (t *Text) reflow() {
	t.lines = Layout(t.text, t.width)
}

// String returns the raw text.
func (t *Text) String() string { return t.text }

// Len is the length of the text in codepoints.
func (t *Text) Len() int {
	if n := len(t.lines); n > 0 {
		return t.lines[n-1].Cext
	}
	return 0
}

// Width is the wrap width.
func (t *Text) Width() int { return t.width }

// SetWidth changes the wrap width and reflows.
func (t *Text) SetWidth(width int) {
	width = max(width, 1)
	if width == t.width {
		return
	}
	t.width = width
	t.reflow()
}

// Lines returns the current row metrics.
func (t *Text) Lines() []Line { return t.lines }

// SetText replaces the whole text, keeping the cursor in range.
func (t *Text) SetText(s string) {
	t.text = s
	t.spans = nil
	t.reflow()
	t.loc = t.clamp(t.loc)
	t.ClearSelection()
}

// SetSpans replaces the highlight spans.
func (t *Text) SetSpans(spans []Span) {
	t.spans = sortedSpans(spans)
}

// Spans returns the highlight spans.
func (t *Text) Spans() []Span { return t.spans }

func (t *Text) clamp(idx int) int {
	return min(max(idx, 0), t.Len())
}

// --- Cursor ---

// Loc returns the cursor index.
func (t *Text) Loc() int { return t.loc }

// SetLoc moves the cursor to idx, clamped to the text.
func (t *Text) SetLoc(idx int) types.Pos {
	t.loc = t.clamp(idx)
	return t.Cursor()
}

// Cursor returns the cursor position.
func (t *Text) Cursor() types.Pos { return t.Index(t.loc) }

// --- Selection ---

// Select sets the selection to r. With extend, r is merged with the
// current selection instead of replacing it.
func (t *Text) Select(r types.Range, extend bool) {
	r = types.NewRange(t.clamp(r.Start), t.clamp(r.End))
	if extend && t.hasSel {
		r = t.sel.Union(r)
	}
	t.sel, t.hasSel = r, true
}

// Selection returns the selected range, if any.
func (t *Text) Selection() (types.Range, bool) {
	if !t.hasSel || t.sel.Empty() {
		return types.Range{}, false
	}
	return t.sel, true
}

// ClearSelection drops the selection.
func (t *Text) ClearSelection() {
	t.sel, t.hasSel = types.Range{}, false
}

// Slice returns the text within the codepoint range r.
func (t *Text) Slice(r types.Range) string {
	r = types.NewRange(t.clamp(r.Start), t.clamp(r.End))
	return t.text[t.byteOffset(r.Start):t.byteOffset(r.End)]
}

// --- Offsets ---

// lineWithIndex returns the row whose consumed region holds idx.
func (t *Text) lineWithIndex(idx int) (Line, bool) {
	for _, l := range t.lines {
		if l.Contains(idx) {
			return l, true
		}
	}
	return Line{}, false
}

// offsetForIndex converts a codepoint index to a byte offset.
// ok is false when idx lies past every row.
func (t *Text) offsetForIndex(idx int) (off int, ok bool) {
	l, ok := t.lineWithIndex(idx)
	if !ok {
		return 0, false
	}
	off = l.Boff
	for rem := idx - l.Coff; rem > 0 && off < l.Bext; rem-- {
		_, n := utf8.DecodeRuneInString(t.text[off:])
		off += n
	}
	return off, true
}

// nextOffset is the byte offset just past the last row.
func (t *Text) nextOffset() int {
	if n := len(t.lines); n > 0 {
		return t.lines[n-1].Bext
	}
	return 0
}

// byteOffset is offsetForIndex falling back to the end of the text.
func (t *Text) byteOffset(idx int) int {
	if off, ok := t.offsetForIndex(idx); ok {
		return off
	}
	return t.nextOffset()
}

// indexForOffset converts a byte offset to a codepoint index.
func (t *Text) indexForOffset(off int) int {
	off = min(max(off, 0), len(t.text))
	for _, l := range t.lines {
		if off >= l.Boff && off < l.Bext {
			return l.Coff + utf8.RuneCountInString(t.text[l.Boff:off])
		}
	}
	return t.Len()
}

// IndexForOffset converts a byte offset, such as the start of a highlight
// span, to a codepoint index.
func (t *Text) IndexForOffset(off int) int { return t.indexForOffset(off) }

func sortedSpans(spans []Span) []Span {
	if len(spans) == 0 {
		return nil
	}
	out := append([]Span(nil), spans...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Range.Start < out[j].Range.Start })
	return out
}
