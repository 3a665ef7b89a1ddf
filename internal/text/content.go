// internal/text/content.go
package text

// Content is read-only laid out text, used for columns the user does not edit.
type Content struct {
	text  string
	width int
	lines []Line
	spans []Span
}

// NewContent lays out s at width.
func NewContent(width int, s string) *Content {
	width = max(width, 1)
	return &Content{text: s, width: width, lines: Layout(s, width)}
}

// NewContentAttributed lays out an attributed text at width.
func NewContentAttributed(width int, a Attributed) *Content {
	c := NewContent(width, a.Text)
	c.spans = sortedSpans(a.Spans)
	return c
}

func (c *Content) String() string { return c.text }

// Width is the wrap width.
func (c *Content) Width() int { return c.width }

// NumRows is the number of visual rows.
func (c *Content) NumRows() int { return len(c.lines) }

// Row returns visual row i.
func (c *Content) Row(i int) (Row, bool) { return rowAt(c.text, c.lines, c.spans, i) }
