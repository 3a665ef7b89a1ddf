// internal/text/renderable.go
package text

import "strings"

// Row is one visual row ready for drawing.
type Row struct {
	Num   int
	Text  string // displayed text
	Chars int    // displayed width in codepoints
	Spans []Span // highlight spans relative to Text
}

// Renderable is anything laid out into rows that a renderer can draw.
type Renderable interface {
	Width() int
	NumRows() int
	Row(i int) (Row, bool)
}

var (
	_ Renderable = (*Text)(nil)
	_ Renderable = (*Content)(nil)
)

func rowAt(s string, lines []Line, spans []Span, i int) (Row, bool) {
	if i < 0 || i >= len(lines) {
		return Row{}, false
	}
	l := lines[i]
	return Row{
		Num:   l.Num,
		Text:  l.Text(s),
		Chars: l.Chars,
		Spans: clipSpans(spans, l.Boff, l.Boff+l.Bytes),
	}, true
}

// RenderRows encodes every row of r in the given mode, one per line.
func RenderRows(r Renderable, mode Mode) string {
	var b strings.Builder
	for i := 0; i < r.NumRows(); i++ {
		row, _ := r.Row(i)
		b.WriteString(Render(row.Text, row.Spans, mode))
		b.WriteByte('\n')
	}
	return b.String()
}

// NumRows is the number of visual rows.
func (t *Text) NumRows() int { return len(t.lines) }

// Row returns visual row i.
func (t *Text) Row(i int) (Row, bool) { return rowAt(t.text, t.lines, t.spans, i) }

// Paragraph is the text between hard breaks and the rows it occupies.
type Paragraph struct {
	Text     string // without the trailing newline
	Boff     int    // byte offset of Text in the buffer
	FirstRow int
	Rows     int
}

// Paragraphs groups the rows into paragraphs.
func (t *Text) Paragraphs() []Paragraph {
	var out []Paragraph
	first := 0
	for i, l := range t.lines {
		if !l.Hard && i < len(t.lines)-1 {
			continue
		}
		start := t.lines[first].Boff
		end := l.Bext
		if l.Hard {
			end-- // newline
		}
		out = append(out, Paragraph{
			Text:     t.text[start:max(start, end)],
			Boff:     start,
			FirstRow: first,
			Rows:     i - first + 1,
		})
		first = i + 1
	}
	return out
}
