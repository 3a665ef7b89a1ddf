// internal/render/sheet.go
package render

import (
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/resolver/internal/calc"
	"github.com/bethropolis/resolver/internal/logger"
	"github.com/bethropolis/resolver/internal/text"
	"github.com/bethropolis/resolver/internal/types"
)

// DefaultPalette colours successive clauses of a paragraph.
var DefaultPalette = []text.Attributes{
	{Bold: true, Color: text.ColorYellow},
	{Bold: true, Color: text.ColorMagenta},
	{Bold: true, Color: text.ColorCyan},
	{Bold: true, Color: text.ColorGreen},
	{Bold: true, Color: text.ColorBlue},
}

// Options control a render pass.
type Options struct {
	Fractions bool               // render eighths as fractions
	Constants map[string]float64 // bound in the pass context besides pi and e
	Palette   []text.Attributes  // clause colours; DefaultPalette when empty
	Gutter    bool               // line numbers in Compose
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{Fractions: true, Gutter: true}
}

// Paragraph is one hard line of the buffer and what evaluating it produced.
type Paragraph struct {
	text.Paragraph
	Clauses []calc.Clause
	Results []string // formatted values of the successful clauses
}

// Result joins the paragraph's results the way the result column shows them.
func (p Paragraph) Result() string { return strings.Join(p.Results, "; ") }

// Sheet is the outcome of one render pass over a buffer: the highlight
// spans for the edit column and a result column aligned with its rows.
type Sheet struct {
	Paragraphs []Paragraph
	Spans      []text.Span // absolute byte ranges into the buffer text
	results    []text.Row  // one per visual row of the buffer
	gutter     bool
}

// Pass evaluates every paragraph of t in order against a single context,
// so assignments carry over to the paragraphs below them.
func Pass(t *text.Text, opts Options) *Sheet {
	palette := opts.Palette
	if len(palette) == 0 {
		palette = DefaultPalette
	}

	ctx := calc.NewContext(opts.Constants)
	s := &Sheet{gutter: opts.Gutter}

	for i, para := range t.Paragraphs() {
		p := Paragraph{Paragraph: para, Clauses: calc.Evaluate(ctx, para.Text)}

		var (
			b     strings.Builder
			spans []text.Span
		)
		for _, c := range p.Clauses {
			if !c.OK() {
				logger.DebugTagf("calc", "paragraph %d: %q: %v", i+1, c.Source, c.Err)
				continue
			}
			attrs := palette[len(p.Results)%len(palette)]
			s.Spans = append(s.Spans, text.Span{Range: c.Range.Shift(para.Boff), Attrs: attrs})

			if b.Len() > 0 {
				b.WriteString("; ")
			}
			v := c.Format(opts.Fractions)
			start := b.Len()
			b.WriteString(v)
			spans = append(spans, text.Span{Range: types.Range{Start: start, End: b.Len()}, Attrs: attrs})
			p.Results = append(p.Results, v)
		}

		s.results = append(s.results, text.Row{
			Num:   para.FirstRow,
			Text:  b.String(),
			Chars: utf8.RuneCountInString(b.String()),
			Spans: spans,
		})
		// Keep the column aligned with wrapped paragraphs.
		for r := 1; r < para.Rows; r++ {
			s.results = append(s.results, text.Row{Num: para.FirstRow + r})
		}
		s.Paragraphs = append(s.Paragraphs, p)
	}
	return s
}

// Apply hands the sheet's highlight spans to t.
func (s *Sheet) Apply(t *text.Text) {
	t.SetSpans(s.Spans)
}

// ParagraphAt returns the paragraph drawn on visual row y.
func (s *Sheet) ParagraphAt(y int) (Paragraph, bool) {
	for _, p := range s.Paragraphs {
		if y >= p.FirstRow && y < p.FirstRow+p.Rows {
			return p, true
		}
	}
	return Paragraph{}, false
}

// ResultAt returns the result text of the paragraph on visual row y.
func (s *Sheet) ResultAt(y int) (string, bool) {
	p, ok := s.ParagraphAt(y)
	if !ok || len(p.Results) == 0 {
		return "", false
	}
	return p.Result(), true
}

// Stats counts the clauses of the pass that evaluated and failed.
func (s *Sheet) Stats() (ok, failed int) {
	for _, p := range s.Paragraphs {
		for _, c := range p.Clauses {
			if c.OK() {
				ok++
			} else {
				failed++
			}
		}
	}
	return ok, failed
}

// Results returns the result column, which has one row per visual row of
// the buffer and never wraps.
func (s *Sheet) Results(width int) *Column {
	return &Column{width: max(width, 1), rows: s.results}
}

// Column is a column of pre-split rows.
type Column struct {
	width int
	rows  []text.Row
}

var _ text.Renderable = (*Column)(nil)

func (c *Column) Width() int   { return c.width }
func (c *Column) NumRows() int { return len(c.rows) }

func (c *Column) Row(i int) (text.Row, bool) {
	if i < 0 || i >= len(c.rows) {
		return text.Row{}, false
	}
	return c.rows[i], true
}
