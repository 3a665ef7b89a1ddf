// internal/render/gutter.go
package render

import (
	"fmt"

	"github.com/bethropolis/resolver/internal/text"
)

// GutterWidth is the number of cells the line number gutter takes,
// including the space that separates it from the text.
const GutterWidth = 5

var gutterAttrs = text.Attributes{Bold: true}

// Gutter returns the line number column. A paragraph's number sits on its
// first row; rows that continue a wrapped paragraph stay blank.
func (s *Sheet) Gutter() *Column {
	var rows []text.Row
	for i, p := range s.Paragraphs {
		num := fmt.Sprintf(" %3d", i+1)
		rows = append(rows, text.Row{
			Num:   p.FirstRow,
			Text:  num,
			Chars: len(num),
			Spans: []text.Span{{Range: rangeOf(num), Attrs: gutterAttrs}},
		})
		for r := 1; r < p.Rows; r++ {
			rows = append(rows, text.Row{Num: p.FirstRow + r})
		}
	}
	return &Column{width: GutterWidth - 1, rows: rows}
}
