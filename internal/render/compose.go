// internal/render/compose.go
package render

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/bethropolis/resolver/internal/text"
	"github.com/bethropolis/resolver/internal/types"
)

// ColumnGap separates the edit column from the result column.
const ColumnGap = "  "

func rangeOf(s string) types.Range { return types.Range{Start: 0, End: len(s)} }

// Compose lays the gutter, the edit column and the result column side by
// side as plain lines, encoding attributes in the given mode. It is the
// headless counterpart of the TUI drawing and pads cells by display width.
func (s *Sheet) Compose(edit text.Renderable, mode text.Mode) string {
	results := s.Results(edit.Width())
	gutter := s.Gutter()

	n := max(edit.NumRows(), results.NumRows())
	var b strings.Builder
	for i := 0; i < n; i++ {
		var line strings.Builder
		if s.gutter {
			writeCell(&line, gutter, i, gutter.Width(), mode)
			line.WriteByte(' ')
		}
		writeCell(&line, edit, i, edit.Width(), mode)
		line.WriteString(ColumnGap)
		writeCell(&line, results, i, 0, mode)

		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// writeCell writes row i of r padded with spaces to width cells.
func writeCell(b *strings.Builder, r text.Renderable, i, width int, mode text.Mode) {
	row, ok := r.Row(i)
	if ok {
		b.WriteString(text.Render(row.Text, row.Spans, mode))
	}
	if pad := width - uniseg.StringWidth(row.Text); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
}
