// internal/tui/drawing.go
package tui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/bethropolis/resolver/internal/core"
	"github.com/bethropolis/resolver/internal/render"
	"github.com/bethropolis/resolver/internal/text"
	"github.com/bethropolis/resolver/internal/theme"
)

// Columns is the horizontal layout of the editor screen: an optional
// gutter, the wrapped edit column and the result column.
type Columns struct {
	Gutter    bool
	EditX     int
	EditWidth int
	ResultX   int
}

// ColumnsFor lays out the screen the way render.Compose lays out text.
func ColumnsFor(editor *core.Editor) Columns {
	c := Columns{
		Gutter:    editor.RenderOptions().Gutter,
		EditWidth: editor.Text().Width(),
	}
	if c.Gutter {
		c.EditX = render.GutterWidth
	}
	c.ResultX = c.EditX + c.EditWidth + len(render.ColumnGap)
	return c
}

// clusterWidth is the number of cells a grapheme takes. Control
// characters and zero-width clusters take one cell, as they count as one
// codepoint in the layout.
func clusterWidth(gr *uniseg.Graphemes) int {
	return max(gr.Width(), 1)
}

// calculateVisualColumn returns the cell offset of codepoint runeIndex in s.
func calculateVisualColumn(s string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	visualWidth := 0
	currentRuneIndex := 0

	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		if currentRuneIndex >= runeIndex {
			break
		}
		visualWidth += clusterWidth(gr)
		currentRuneIndex += len(gr.Runes())
	}
	if currentRuneIndex < runeIndex {
		visualWidth += runeIndex - currentRuneIndex // past the end of the row
	}
	return visualWidth
}

// attrStyle applies highlight attributes on top of base.
func attrStyle(th *theme.Theme, base tcell.Style, a text.Attributes) tcell.Style {
	style := base
	if a.Color != text.ColorDefault {
		style = th.StyleFor(text.Attributes{Color: a.Color})
	}
	if a.Bold {
		style = style.Bold(true)
	}
	return style
}

// overflowMarker ends a row that does not fit its column.
const overflowMarker = '»'

// drawRow draws row from x0 up to limit (exclusive). selected, when set,
// reports whether the row's i-th codepoint is selected. Rows are wrapped
// by codepoints, so wide clusters can run past limit; the cut is marked
// with overflowMarker.
func drawRow(screen tcell.Screen, x0, y, limit int, row text.Row, base tcell.Style, th *theme.Theme, selected func(i int) bool) {
	selectionStyle := th.GetStyle("Selection")
	gr := uniseg.NewGraphemes(row.Text)
	x, lastX := x0, x0
	runeIndex := 0
	for gr.Next() {
		runes := gr.Runes()
		width := clusterWidth(gr)
		if x+width > limit {
			markOverflow(screen, x0, lastX, x, y, limit, th.GetStyle("Gutter"))
			return
		}

		start, _ := gr.Positions()
		style := base
		for _, sp := range row.Spans {
			if start >= sp.Range.Start && start < sp.Range.End {
				style = attrStyle(th, base, sp.Attrs)
				break
			}
		}
		if selected != nil && selected(runeIndex) {
			style = selectionStyle
		}

		mainRune, combining := runes[0], runes[1:]
		if unicode.IsControl(mainRune) {
			mainRune, combining = ' ', nil
		}
		screen.SetContent(x, y, mainRune, combining, style)
		for cw := 1; cw < width; cw++ {
			screen.SetContent(x+cw, y, ' ', nil, style)
		}

		lastX = x
		x += width
		runeIndex += len(runes)
	}
}

// markOverflow puts overflowMarker at x, or over the last drawn cluster
// starting at lastX when the row is already full.
func markOverflow(screen tcell.Screen, x0, lastX, x, y, limit int, style tcell.Style) {
	at := x
	if at >= limit {
		at = lastX
	}
	if at < x0 || at >= limit {
		return
	}
	screen.SetContent(at, y, overflowMarker, nil, style)
	for cx := at + 1; cx < limit; cx++ {
		screen.SetContent(cx, y, ' ', nil, style)
	}
}

// DrawBuffer draws the visible rows of the gutter, the edit column and
// the result column using the active theme.
func DrawBuffer(t *TUI, editor *core.Editor, activeTheme *theme.Theme) {
	width, _ := t.Size()
	viewHeight := editor.ViewHeight()
	if viewHeight <= 0 || width <= 0 {
		return
	}

	defaultStyle := activeTheme.GetStyle("Default")
	gutterStyle := activeTheme.GetStyle("Gutter")
	resultStyle := activeTheme.GetStyle("Result")

	cols := ColumnsFor(editor)
	txt := editor.Text()
	lines := txt.Lines()
	sheet := editor.Sheet()
	gutter := sheet.Gutter()
	results := sheet.Results(max(width-cols.ResultX, 1))
	sel, hasSelection := txt.Selection()

	for screenY := 0; screenY < viewHeight; screenY++ {
		rowIdx := screenY + editor.ViewportY

		for x := 0; x < width; x++ {
			t.screen.SetContent(x, screenY, ' ', nil, defaultStyle)
		}

		if cols.Gutter {
			if row, ok := gutter.Row(rowIdx); ok {
				drawRow(t.screen, 0, screenY, min(cols.EditX, width), row, gutterStyle, activeTheme, nil)
			}
		}

		row, ok := txt.Row(rowIdx)
		if !ok {
			continue
		}
		var selected func(int) bool
		if hasSelection {
			coff := lines[rowIdx].Coff
			selected = func(i int) bool {
				idx := coff + i
				return idx >= sel.Start && idx < sel.End
			}
		}
		drawRow(t.screen, cols.EditX, screenY, min(cols.ResultX-1, width), row, defaultStyle, activeTheme, selected)

		if res, ok := results.Row(rowIdx); ok {
			drawRow(t.screen, cols.ResultX, screenY, width, res, resultStyle, activeTheme, nil)
		}
	}
}

// DrawCursor positions the terminal cursor using visual width calculations.
func DrawCursor(t *TUI, editor *core.Editor) {
	cursor := editor.GetCursor()
	cols := ColumnsFor(editor)
	width, _ := t.Size()

	row, _ := editor.Text().Row(cursor.Y)
	screenX := cols.EditX + calculateVisualColumn(row.Text, cursor.X)
	screenY := cursor.Y - editor.ViewportY

	if screenX >= width || screenY < 0 || screenY >= editor.ViewHeight() {
		t.screen.HideCursor()
		return
	}
	t.screen.ShowCursor(screenX, screenY)
}
