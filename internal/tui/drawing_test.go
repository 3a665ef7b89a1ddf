package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/resolver/internal/buffer"
	"github.com/bethropolis/resolver/internal/core"
	"github.com/bethropolis/resolver/internal/theme"
)

func newTestTUI(t *testing.T, width, height int) (*TUI, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	tu, err := NewWithScreen(sim, tcell.StyleDefault)
	require.NoError(t, err)
	t.Cleanup(tu.Close)
	sim.SetSize(width, height)
	return tu, sim
}

func newTestEditor(content string, width, height int) *core.Editor {
	opts := core.DefaultOptions()
	opts.Width = width
	e := core.NewEditor(buffer.NewFile(), opts)
	e.SetContent(content)
	e.SetViewSize(width, height)
	return e
}

func screenRow(sim tcell.SimulationScreen, y int) string {
	cells, w, _ := sim.GetContents()
	var b strings.Builder
	for _, c := range cells[y*w : (y+1)*w] {
		if len(c.Runes) == 0 {
			b.WriteByte(' ')
			continue
		}
		b.WriteString(string(c.Runes))
	}
	return strings.TrimRight(b.String(), " ")
}

func cellStyle(sim tcell.SimulationScreen, x, y int) tcell.Style {
	cells, w, _ := sim.GetContents()
	return cells[y*w+x].Style
}

func TestDrawBuffer(t *testing.T) {
	tu, sim := newTestTUI(t, 40, 6)
	editor := newTestEditor("a = 1\nc = 2\n12 tsp in cup", 14, 6)
	th := &theme.ResolverDark

	DrawBuffer(tu, editor, th)
	DrawCursor(tu, editor)
	tu.Show()

	assert.Equal(t, "   1 a = 1           1", screenRow(sim, 0))
	assert.Equal(t, "   2 c = 2           2", screenRow(sim, 1))
	assert.Equal(t, "   3 12 tsp in cup   1/4 cup", screenRow(sim, 2))
	assert.Equal(t, "", screenRow(sim, 3))

	assert.Equal(t, th.Styles["color.yellow"].Bold(true), cellStyle(sim, 5, 0))
	assert.Equal(t, th.Styles["color.yellow"].Bold(true), cellStyle(sim, 21, 0))
	assert.Equal(t, th.Styles["Gutter"].Bold(true), cellStyle(sim, 3, 0))
	assert.Equal(t, th.Styles["Default"], cellStyle(sim, 12, 0))

	x, y, visible := sim.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 18, x)
	assert.Equal(t, 2, y)
}

func cellRune(sim tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := sim.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func TestDrawBuffer_WideRowOverflow(t *testing.T) {
	th := &theme.ResolverDark

	tests := []struct {
		name    string
		content string
		width   int
		marker  int // -1 when the row fits
	}{
		{"fits", "日本語", 6, -1},
		{"cut before limit", "日本語日", 6, 11},
		{"cut on full row", "日本語日", 5, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tu, sim := newTestTUI(t, 40, 3)
			editor := newTestEditor(tt.content, tt.width, 3)
			cols := ColumnsFor(editor)

			DrawBuffer(tu, editor, th)
			tu.Show()

			assert.Equal(t, '日', cellRune(sim, cols.EditX, 0))
			for x := cols.EditX; x < cols.ResultX; x++ {
				if x == tt.marker {
					assert.Equal(t, overflowMarker, cellRune(sim, x, 0))
					assert.Equal(t, th.Styles["Gutter"], cellStyle(sim, x, 0))
					continue
				}
				assert.NotEqual(t, overflowMarker, cellRune(sim, x, 0), "cell %d", x)
			}
			if tt.marker >= 0 {
				for x := tt.marker + 1; x < cols.ResultX; x++ {
					assert.Equal(t, ' ', cellRune(sim, x, 0), "cell %d", x)
				}
			}
		})
	}
}

func TestDrawBuffer_Selection(t *testing.T) {
	tu, sim := newTestTUI(t, 40, 4)
	editor := newTestEditor("ab", 14, 4)
	editor.SelectAll()
	th := &theme.ResolverDark

	DrawBuffer(tu, editor, th)
	tu.Show()

	assert.Equal(t, th.Styles["Selection"], cellStyle(sim, 5, 0))
	assert.Equal(t, th.Styles["Selection"], cellStyle(sim, 6, 0))
	assert.Equal(t, th.Styles["Default"], cellStyle(sim, 7, 0))
}

func TestDrawBuffer_Scrolled(t *testing.T) {
	tu, sim := newTestTUI(t, 30, 3)
	editor := newTestEditor("1\n2\n3\n4\n5", 10, 3)
	require.Equal(t, 2, editor.ViewHeight())

	DrawBuffer(tu, editor, &theme.ResolverDark)
	DrawCursor(tu, editor)
	tu.Show()

	top := editor.ViewportY
	assert.Equal(t, 3, top)
	assert.True(t, strings.HasPrefix(screenRow(sim, 0), "   4 4"))
	assert.True(t, strings.HasPrefix(screenRow(sim, 1), "   5 5"))

	_, y, visible := sim.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 1, y)
}

func TestDrawSplash(t *testing.T) {
	tu, sim := newTestTUI(t, 60, 7)
	editor := newTestEditor("", 30, 7)

	DrawBuffer(tu, editor, &theme.ResolverDark)
	DrawSplash(tu, editor.ViewHeight(), &theme.ResolverDark, "9.9.9")
	tu.Show()

	assert.Equal(t, "   1", screenRow(sim, 0))
	assert.Equal(t, "~", screenRow(sim, 1))
	assert.Equal(t, "~ RESOLVER. The 'Soulver' in your terminal.", screenRow(sim, 2))
	assert.Equal(t, "~ v9.9.9", screenRow(sim, 3))
	assert.Equal(t, "~", screenRow(sim, 5))
	assert.Equal(t, "", screenRow(sim, 6))
}

func TestSplashLines(t *testing.T) {
	lines := SplashLines(5, "1.2.3")
	assert.Equal(t, []string{"~", "~", "~ RESOLVER. The 'Soulver' in your terminal.", "~ v1.2.3", "~"}, lines)
	assert.Empty(t, SplashLines(0, "1"))
}

func TestCalculateVisualColumn(t *testing.T) {
	tests := []struct {
		s    string
		idx  int
		want int
	}{
		{"abc", 0, 0},
		{"abc", 2, 2},
		{"🎉ab", 1, 2},
		{"🎉ab", 3, 4},
		{"e\u0301x", 2, 1},
		{"a\tb", 2, 2},
		{"ab", 4, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, calculateVisualColumn(tt.s, tt.idx), "%q@%d", tt.s, tt.idx)
	}
}

func TestColumnsFor(t *testing.T) {
	editor := newTestEditor("", 20, 5)
	assert.Equal(t, Columns{Gutter: true, EditX: 5, EditWidth: 20, ResultX: 27}, ColumnsFor(editor))

	opts := editor.RenderOptions()
	opts.Gutter = false
	editor.SetRenderOptions(opts)
	assert.Equal(t, Columns{EditWidth: 20, ResultX: 22}, ColumnsFor(editor))
}
