// internal/text/navigate.go
package text

import (
	"github.com/bethropolis/resolver/internal/types"
)

// pos maps idx within the row to a position, capping the column at width.
func (l Line) pos(width, idx int) types.Pos {
	return types.Pos{Index: idx, X: min(idx-l.Coff, width), Y: l.Num}
}

// Index maps a codepoint index to its visual position. idx is clamped to
// the text. An index past the last row, as after a trailing newline,
// maps to the start of the row that would follow.
func (t *Text) Index(idx int) types.Pos {
	n := t.Len()
	if n == 0 || idx <= 0 {
		return types.ZeroPos
	}
	idx = min(idx, n)
	if l, ok := t.lineWithIndex(idx); ok {
		return l.pos(t.width, idx)
	}
	last := t.lines[len(t.lines)-1]
	if last.Hard || last.Width()+1 > t.width {
		return types.Pos{Index: idx, X: 0, Y: len(t.lines)}
	}
	return types.Pos{Index: idx, X: last.Width(), Y: last.Num}
}

// Up moves to the same column on the previous row, or to that row's end
// when it is narrower.
func (t *Text) Up(idx int) types.Pos {
	pos := t.Index(idx)
	if pos.Y == 0 {
		return types.ZeroPos
	}
	l := t.lines[pos.Y-1]
	if l.Chars > pos.X {
		return types.Pos{Index: l.Coff + pos.X, X: pos.X, Y: l.Num}
	}
	return types.Pos{Index: l.Right(), X: l.Chars, Y: l.Num}
}

// Down moves to the same column on the next row, or to that row's end
// when it is narrower. On the last row it moves to the end of the text.
func (t *Text) Down(idx int) types.Pos {
	nl := len(t.lines)
	if nl == 0 {
		return types.ZeroPos
	}
	pos := t.Index(idx)
	y := min(nl-1, pos.Y)
	n := y + 1
	if n >= nl {
		l := t.lines[y]
		if l.Hard {
			return types.Pos{Index: l.Cext, X: 0, Y: y + 1}
		}
		return types.Pos{Index: l.Cext, X: l.Chars, Y: y}
	}
	l := t.lines[n]
	if l.Chars > pos.X {
		return types.Pos{Index: l.Coff + pos.X, X: pos.X, Y: n}
	}
	return types.Pos{Index: l.Right(), X: l.Chars, Y: n}
}

// Left moves back one codepoint.
func (t *Text) Left(idx int) types.Pos {
	if idx > 0 {
		return t.Index(idx - 1)
	}
	return types.ZeroPos
}

// Right moves forward one codepoint.
func (t *Text) Right(idx int) types.Pos {
	return t.Index(idx + 1)
}

// Home moves to the start of the row.
func (t *Text) Home(idx int) types.Pos {
	nl := len(t.lines)
	if nl == 0 {
		return types.ZeroPos
	}
	pos := t.Index(idx)
	if pos.Y >= nl {
		return types.Pos{Index: t.lines[nl-1].Cext, X: 0, Y: nl}
	}
	return types.Pos{Index: t.lines[pos.Y].Coff, X: 0, Y: pos.Y}
}

// End moves past the last displayed codepoint of the row.
func (t *Text) End(idx int) types.Pos {
	nl := len(t.lines)
	if nl == 0 {
		return types.ZeroPos
	}
	pos := t.Index(idx)
	if pos.Y >= nl {
		return types.Pos{Index: t.lines[nl-1].Cext, X: 0, Y: nl}
	}
	l := t.lines[pos.Y]
	return types.Pos{Index: l.Right(), X: l.Chars, Y: pos.Y}
}

// Target resolves where m leads from idx.
func (t *Text) Target(m types.Movement, idx int) types.Pos {
	switch m {
	case types.MoveUp:
		return t.Up(idx)
	case types.MoveDown:
		return t.Down(idx)
	case types.MoveLeft:
		return t.Left(idx)
	case types.MoveRight:
		return t.Right(idx)
	case types.MoveStartOfLine:
		return t.Home(idx)
	case types.MoveEndOfLine:
		return t.End(idx)
	case types.MoveWord:
		return t.Word(idx)
	case types.MoveStartOfWord:
		return t.StartOfWord(idx)
	case types.MoveEndOfWord:
		return t.EndOfWord(idx)
	default:
		return t.Index(idx)
	}
}
