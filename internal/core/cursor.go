// internal/core/cursor.go
package core

import (
	"github.com/bethropolis/resolver/internal/event"
	"github.com/bethropolis/resolver/internal/logger"
	"github.com/bethropolis/resolver/internal/types"
)

// GetCursor returns the cursor position.
func (e *Editor) GetCursor() types.Pos {
	return e.text.Cursor()
}

// SetCursor moves the cursor to the codepoint index idx.
func (e *Editor) SetCursor(idx int) {
	e.text.SetLoc(idx)
	e.ScrollToCursor()
}

// Apply performs a movement on the cursor: it moves, extends the
// selection or deletes up to where the movement leads.
func (e *Editor) Apply(a types.Action) {
	before := e.text.Loc()

	if a.Operation == types.OpDelete {
		target := e.text.Target(a.Movement, before)
		r := types.NewRange(before, target.Index)
		if r.Empty() {
			return
		}
		deleted := e.text.Slice(r)
		e.text.Apply(a)
		e.recordDelete(deleted, r.Start, before)
		e.afterEdit(r, 0)
		return
	}

	pos := e.text.Apply(a)
	logger.DebugTagf("core", "%v %v: %d -> %v", a.Operation, a.Movement, before, pos)
	e.ScrollToCursor()
	if pos.Index != before {
		e.dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: pos})
	}
}

// PageMove moves the cursor by whole screens, keeping its column.
func (e *Editor) PageMove(deltaPages int) {
	if e.viewHeight <= 0 {
		return
	}
	m := types.MoveDown
	if deltaPages < 0 {
		m, deltaPages = types.MoveUp, -deltaPages
	}
	for i := 0; i < deltaPages*e.viewHeight; i++ {
		e.text.Apply(types.Action{Movement: m})
	}
	e.ScrollToCursor()
	e.dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: e.GetCursor()})
}

// ScrollToCursor adjusts the viewport so the cursor's row stays ScrollOff
// rows away from the edges where possible.
func (e *Editor) ScrollToCursor() {
	if e.viewHeight <= 0 {
		return
	}

	scrollOff := e.ScrollOff
	if scrollOff*2 >= e.viewHeight {
		scrollOff = (e.viewHeight - 1) / 2
	}

	y := e.GetCursor().Y
	if y < e.ViewportY+scrollOff {
		e.ViewportY = y - scrollOff
	} else if y >= e.ViewportY+e.viewHeight-scrollOff {
		e.ViewportY = y - e.viewHeight + 1 + scrollOff
	}

	if e.ViewportY < 0 {
		e.ViewportY = 0
	}
}
