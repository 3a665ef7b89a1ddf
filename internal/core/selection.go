// internal/core/selection.go
package core

import (
	"github.com/bethropolis/resolver/internal/types"
)

// HasSelection returns true if a non-empty selection is active.
func (e *Editor) HasSelection() bool {
	_, ok := e.text.Selection()
	return ok
}

// GetSelection returns the selected codepoint range.
func (e *Editor) GetSelection() (types.Range, bool) {
	return e.text.Selection()
}

// SelectedText returns the text of the selection, or "".
func (e *Editor) SelectedText() string {
	r, ok := e.text.Selection()
	if !ok {
		return ""
	}
	return e.text.Slice(r)
}

// ClearSelection drops the selection.
func (e *Editor) ClearSelection() {
	e.text.ClearSelection()
}

// SelectAll selects the whole buffer and moves the cursor to its end.
func (e *Editor) SelectAll() {
	n := e.text.Len()
	e.text.Select(types.Range{Start: 0, End: n}, false)
	e.text.SetLoc(n)
	e.ScrollToCursor()
}
