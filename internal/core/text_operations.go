// internal/core/text_operations.go
package core

import (
	"unicode/utf8"

	"github.com/bethropolis/resolver/internal/core/history"
	"github.com/bethropolis/resolver/internal/event"
	"github.com/bethropolis/resolver/internal/types"
)

// InsertRune types r at the cursor, replacing the selection.
func (e *Editor) InsertRune(r rune) {
	e.InsertText(string(r))
}

// InsertNewLine breaks the paragraph at the cursor.
func (e *Editor) InsertNewLine() {
	e.InsertText("\n")
}

// InsertText types s at the cursor, replacing the selection.
func (e *Editor) InsertText(s string) {
	if s == "" {
		return
	}
	e.DeleteSelection()

	idx := e.text.Loc()
	e.text.InsertText(s)
	e.historyManager.RecordChange(history.Change{
		Type:         history.InsertAction,
		Text:         s,
		Index:        idx,
		CursorBefore: idx,
	})
	e.afterEdit(types.Range{Start: idx, End: idx}, utf8.RuneCountInString(s))
}

// DeleteBackward deletes the selection, or the codepoint before the cursor.
func (e *Editor) DeleteBackward() {
	if e.DeleteSelection() {
		return
	}
	idx := e.text.Loc()
	if idx == 0 {
		return
	}
	r := types.Range{Start: idx - 1, End: idx}
	deleted := e.text.Slice(r)
	e.text.DeleteBackward()
	e.recordDelete(deleted, r.Start, idx)
	e.afterEdit(r, 0)
}

// DeleteForward deletes the selection, or the codepoint at the cursor.
func (e *Editor) DeleteForward() {
	if e.DeleteSelection() {
		return
	}
	idx := e.text.Loc()
	if idx >= e.text.Len() {
		return
	}
	e.Apply(types.Action{Movement: types.MoveRight, Operation: types.OpDelete})
}

// DeleteSelection removes the selected text. It reports whether anything
// was removed.
func (e *Editor) DeleteSelection() bool {
	r, ok := e.text.Selection()
	if !ok {
		return false
	}
	before := e.text.Loc()
	deleted := e.text.Slice(r)
	e.text.DeleteSelection()
	e.recordDelete(deleted, r.Start, before)
	e.afterEdit(r, 0)
	return true
}

// InsertAt inserts s at idx without recording history. The cursor stays.
func (e *Editor) InsertAt(idx int, s string) types.Pos {
	pos := e.text.InsertString(idx, s)
	e.afterEdit(types.Range{Start: idx, End: idx}, utf8.RuneCountInString(s))
	return pos
}

// DeleteRange deletes r without recording history. The cursor stays.
func (e *Editor) DeleteRange(r types.Range) types.Pos {
	pos := e.text.Delete(r)
	e.afterEdit(r, 0)
	return pos
}

// Undo reverts the last change.
func (e *Editor) Undo() bool {
	e.text.ClearSelection()
	return e.historyManager.Undo()
}

// Redo reapplies the last undone change.
func (e *Editor) Redo() bool {
	e.text.ClearSelection()
	return e.historyManager.Redo()
}

func (e *Editor) recordDelete(deleted string, idx, cursorBefore int) {
	e.historyManager.RecordChange(history.Change{
		Type:         history.DeleteAction,
		Text:         deleted,
		Index:        idx,
		CursorBefore: cursorBefore,
	})
}

// afterEdit re-renders the buffer and announces the change.
func (e *Editor) afterEdit(r types.Range, inserted int) {
	e.document.MarkModified()
	e.Evaluate()
	e.ScrollToCursor()
	e.dispatch(event.TypeBufferModified, event.BufferModifiedData{Range: r, Inserted: inserted})
}
