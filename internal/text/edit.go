// internal/text/edit.go
package text

import (
	"unicode/utf8"

	"github.com/bethropolis/resolver/internal/types"
)

// Insert puts r before the codepoint at idx and returns the position
// after it. An index past the text appends.
func (t *Text) Insert(idx int, r rune) types.Pos {
	return t.InsertString(idx, string(r))
}

// InsertString puts s before the codepoint at idx and returns the
// position after it.
func (t *Text) InsertString(idx int, s string) types.Pos {
	idx = t.clamp(idx)
	if s == "" {
		return t.Index(idx)
	}
	off := t.byteOffset(idx)
	t.text = t.text[:off] + s + t.text[off:]
	t.spans = nil
	t.reflow()
	return t.Index(idx + utf8.RuneCountInString(s))
}

// Backspace removes the codepoint before idx and returns the position
// where it was.
func (t *Text) Backspace(idx int) types.Pos {
	idx = t.clamp(idx)
	if idx == 0 {
		return types.ZeroPos
	}
	off, ok := t.offsetForIndex(idx - 1)
	if !ok {
		return types.ZeroPos
	}
	_, size := utf8.DecodeRuneInString(t.text[off:])
	t.text = t.text[:off] + t.text[off+size:]
	t.spans = nil
	t.reflow()
	return t.Index(idx - 1)
}

// Delete removes the codepoints in r and returns the position of its start.
func (t *Text) Delete(r types.Range) types.Pos {
	r = types.NewRange(t.clamp(r.Start), t.clamp(r.End))
	if r.Empty() {
		return t.Index(r.Start)
	}
	start, end := t.byteOffset(r.Start), t.byteOffset(r.End)
	t.text = t.text[:start] + t.text[end:]
	t.spans = nil
	t.reflow()
	return t.Index(r.Start)
}

// --- Cursor-relative editing ---

// InsertRune types r at the cursor, replacing the selection if there is one.
func (t *Text) InsertRune(r rune) types.Pos {
	return t.InsertText(string(r))
}

// InsertText types s at the cursor, replacing the selection if there is one.
func (t *Text) InsertText(s string) types.Pos {
	t.DeleteSelection()
	t.loc = t.InsertString(t.loc, s).Index
	return t.Cursor()
}

// DeleteBackward deletes the selection, or the codepoint before the cursor.
func (t *Text) DeleteBackward() types.Pos {
	if t.DeleteSelection() {
		return t.Cursor()
	}
	if t.loc == 0 {
		return types.ZeroPos
	}
	t.loc = t.Backspace(t.loc).Index
	return t.Cursor()
}

// DeleteSelection removes the selected text and moves the cursor to where
// it started. It reports whether anything was removed.
func (t *Text) DeleteSelection() bool {
	r, ok := t.Selection()
	t.ClearSelection()
	if !ok {
		return false
	}
	t.loc = t.Delete(r).Index
	return true
}

// Apply performs an action relative to the cursor and returns the new
// cursor position.
func (t *Text) Apply(a types.Action) types.Pos {
	target := t.Target(a.Movement, t.loc)
	switch a.Operation {
	case types.OpSelect:
		t.Select(types.NewRange(t.loc, target.Index), true)
		t.loc = target.Index
	case types.OpDelete:
		t.ClearSelection()
		t.loc = t.Delete(types.NewRange(t.loc, target.Index)).Index
	default:
		t.ClearSelection()
		t.loc = target.Index
	}
	return t.Cursor()
}
