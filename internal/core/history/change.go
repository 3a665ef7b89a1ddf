// Package history provides undo/redo functionality via a change history stack.
package history

import (
	"unicode/utf8"

	"github.com/bethropolis/resolver/internal/types"
)

// ActionType indicates whether text was inserted or deleted.
type ActionType int

const (
	InsertAction ActionType = iota
	DeleteAction
)

func (a ActionType) String() string {
	if a == DeleteAction {
		return "delete"
	}
	return "insert"
}

// Change represents a single, reversible text operation.
// Positions are codepoint indices into the text.
type Change struct {
	Type         ActionType
	Text         string // text inserted or text deleted
	Index        int    // where the change began
	CursorBefore int    // cursor index before the change was applied
}

// Range is the span the change's text occupies once inserted.
func (c Change) Range() types.Range {
	return types.Range{Start: c.Index, End: c.Index + utf8.RuneCountInString(c.Text)}
}
