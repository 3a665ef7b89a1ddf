package history

import (
	"strings"

	"github.com/bethropolis/resolver/internal/logger"
	"github.com/bethropolis/resolver/internal/types"
)

const DefaultMaxHistory = 100

// EditorInterface defines the methods the history manager needs from the
// editor. The edits it performs must not be recorded again.
type EditorInterface interface {
	InsertAt(idx int, s string) types.Pos
	DeleteRange(r types.Range) types.Pos
	SetCursor(idx int)
}

// Manager handles the undo/redo stack.
type Manager struct {
	editor       EditorInterface
	changes      []Change
	currentIndex int // index of the next change to redo
	maxHistory   int
}

// NewManager creates a history manager.
func NewManager(editor EditorInterface, maxHistory int) *Manager {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Manager{
		editor:     editor,
		changes:    make([]Change, 0, maxHistory),
		maxHistory: maxHistory,
	}
}

// RecordChange adds a new change, clearing any redo history. Typing that
// continues the previous insert on the same line is merged into it, so a
// word undoes in one step.
func (m *Manager) RecordChange(change Change) {
	if m.currentIndex < len(m.changes) {
		m.changes = m.changes[:m.currentIndex]
	} else if n := len(m.changes); n > 0 && m.mergeable(m.changes[n-1], change) {
		m.changes[n-1].Text += change.Text
		logger.DebugTagf("history", "merged insert, now %q", m.changes[n-1].Text)
		return
	}

	m.changes = append(m.changes, change)
	if len(m.changes) > m.maxHistory {
		m.changes = m.changes[len(m.changes)-m.maxHistory:]
	}
	m.currentIndex = len(m.changes)

	logger.DebugTagf("history", "recorded %v at %d. Index: %d, Count: %d", change.Type, change.Index, m.currentIndex, len(m.changes))
}

func (m *Manager) mergeable(last, next Change) bool {
	return last.Type == InsertAction && next.Type == InsertAction &&
		next.Index == last.Range().End &&
		!strings.ContainsRune(last.Text, '\n') && !strings.ContainsRune(next.Text, '\n') &&
		!strings.HasSuffix(last.Text, " ")
}

// Undo reverts the last recorded change. It reports whether there was one.
func (m *Manager) Undo() bool {
	if m.currentIndex <= 0 {
		logger.DebugTagf("history", "nothing to undo")
		return false
	}

	m.currentIndex--
	change := m.changes[m.currentIndex]
	logger.DebugTagf("history", "undoing change %d (%v)", m.currentIndex, change.Type)

	switch change.Type {
	case InsertAction:
		m.editor.DeleteRange(change.Range())
	case DeleteAction:
		m.editor.InsertAt(change.Index, change.Text)
	}
	m.editor.SetCursor(change.CursorBefore)
	return true
}

// Redo reapplies the last undone change. It reports whether there was one.
func (m *Manager) Redo() bool {
	if m.currentIndex >= len(m.changes) {
		logger.DebugTagf("history", "nothing to redo")
		return false
	}

	change := m.changes[m.currentIndex]
	logger.DebugTagf("history", "redoing change %d (%v) %q at %d", m.currentIndex, change.Type, change.Text, change.Index)

	switch change.Type {
	case InsertAction:
		m.editor.InsertAt(change.Index, change.Text)
		m.editor.SetCursor(change.Range().End)
	case DeleteAction:
		m.editor.DeleteRange(change.Range())
		m.editor.SetCursor(change.Index)
	}

	m.currentIndex++
	return true
}

// Clear resets the history stack. Call this on file load.
func (m *Manager) Clear() {
	m.changes = m.changes[:0]
	m.currentIndex = 0
	logger.DebugTagf("history", "cleared")
}

// CanUndo returns true if there are changes that can be undone.
func (m *Manager) CanUndo() bool { return m.currentIndex > 0 }

// CanRedo returns true if there are changes that can be redone.
func (m *Manager) CanRedo() bool { return m.currentIndex < len(m.changes) }
