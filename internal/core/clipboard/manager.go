// Package clipboard implements yank, cut and paste for the editor, backed by
// an internal register and optionally the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/bethropolis/resolver/internal/logger"
	"github.com/bethropolis/resolver/internal/types"
)

// EditorInterface defines methods needed from the editor.
type EditorInterface interface {
	GetSelection() (types.Range, bool)
	SelectedText() string
	ClearSelection()
	DeleteSelection() bool
	InsertText(s string)
}

// Manager handles clipboard operations.
type Manager struct {
	editor   EditorInterface
	register string
	system   bool
}

// NewManager creates a clipboard manager. With useSystem, copies also go to
// the system clipboard and pastes read from it.
func NewManager(editor EditorInterface, useSystem bool) *Manager {
	if useSystem && clipboard.Unsupported {
		logger.Warnf("ClipboardManager: system clipboard unsupported, using the internal register")
		useSystem = false
	}
	return &Manager{editor: editor, system: useSystem}
}

// Copy stores s as the clipboard contents.
func (m *Manager) Copy(s string) error {
	m.register = s
	if !m.system {
		return nil
	}
	if err := clipboard.WriteAll(s); err != nil {
		return fmt.Errorf("system clipboard write failed: %w", err)
	}
	return nil
}

// Contents returns what a paste would insert.
func (m *Manager) Contents() string {
	if m.system {
		s, err := clipboard.ReadAll()
		if err == nil {
			return s
		}
		logger.Warnf("ClipboardManager: system clipboard read failed: %v", err)
	}
	return m.register
}

// YankSelection copies the selected text and clears the selection.
// It reports false when nothing is selected.
func (m *Manager) YankSelection() (bool, error) {
	if _, ok := m.editor.GetSelection(); !ok {
		return false, nil
	}
	content := m.editor.SelectedText()
	m.editor.ClearSelection()
	if err := m.Copy(content); err != nil {
		return true, err
	}
	logger.DebugTagf("clipboard", "yanked %d bytes", len(content))
	return true, nil
}

// CutSelection copies the selected text and deletes it.
func (m *Manager) CutSelection() (bool, error) {
	if _, ok := m.editor.GetSelection(); !ok {
		return false, nil
	}
	content := m.editor.SelectedText()
	m.editor.DeleteSelection()
	if err := m.Copy(content); err != nil {
		return true, err
	}
	logger.DebugTagf("clipboard", "cut %d bytes", len(content))
	return true, nil
}

// Paste inserts the clipboard contents at the cursor, replacing the
// selection. It reports false when the clipboard is empty.
func (m *Manager) Paste() bool {
	content := m.Contents()
	if content == "" {
		return false
	}
	m.editor.InsertText(content)
	logger.DebugTagf("clipboard", "pasted %d bytes", len(content))
	return true
}
