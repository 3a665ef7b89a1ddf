// internal/core/clipboard.go
package core

// YankSelection copies the selection to the clipboard.
func (e *Editor) YankSelection() (bool, error) {
	return e.clipboardManager.YankSelection()
}

// CutSelection moves the selection to the clipboard.
func (e *Editor) CutSelection() (bool, error) {
	return e.clipboardManager.CutSelection()
}

// Paste inserts the clipboard contents at the cursor.
func (e *Editor) Paste() bool {
	return e.clipboardManager.Paste()
}

// CopyResult copies the result of the cursor's paragraph. It returns the
// copied text, or false when the paragraph has no result.
func (e *Editor) CopyResult() (string, bool, error) {
	res, ok := e.CurrentResult()
	if !ok {
		return "", false, nil
	}
	return res, true, e.clipboardManager.Copy(res)
}
