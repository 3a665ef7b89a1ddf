// internal/modehandler/action.go
package modehandler

import (
	"errors"

	"github.com/bethropolis/resolver/internal/buffer"
	"github.com/bethropolis/resolver/internal/input"
	"github.com/bethropolis/resolver/internal/logger"
	"github.com/bethropolis/resolver/internal/types"
)

var movements = map[input.Action]types.Movement{
	input.ActionMoveUp:          types.MoveUp,
	input.ActionMoveDown:        types.MoveDown,
	input.ActionMoveLeft:        types.MoveLeft,
	input.ActionMoveRight:       types.MoveRight,
	input.ActionMoveHome:        types.MoveStartOfLine,
	input.ActionMoveEnd:         types.MoveEndOfLine,
	input.ActionMoveWord:        types.MoveWord,
	input.ActionMoveStartOfWord: types.MoveStartOfWord,
	input.ActionMoveEndOfWord:   types.MoveEndOfWord,
}

// movementFor maps a movement key to the cursor motion it performs.
func movementFor(a input.Action) (types.Movement, bool) {
	m, ok := movements[a]
	return m, ok
}

// executeAction runs a decoded action. Delete mode lasts for exactly one
// action, whatever it is.
func (mh *ModeHandler) executeAction(actionEvent input.ActionEvent) bool {
	mode := mh.currentMode
	if mode == ModeDelete {
		mh.setMode(ModeNormal)
	}

	action := actionEvent.Action
	if action != input.ActionQuit && action != input.ActionEscape && action != input.ActionUnknown {
		mh.forceQuitPending = false
	}

	if m, ok := movementFor(action); ok {
		op := types.OpMove
		switch {
		case mode == ModeDelete:
			op = types.OpDelete
		case actionEvent.Select:
			op = types.OpSelect
		}
		mh.editor.Apply(types.Action{Movement: m, Operation: op})
		return true
	}

	switch action {
	case input.ActionDeleteMode:
		mh.editor.ClearSelection()
		mh.setMode(ModeDelete)

	case input.ActionQuit:
		mh.requestQuit()
	case input.ActionForceQuit:
		mh.quit()
	case input.ActionEscape:
		switch {
		case mode == ModeDelete:
			// cancelled above
		case mh.editor.HasSelection():
			mh.editor.ClearSelection()
		default:
			mh.requestQuit()
		}

	case input.ActionSave:
		mh.save()

	case input.ActionMovePageUp:
		mh.editor.ClearSelection()
		mh.editor.PageMove(-1)
	case input.ActionMovePageDown:
		mh.editor.ClearSelection()
		mh.editor.PageMove(1)

	case input.ActionInsertRune:
		mh.editor.InsertRune(actionEvent.Rune)
	case input.ActionInsertNewLine:
		mh.editor.InsertNewLine()
	case input.ActionDeleteCharBackward:
		mh.editor.DeleteBackward()
	case input.ActionDeleteCharForward:
		mh.editor.DeleteForward()

	case input.ActionUndo:
		if !mh.editor.Undo() {
			mh.statusBar.SetTemporaryMessage("Nothing to undo")
		}
	case input.ActionRedo:
		if !mh.editor.Redo() {
			mh.statusBar.SetTemporaryMessage("Nothing to redo")
		}

	case input.ActionCopy:
		copied, err := mh.editor.YankSelection()
		mh.reportClipboard("Selection copied", copied, err)
	case input.ActionCut:
		cut, err := mh.editor.CutSelection()
		mh.reportClipboard("Selection cut", cut, err)
	case input.ActionPaste:
		if !mh.editor.Paste() {
			mh.statusBar.SetTemporaryMessage("Clipboard empty")
		}
	case input.ActionCopyResult:
		res, ok, err := mh.editor.CopyResult()
		switch {
		case err != nil:
			mh.statusBar.SetTemporaryMessage("Copy failed: %v", err)
			logger.Warnf("Copy result error: %v", err)
		case !ok:
			mh.statusBar.SetTemporaryMessage("No result on this line")
		default:
			mh.statusBar.SetTemporaryMessage("Copied %s", res)
		}
	case input.ActionSelectAll:
		mh.editor.SelectAll()

	default:
		// An unknown key still ends delete mode.
		return mode == ModeDelete
	}
	return true
}

// requestQuit quits, asking for a second press when there are unsaved
// changes.
func (mh *ModeHandler) requestQuit() {
	if mh.editor.IsModified() && !mh.forceQuitPending {
		mh.statusBar.SetTemporaryMessage("Unsaved changes! Press Ctrl+Q or ESC again to quit, Ctrl+S to save.")
		mh.forceQuitPending = true
		return
	}
	mh.quit()
}

func (mh *ModeHandler) save() {
	mh.editor.ClearSelection()
	err := mh.editor.SaveBuffer()
	switch {
	case errors.Is(err, buffer.ErrNoPath):
		mh.statusBar.SetTemporaryMessage("No file name: start resolver with a file path to save")
	case err != nil:
		mh.statusBar.SetTemporaryMessage("Save FAILED: %v", err)
		logger.Errorf("Save failed: %v", err)
	default:
		mh.statusBar.SetTemporaryMessage("Saved %s", mh.editor.GetDocument().Path())
	}
}

func (mh *ModeHandler) reportClipboard(done string, ok bool, err error) {
	switch {
	case err != nil:
		mh.statusBar.SetTemporaryMessage("Clipboard error: %v", err)
		logger.Warnf("Clipboard error: %v", err)
	case ok:
		mh.statusBar.SetTemporaryMessage("%s", done)
	default:
		mh.statusBar.SetTemporaryMessage("Nothing selected")
	}
}
