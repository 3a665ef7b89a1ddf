// internal/input/action.go
package input

// Action represents a command or operation to be performed by the editor.
type Action int

const (
	// --- Meta Actions ---
	ActionUnknown   Action = iota
	ActionQuit             // quit, confirming unsaved changes
	ActionForceQuit        // quit without checking modified status
	ActionSave
	ActionEscape // clear selection or pending mode, else quit

	// --- Cursor Movement ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMovePageUp
	ActionMovePageDown
	ActionMoveHome
	ActionMoveEnd
	ActionMoveWord
	ActionMoveStartOfWord
	ActionMoveEndOfWord

	// --- Text Manipulation ---
	ActionInsertRune
	ActionInsertNewLine
	ActionDeleteCharForward
	ActionDeleteCharBackward
	ActionDeleteMode // the next movement deletes instead of moving

	// --- History & Clipboard ---
	ActionUndo
	ActionRedo
	ActionCopy
	ActionCut
	ActionPaste
	ActionCopyResult
	ActionSelectAll
)

var actionNames = map[Action]string{
	ActionUnknown:            "Unknown",
	ActionQuit:               "Quit",
	ActionForceQuit:          "ForceQuit",
	ActionSave:               "Save",
	ActionEscape:             "Escape",
	ActionMoveUp:             "MoveUp",
	ActionMoveDown:           "MoveDown",
	ActionMoveLeft:           "MoveLeft",
	ActionMoveRight:          "MoveRight",
	ActionMovePageUp:         "MovePageUp",
	ActionMovePageDown:       "MovePageDown",
	ActionMoveHome:           "MoveHome",
	ActionMoveEnd:            "MoveEnd",
	ActionMoveWord:           "MoveWord",
	ActionMoveStartOfWord:    "MoveStartOfWord",
	ActionMoveEndOfWord:      "MoveEndOfWord",
	ActionInsertRune:         "InsertRune",
	ActionInsertNewLine:      "InsertNewLine",
	ActionDeleteCharForward:  "DeleteCharForward",
	ActionDeleteCharBackward: "DeleteCharBackward",
	ActionDeleteMode:         "DeleteMode",
	ActionUndo:               "Undo",
	ActionRedo:               "Redo",
	ActionCopy:               "Copy",
	ActionCut:                "Cut",
	ActionPaste:              "Paste",
	ActionCopyResult:         "CopyResult",
	ActionSelectAll:          "SelectAll",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// ActionEvent represents a decoded input event resulting in an action.
type ActionEvent struct {
	Action Action
	Rune   rune // for ActionInsertRune
	Select bool // shift was held on a movement
}
