// internal/types/action.go
package types

// Movement names a cursor motion independent of any key binding.
type Movement int

const (
	MoveUp Movement = iota
	MoveDown
	MoveLeft
	MoveRight
	MoveStartOfLine
	MoveEndOfLine
	MoveWord        // start of the next word
	MoveStartOfWord // start of the current or previous word
	MoveEndOfWord   // end of the current or next word
)

var movementNames = [...]string{
	MoveUp:          "Up",
	MoveDown:        "Down",
	MoveLeft:        "Left",
	MoveRight:       "Right",
	MoveStartOfLine: "StartOfLine",
	MoveEndOfLine:   "EndOfLine",
	MoveWord:        "Word",
	MoveStartOfWord: "StartOfWord",
	MoveEndOfWord:   "EndOfWord",
}

func (m Movement) String() string {
	if m >= 0 && int(m) < len(movementNames) {
		return movementNames[m]
	}
	return "Unknown"
}

// Operation is what happens to the text between the cursor and the
// target of a Movement.
type Operation int

const (
	OpMove   Operation = iota // relocate the cursor, dropping any selection
	OpSelect                  // extend the selection to the target
	OpDelete                  // remove the text between cursor and target
)

func (o Operation) String() string {
	switch o {
	case OpMove:
		return "Move"
	case OpSelect:
		return "Select"
	case OpDelete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// Action pairs a Movement with the Operation to perform along it.
type Action struct {
	Movement  Movement
	Operation Operation
}

func (a Action) String() string {
	return a.Operation.String() + "(" + a.Movement.String() + ")"
}
