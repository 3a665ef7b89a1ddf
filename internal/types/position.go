// internal/types/position.go
package types

import "fmt"

// Pos represents a cursor location in a text buffer.
// Index is the codepoint offset from the start of the text and is the
// canonical unit for every cursor operation.
// X and Y are the visual column and row the index lays out to.
type Pos struct {
	Index int
	X     int
	Y     int
}

// ZeroPos is the position of index 0 in any buffer.
var ZeroPos = Pos{}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d@%d", p.Y, p.X, p.Index)
}
