// internal/event/event.go
package event

import (
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/resolver/internal/types"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Editor events
	TypeBufferModified // text changed
	TypeBufferLoaded   // document loaded
	TypeBufferSaved    // document written
	TypeCursorMoved    // cursor index changed
	TypeModeChanged    // Normal <-> Delete
	TypeSheetEvaluated // a render pass finished

	// Input events
	TypeKeyPressed

	// Application lifecycle
	TypeAppReady
	TypeAppQuit

	TypeThemeChanged
)

var typeNames = map[Type]string{
	TypeUnknown:        "Unknown",
	TypeBufferModified: "BufferModified",
	TypeBufferLoaded:   "BufferLoaded",
	TypeBufferSaved:    "BufferSaved",
	TypeCursorMoved:    "CursorMoved",
	TypeModeChanged:    "ModeChanged",
	TypeSheetEvaluated: "SheetEvaluated",
	TypeKeyPressed:     "KeyPressed",
	TypeAppReady:       "AppReady",
	TypeAppQuit:        "AppQuit",
	TypeThemeChanged:   "ThemeChanged",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data any
}

// --- Event payloads ---

// BufferModifiedData describes one text change in codepoint indices.
type BufferModifiedData struct {
	Range    types.Range // replaced range before the change
	Inserted int         // codepoints inserted at Range.Start
}

// BufferLoadedData names the loaded document.
type BufferLoadedData struct {
	FilePath string
}

// BufferSavedData names the written document.
type BufferSavedData struct {
	FilePath string
}

// CursorMovedData carries the new cursor position.
type CursorMovedData struct {
	NewPosition types.Pos
}

// ModeChangedData carries the name of the new input mode.
type ModeChangedData struct {
	Mode string
}

// SheetEvaluatedData summarises a render pass.
type SheetEvaluatedData struct {
	Paragraphs int
	Clauses    int
	Failed     int
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

// ThemeChangedData names the new theme.
type ThemeChangedData struct {
	Name string
}

type AppQuitData struct{}

type AppReadyData struct{}
