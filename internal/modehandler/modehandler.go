// internal/modehandler/modehandler.go
package modehandler

import (
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/resolver/internal/core"
	"github.com/bethropolis/resolver/internal/event"
	"github.com/bethropolis/resolver/internal/input"
	"github.com/bethropolis/resolver/internal/logger"
	"github.com/bethropolis/resolver/internal/statusbar"
)

// InputMode defines the different states for user input.
type InputMode int

const (
	ModeNormal InputMode = iota
	ModeDelete           // the next movement deletes up to its target
)

func (m InputMode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeDelete:
		return "DELETE"
	default:
		return "UNKNOWN"
	}
}

// ModeHandler turns key events into editor operations according to the
// current input mode.
type ModeHandler struct {
	editor         *core.Editor
	inputProcessor *input.InputProcessor
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar
	quitSignal     chan<- struct{}

	currentMode      InputMode
	forceQuitPending bool
	quitting         bool
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor         *core.Editor
	InputProcessor *input.InputProcessor
	EventManager   *event.Manager
	StatusBar      *statusbar.StatusBar
	QuitSignal     chan<- struct{} // closed once to end the event loop
}

// New creates a new ModeHandler.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.InputProcessor == nil || cfg.EventManager == nil || cfg.StatusBar == nil || cfg.QuitSignal == nil {
		panic("modehandler.New: Missing required dependencies in Config")
	}
	return &ModeHandler{
		editor:         cfg.Editor,
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		quitSignal:     cfg.QuitSignal,
		currentMode:    ModeNormal,
	}
}

// HandleKeyEvent decodes ev and executes it in the current mode.
// It returns true if the screen needs a redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	mh.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})

	actionEvent := mh.inputProcessor.ProcessEvent(ev)
	logger.DebugTagf("input", "%v key %q -> %v (select=%v)", mh.currentMode, ev.Name(), actionEvent.Action, actionEvent.Select)
	return mh.executeAction(actionEvent)
}

// GetCurrentMode returns the current input mode.
func (mh *ModeHandler) GetCurrentMode() InputMode {
	return mh.currentMode
}

// GetCurrentModeString returns the mode tag for the status bar; normal
// mode has none.
func (mh *ModeHandler) GetCurrentModeString() string {
	if mh.currentMode == ModeNormal {
		return ""
	}
	return mh.currentMode.String()
}

func (mh *ModeHandler) setMode(m InputMode) {
	if mh.currentMode == m {
		return
	}
	mh.currentMode = m
	mh.statusBar.SetEditorMode(mh.GetCurrentModeString())
	mh.eventManager.Dispatch(event.TypeModeChanged, event.ModeChangedData{Mode: m.String()})
}

// quit closes the quit signal once.
func (mh *ModeHandler) quit() {
	if mh.quitting {
		return
	}
	mh.quitting = true
	close(mh.quitSignal)
}
