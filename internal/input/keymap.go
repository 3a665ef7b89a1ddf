// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps special keys to editor actions.
type Keymap map[tcell.Key]Action

// RuneKeymap maps plain runes to actions other than insertion.
type RuneKeymap map[rune]Action

// ModKeymap maps keys combined with modifiers.
type ModKeymap map[tcell.ModMask]Keymap

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap     Keymap
	runeKeymap RuneKeymap
	modKeymap  ModKeymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:     make(Keymap),
		runeKeymap: make(RuneKeymap),
		modKeymap:  make(ModKeymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	// --- Simple Keys ---
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyPgUp] = ActionMovePageUp
	p.keymap[tcell.KeyPgDn] = ActionMovePageDown
	p.keymap[tcell.KeyHome] = ActionMoveHome
	p.keymap[tcell.KeyEnd] = ActionMoveEnd
	p.keymap[tcell.KeyEnter] = ActionInsertNewLine
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward
	p.keymap[tcell.KeyDelete] = ActionDeleteCharForward
	p.keymap[tcell.KeyEscape] = ActionEscape

	// --- Control keys ---
	// tcell reports these as their own keys, usually with ModCtrl set.
	p.keymap[tcell.KeyCtrlQ] = ActionQuit
	p.keymap[tcell.KeyCtrlS] = ActionSave
	p.keymap[tcell.KeyCtrlD] = ActionDeleteMode
	p.keymap[tcell.KeyCtrlB] = ActionMoveStartOfWord
	p.keymap[tcell.KeyCtrlE] = ActionMoveEndOfWord
	p.keymap[tcell.KeyCtrlW] = ActionMoveWord
	p.keymap[tcell.KeyCtrlZ] = ActionUndo
	p.keymap[tcell.KeyCtrlR] = ActionRedo
	p.keymap[tcell.KeyCtrlC] = ActionCopy
	p.keymap[tcell.KeyCtrlX] = ActionCut
	p.keymap[tcell.KeyCtrlV] = ActionPaste
	p.keymap[tcell.KeyCtrlY] = ActionCopyResult
	p.keymap[tcell.KeyCtrlA] = ActionSelectAll

	// --- Modifier Keys ---
	ctrlMap := make(Keymap)
	ctrlMap[tcell.KeyLeft] = ActionMoveStartOfWord
	ctrlMap[tcell.KeyRight] = ActionMoveWord
	p.modKeymap[tcell.ModCtrl] = ctrlMap

	altMap := make(Keymap)
	altMap[tcell.KeyLeft] = ActionMoveStartOfWord
	altMap[tcell.KeyRight] = ActionMoveEndOfWord
	p.modKeymap[tcell.ModAlt] = altMap
}

// ProcessEvent takes a tcell key event and returns the corresponding ActionEvent.
// Modes are not handled here; the mode handler decides what an action means.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()
	shift := mod&tcell.ModShift != 0

	// 1. Modifier + key combinations; shift only extends the selection.
	if modKeyMap, ok := p.modKeymap[mod&^tcell.ModShift]; ok {
		if action, ok := modKeyMap[key]; ok {
			return ActionEvent{Action: action, Select: shift}
		}
	}

	// The control keys already imply Ctrl.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}

	// 2. Simple keys, optionally with shift.
	if mod&^tcell.ModShift == tcell.ModNone {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action, Select: shift}
		}
	}

	// 3. Runes. Shift is part of the rune itself.
	if key == tcell.KeyRune && mod&^tcell.ModShift == tcell.ModNone {
		r := ev.Rune()
		if action, ok := p.runeKeymap[r]; ok {
			return ActionEvent{Action: action, Rune: r}
		}
		return ActionEvent{Action: ActionInsertRune, Rune: r}
	}

	return ActionEvent{Action: ActionUnknown}
}
