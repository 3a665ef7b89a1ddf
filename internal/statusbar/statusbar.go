// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/bethropolis/resolver/internal/config"
	"github.com/bethropolis/resolver/internal/theme"
	"github.com/bethropolis/resolver/internal/types"
)

// Config defines the behavior of the status bar.
type Config struct {
	MessageTimeout time.Duration
	Height         int // rows at the bottom of the screen; the text is on the last one
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		MessageTimeout: config.MessageTimeout,
		Height:         config.StatusBarHeight,
	}
}

// StatusBar is the status line at the bottom of the screen. It is updated
// and drawn from the event loop only.
type StatusBar struct {
	config Config

	filePath   string
	cursorPos  types.Pos
	isModified bool
	editorMode string
	segments   map[string]string // right-aligned, ordered by key

	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{
		config:   config,
		segments: make(map[string]string),
	}
}

// SetFileInfo updates the file path and modified indicator.
func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.filePath = path
	sb.isModified = modified
}

// SetCursorInfo updates the cursor position shown.
func (sb *StatusBar) SetCursorInfo(pos types.Pos) {
	sb.cursorPos = pos
}

// SetEditorMode updates the displayed editor mode. "" hides it.
func (sb *StatusBar) SetEditorMode(mode string) {
	sb.editorMode = mode
}

// SetSegment sets a named right-hand segment. An empty text removes it.
func (sb *StatusBar) SetSegment(name, text string) {
	if text == "" {
		delete(sb.segments, name)
		return
	}
	sb.segments[name] = text
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...any) {
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = time.Now()
}

// ResetTemporaryMessage clears any temporary message being displayed.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// message returns the active temporary message, dropping an expired one.
func (sb *StatusBar) message() (string, bool) {
	if sb.tempMessageTime.IsZero() {
		return "", false
	}
	if time.Since(sb.tempMessageTime) > sb.config.MessageTimeout {
		sb.ResetTemporaryMessage()
		return "", false
	}
	return sb.tempMessage, true
}

func (sb *StatusBar) leftText() string {
	fPath := sb.filePath
	if fPath == "" {
		fPath = "[No Name]"
	}
	modifiedIndicator := ""
	if sb.isModified {
		modifiedIndicator = " [Modified]"
	}
	return fmt.Sprintf(" %s%s -- Row: %d, Col: %d", fPath, modifiedIndicator, sb.cursorPos.Y+1, sb.cursorPos.X+1)
}

func (sb *StatusBar) rightText() string {
	keys := make([]string, 0, len(sb.segments))
	for k := range sb.segments {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, sb.segments[k])
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, " | ") + " "
}

// Line returns the status line text for a screen width: the mode tag,
// the file info or the active message, and the segments aligned right
// when they fit.
func (sb *StatusBar) Line(width int) string {
	var b strings.Builder
	if sb.editorMode != "" {
		b.WriteString(" " + sb.editorMode + " ")
	}
	if msg, ok := sb.message(); ok {
		b.WriteString(" " + msg)
	} else {
		b.WriteString(sb.leftText())
	}

	left := b.String()
	right := sb.rightText()
	gap := width - uniseg.StringWidth(left) - uniseg.StringWidth(right)
	if right == "" || gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

// Draw renders the status bar over the bottom Height rows of the screen,
// with its text on the last row, using visual widths. The mode tag and modified file name get their own styles.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int, activeTheme *theme.Theme) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	_, hasMessage := sb.message()
	style := activeTheme.GetStyle("StatusBar")
	if hasMessage {
		style = activeTheme.GetStyle("StatusBarMessage")
	} else if sb.isModified {
		style = activeTheme.GetStyle("StatusBarModified")
	}
	modeStyle := activeTheme.GetStyle("StatusBarMode")
	modeWidth := 0
	if sb.editorMode != "" {
		modeWidth = uniseg.StringWidth(sb.editorMode) + 2
	}

	top := max(height-max(sb.config.Height, 1), 0)
	for row := top; row <= y; row++ {
		for x := 0; x < width; x++ {
			screen.SetContent(x, row, ' ', nil, style)
		}
	}

	gr := uniseg.NewGraphemes(sb.Line(width))
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break
		}
		cellStyle := style
		if currentX < modeWidth {
			cellStyle = modeStyle
		}
		if runes := gr.Runes(); len(runes) > 0 {
			screen.SetContent(currentX, y, runes[0], runes[1:], cellStyle)
		}
		currentX += clusterWidth
	}
}
