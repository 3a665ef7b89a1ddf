// internal/plugin/plugin.go
package plugin

import (
	"github.com/bethropolis/resolver/internal/event"
	"github.com/bethropolis/resolver/internal/render"
	"github.com/bethropolis/resolver/internal/theme"
	"github.com/bethropolis/resolver/internal/types"
)

// EditorAPI is what plugins may do with the editor.
type EditorAPI interface {
	// --- Buffer ---
	GetBufferContent() string
	GetBufferFilePath() string
	IsBufferModified() bool
	SaveBuffer() error
	InsertText(s string) // at the cursor, recorded in history

	// --- Evaluation ---
	GetSheet() *render.Sheet               // latest render pass
	DefineConstant(name string, v float64) // bound in every later pass

	// --- Cursor ---
	GetCursor() types.Pos
	SetCursor(idx int)

	// --- Event Bus ---
	DispatchEvent(eventType event.Type, data any)
	SubscribeEvent(eventType event.Type, handler event.Handler)

	// --- Status Bar ---
	SetStatusMessage(format string, args ...any)
	SetStatusSegment(name, text string) // "" removes the segment

	// --- Theme ---
	GetTheme() *theme.Theme
	SetTheme(name string) error
	ListThemes() []string

	// --- Configuration ---
	GetPluginConfigValue(pluginName, key string) (any, bool)
}

// Plugin is implemented by every plugin.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string

	// Initialize is called once at startup, after the document is loaded.
	// Plugins subscribe to events here.
	Initialize(api EditorAPI) error

	// Shutdown is called once when the editor is closing.
	Shutdown() error
}
