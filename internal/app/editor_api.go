// internal/app/editor_api.go
package app

import (
	"maps"

	"github.com/bethropolis/resolver/internal/event"
	"github.com/bethropolis/resolver/internal/logger"
	"github.com/bethropolis/resolver/internal/plugin"
	"github.com/bethropolis/resolver/internal/render"
	"github.com/bethropolis/resolver/internal/theme"
	"github.com/bethropolis/resolver/internal/types"
)

// Ensure appEditorAPI implements the plugin.EditorAPI interface.
var _ plugin.EditorAPI = (*appEditorAPI)(nil)

// appEditorAPI is the plugin view of the running App.
type appEditorAPI struct {
	app *App
}

func newEditorAPI(app *App) *appEditorAPI {
	return &appEditorAPI{app: app}
}

// --- Buffer ---

func (api *appEditorAPI) GetBufferContent() string {
	return api.app.editor.Content()
}

func (api *appEditorAPI) GetBufferFilePath() string {
	return api.app.editor.GetDocument().Path()
}

func (api *appEditorAPI) IsBufferModified() bool {
	return api.app.editor.IsModified()
}

func (api *appEditorAPI) SaveBuffer() error {
	return api.app.editor.SaveBuffer()
}

func (api *appEditorAPI) InsertText(s string) {
	api.app.editor.InsertText(s)
}

// --- Evaluation ---

func (api *appEditorAPI) GetSheet() *render.Sheet {
	return api.app.editor.Sheet()
}

// DefineConstant binds name in every later render pass and re-evaluates
// the buffer.
func (api *appEditorAPI) DefineConstant(name string, v float64) {
	opts := api.app.editor.RenderOptions()
	constants := make(map[string]float64, len(opts.Constants)+1)
	maps.Copy(constants, opts.Constants)
	constants[name] = v
	opts.Constants = constants
	api.app.editor.SetRenderOptions(opts)
	logger.Debugf("API: constant %s = %v defined", name, v)
}

// --- Cursor ---

func (api *appEditorAPI) GetCursor() types.Pos {
	return api.app.editor.GetCursor()
}

func (api *appEditorAPI) SetCursor(idx int) {
	api.app.editor.SetCursor(idx)
}

// --- Event Bus ---

func (api *appEditorAPI) DispatchEvent(eventType event.Type, data any) {
	api.app.eventManager.Dispatch(eventType, data)
}

func (api *appEditorAPI) SubscribeEvent(eventType event.Type, handler event.Handler) {
	api.app.eventManager.Subscribe(eventType, handler)
}

// --- Status Bar ---

func (api *appEditorAPI) SetStatusMessage(format string, args ...any) {
	api.app.statusBar.SetTemporaryMessage(format, args...)
}

func (api *appEditorAPI) SetStatusSegment(name, text string) {
	api.app.statusBar.SetSegment(name, text)
}

// --- Theme ---

func (api *appEditorAPI) GetTheme() *theme.Theme {
	return api.app.themeManager.Current()
}

func (api *appEditorAPI) SetTheme(name string) error {
	return api.app.setTheme(name)
}

func (api *appEditorAPI) ListThemes() []string {
	return api.app.themeManager.ListThemes()
}

// --- Configuration ---

func (api *appEditorAPI) GetPluginConfigValue(pluginName, key string) (any, bool) {
	return api.app.cfg.PluginValue(pluginName, key)
}
