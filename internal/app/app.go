// internal/app/app.go
package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/resolver/internal/buffer"
	"github.com/bethropolis/resolver/internal/config"
	"github.com/bethropolis/resolver/internal/core"
	"github.com/bethropolis/resolver/internal/event"
	"github.com/bethropolis/resolver/internal/input"
	"github.com/bethropolis/resolver/internal/logger"
	"github.com/bethropolis/resolver/internal/modehandler"
	"github.com/bethropolis/resolver/internal/plugin"
	"github.com/bethropolis/resolver/internal/render"
	"github.com/bethropolis/resolver/internal/statusbar"
	"github.com/bethropolis/resolver/internal/theme"
	"github.com/bethropolis/resolver/internal/tui"
)

const welcomeMessage = "resolver - Ctrl+S Save | Ctrl+D delete motion | Ctrl+Y copy result | Ctrl+Q Quit"

// App encapsulates the core components and main loop of the notepad.
type App struct {
	cfg           *config.Config
	tuiManager    *tui.TUI
	editor        *core.Editor
	statusBar     *statusbar.StatusBar
	eventManager  *event.Manager
	pluginManager *plugin.Manager
	modeHandler   *modehandler.ModeHandler
	themeManager  *theme.Manager
	editorAPI     plugin.EditorAPI

	// closed by the mode handler to end Run
	quit chan struct{}
}

// NewApp creates the application on the real terminal and loads filePath,
// which may be empty or name a file that does not exist yet.
func NewApp(cfg *config.Config, filePath string) (*App, error) {
	themeManager := newThemeManager(cfg, theme.DefaultDir())

	tuiManager, err := tui.New(themeManager.Current().GetStyle("Default"))
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	a, err := newApp(cfg, filePath, tuiManager, themeManager)
	if err != nil {
		tuiManager.Close()
		return nil, err
	}
	return a, nil
}

// NewAppWithScreen creates the application on the given screen. Themes
// are limited to the built-in ones and cfg.Theme.File.
func NewAppWithScreen(cfg *config.Config, filePath string, screen tcell.Screen) (*App, error) {
	themeManager := newThemeManager(cfg, "")

	tuiManager, err := tui.NewWithScreen(screen, themeManager.Current().GetStyle("Default"))
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	a, err := newApp(cfg, filePath, tuiManager, themeManager)
	if err != nil {
		tuiManager.Close()
		return nil, err
	}
	return a, nil
}

func newThemeManager(cfg *config.Config, themesDir string) *theme.Manager {
	mgr := theme.NewManager(themesDir)
	if cfg.Theme.File != "" {
		if err := mgr.LoadFile(cfg.Theme.File); err != nil {
			logger.Warnf("Failed to load theme file '%s': %v", cfg.Theme.File, err)
		}
		return mgr
	}
	if cfg.Theme.Name != "" {
		if err := mgr.SetTheme(cfg.Theme.Name); err != nil {
			logger.Warnf("Failed to set theme: %v", err)
		}
	}
	return mgr
}

// editorOptions maps the configuration onto the editor.
func editorOptions(cfg *config.Config) core.Options {
	opts := core.DefaultOptions()
	opts.ScrollOff = cfg.Editor.ScrollOff
	opts.MaxHistory = cfg.Editor.MaxHistory
	opts.SystemClipboard = cfg.Editor.SystemClipboard
	opts.StatusBarHeight = cfg.Editor.StatusBarHeight
	opts.Render = render.Options{
		Fractions: cfg.Calc.Fractions,
		Constants: cfg.Calc.Constants,
		Gutter:    cfg.Editor.Gutter,
	}
	return opts
}

func newApp(cfg *config.Config, filePath string, tuiManager *tui.TUI, themeManager *theme.Manager) (*App, error) {
	eventManager := event.NewManager()
	statusConfig := statusbar.DefaultConfig()
	statusConfig.Height = cfg.Editor.StatusBarHeight
	statusBar := statusbar.New(statusConfig)
	quitChan := make(chan struct{})

	editor := core.NewEditor(buffer.NewFile(), editorOptions(cfg))
	editor.SetEventManager(eventManager)

	a := &App{
		cfg:           cfg,
		tuiManager:    tuiManager,
		editor:        editor,
		statusBar:     statusBar,
		eventManager:  eventManager,
		pluginManager: plugin.NewManager(),
		themeManager:  themeManager,
		quit:          quitChan,
	}

	a.modeHandler = modehandler.New(modehandler.Config{
		Editor:         editor,
		InputProcessor: input.NewInputProcessor(),
		EventManager:   eventManager,
		StatusBar:      statusBar,
		QuitSignal:     quitChan,
	})

	a.subscribeEvents()
	a.resize()

	if filePath != "" {
		if err := editor.Load(filePath); err != nil {
			return nil, fmt.Errorf("loading %s: %w", filePath, err)
		}
	}

	// Plugins see the loaded document.
	a.editorAPI = newEditorAPI(a)
	if err := registerPlugins(a.pluginManager); err != nil {
		logger.Warnf("App: %v", err)
	}
	if err := a.pluginManager.InitializePlugins(a.editorAPI); err != nil {
		logger.Errorf("App: plugin initialization: %v", err)
	}

	return a, nil
}

// Run draws the screen and processes terminal events until the user quits.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage(welcomeMessage)
	a.drawEditor()

	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			// screen finalized
			a.shutdown()
			return nil
		}

		if a.handleEvent(ev) {
			a.drawEditor()
		}

		if a.quitRequested() {
			a.shutdown()
			return nil
		}
	}
}

// handleEvent applies one terminal event and reports whether the screen
// needs a redraw.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.Sync()
		a.resize()
		return true
	case *tcell.EventKey:
		return a.modeHandler.HandleKeyEvent(ev)
	}
	return false
}

func (a *App) quitRequested() bool {
	select {
	case <-a.quit:
		return true
	default:
		return false
	}
}

func (a *App) shutdown() {
	a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
	a.pluginManager.ShutdownPlugins()
	if a.editor.IsModified() {
		logger.Warnf("Exited with unsaved changes.")
	}
	logger.Infof("Exiting application.")
}

// resize fits the edit column to the terminal.
func (a *App) resize() {
	w, h := a.tuiManager.Size()
	a.editor.SetViewSize(a.cfg.WrapWidth(w), h)
	logger.DebugTagf("draw", "resize: screen %dx%d, wrap width %d, view height %d", w, h, a.editor.Text().Width(), a.editor.ViewHeight())
}

// drawEditor clears the screen and redraws all components.
func (a *App) drawEditor() {
	a.updateStatusBarContent()

	activeTheme := a.themeManager.Current()
	width, height := a.tuiManager.Size()

	a.tuiManager.Clear()
	tui.DrawBuffer(a.tuiManager, a.editor, activeTheme)
	if a.editor.Content() == "" {
		tui.DrawSplash(a.tuiManager, a.editor.ViewHeight(), activeTheme, config.Version)
	}
	a.statusBar.Draw(a.tuiManager.GetScreen(), width, height, activeTheme)
	tui.DrawCursor(a.tuiManager, a.editor)
	a.tuiManager.Show()
}

// updateStatusBarContent pushes current editor state to the status bar.
func (a *App) updateStatusBarContent() {
	a.statusBar.SetFileInfo(a.editor.GetDocument().Path(), a.editor.IsModified())
	a.statusBar.SetCursorInfo(a.editor.GetCursor())
	a.statusBar.SetEditorMode(a.modeHandler.GetCurrentModeString())
}

// Editor returns the editor the app drives.
func (a *App) Editor() *core.Editor {
	return a.editor
}

// setTheme activates a theme and repaints the terminal background.
func (a *App) setTheme(name string) error {
	if err := a.themeManager.SetTheme(name); err != nil {
		return err
	}
	current := a.themeManager.Current()
	a.tuiManager.SetStyle(current.GetStyle("Default"))
	a.eventManager.Dispatch(event.TypeThemeChanged, event.ThemeChangedData{Name: current.Name})
	return nil
}
