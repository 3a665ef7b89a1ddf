// internal/core/editor.go
package core

import (
	"github.com/bethropolis/resolver/internal/buffer"
	"github.com/bethropolis/resolver/internal/config"
	"github.com/bethropolis/resolver/internal/core/clipboard"
	"github.com/bethropolis/resolver/internal/core/history"
	"github.com/bethropolis/resolver/internal/event"
	"github.com/bethropolis/resolver/internal/logger"
	"github.com/bethropolis/resolver/internal/render"
	"github.com/bethropolis/resolver/internal/text"
)

// Options configure a new Editor.
type Options struct {
	Width           int // wrap width of the edit column
	ScrollOff       int
	MaxHistory      int
	SystemClipboard bool
	StatusBarHeight int // rows below the buffer
	Render          render.Options
}

// DefaultOptions returns the editor defaults from the config package.
func DefaultOptions() Options {
	return Options{
		Width:           80,
		ScrollOff:       config.DefaultScrollOff,
		MaxHistory:      config.DefaultMaxHistory,
		SystemClipboard: config.SystemClipboard,
		StatusBarHeight: config.StatusBarHeight,
		Render:          render.DefaultOptions(),
	}
}

// Editor owns the text buffer and everything derived from it. Every edit
// runs one full render pass over the buffer before it returns.
type Editor struct {
	text     *text.Text
	document buffer.Document
	sheet    *render.Sheet
	options  render.Options

	ViewportY       int // top visible row
	viewHeight      int // rows available to the buffer
	statusBarHeight int
	ScrollOff       int // rows to keep visible above/below the cursor

	eventManager     *event.Manager
	historyManager   *history.Manager
	clipboardManager *clipboard.Manager
}

// NewEditor creates an editor for doc with an empty buffer.
func NewEditor(doc buffer.Document, opts Options) *Editor {
	e := &Editor{
		text:      text.New(opts.Width),
		document:  doc,
		options:         opts.Render,
		ScrollOff:       opts.ScrollOff,
		statusBarHeight: max(opts.StatusBarHeight, 0),
	}
	e.historyManager = history.NewManager(e, opts.MaxHistory)
	e.clipboardManager = clipboard.NewManager(e, opts.SystemClipboard)
	e.Evaluate()
	return e
}

// SetEventManager sets the event manager for dispatching events.
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
}

// GetEventManager returns the event manager, which may be nil.
func (e *Editor) GetEventManager() *event.Manager {
	return e.eventManager
}

// GetHistoryManager returns the undo/redo manager.
func (e *Editor) GetHistoryManager() *history.Manager {
	return e.historyManager
}

// GetClipboardManager returns the clipboard manager.
func (e *Editor) GetClipboardManager() *clipboard.Manager {
	return e.clipboardManager
}

// GetDocument returns the document behind the buffer.
func (e *Editor) GetDocument() buffer.Document {
	return e.document
}

// Text returns the edit buffer.
func (e *Editor) Text() *text.Text {
	return e.text
}

// Content returns the raw buffer text.
func (e *Editor) Content() string {
	return e.text.String()
}

// Sheet returns the outcome of the latest render pass.
func (e *Editor) Sheet() *render.Sheet {
	return e.sheet
}

// RenderOptions returns the options used for render passes.
func (e *Editor) RenderOptions() render.Options {
	return e.options
}

// SetRenderOptions changes how the buffer is evaluated and re-renders it.
func (e *Editor) SetRenderOptions(opts render.Options) {
	e.options = opts
	e.Evaluate()
}

// Evaluate runs a render pass over the whole buffer and applies its
// highlight spans.
func (e *Editor) Evaluate() {
	e.sheet = render.Pass(e.text, e.options)
	e.sheet.Apply(e.text)

	ok, failed := e.sheet.Stats()
	logger.DebugTagf("core", "evaluated %d paragraphs: %d clauses, %d failed", len(e.sheet.Paragraphs), ok+failed, failed)
	e.dispatch(event.TypeSheetEvaluated, event.SheetEvaluatedData{
		Paragraphs: len(e.sheet.Paragraphs),
		Clauses:    ok + failed,
		Failed:     failed,
	})
}

// Load replaces the buffer with the document at path.
func (e *Editor) Load(path string) error {
	content, err := e.document.Load(path)
	if err != nil {
		return err
	}
	e.reset(content)
	e.dispatch(event.TypeBufferLoaded, event.BufferLoadedData{FilePath: path})
	return nil
}

// SetContent replaces the buffer with s without touching the document's path.
func (e *Editor) SetContent(s string) {
	e.reset(s)
}

func (e *Editor) reset(s string) {
	e.text.SetText(s)
	e.text.SetLoc(e.text.Len())
	e.historyManager.Clear()
	e.ViewportY = 0
	e.Evaluate()
	e.ScrollToCursor()
}

// SaveBuffer writes the buffer to the document's path, or to the path
// given.
func (e *Editor) SaveBuffer(filePath ...string) error {
	var err error
	if len(filePath) > 0 && filePath[0] != "" {
		err = e.document.SaveAs(filePath[0], e.text.String())
	} else {
		err = e.document.Save(e.text.String())
	}
	if err != nil {
		return err
	}
	e.dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: e.document.Path()})
	return nil
}

// IsModified reports unsaved changes.
func (e *Editor) IsModified() bool {
	return e.document.IsModified()
}

// SetViewSize updates the wrap width and the number of rows available to
// the buffer. Called on resize.
func (e *Editor) SetViewSize(wrapWidth, height int) {
	e.viewHeight = max(height-e.statusBarHeight, 0)
	if e.text.Width() != wrapWidth {
		e.text.SetWidth(wrapWidth)
		e.Evaluate()
	}
	e.ScrollToCursor()
}

// ViewHeight is the number of rows available to the buffer.
func (e *Editor) ViewHeight() int {
	return e.viewHeight
}

// CurrentResult returns the result shown next to the cursor's paragraph.
func (e *Editor) CurrentResult() (string, bool) {
	return e.sheet.ResultAt(e.GetCursor().Y)
}

func (e *Editor) dispatch(t event.Type, data any) {
	if e.eventManager != nil {
		e.eventManager.Dispatch(t, data)
	}
}
