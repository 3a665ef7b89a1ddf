// internal/app/events.go
package app

import (
	"github.com/bethropolis/resolver/internal/event"
	"github.com/bethropolis/resolver/internal/logger"
)

func (a *App) subscribeEvents() {
	a.eventManager.Subscribe(event.TypeCursorMoved, a.handleCursorMovedForStatus)
	a.eventManager.Subscribe(event.TypeBufferModified, a.handleBufferChangedForStatus)
	a.eventManager.Subscribe(event.TypeBufferSaved, a.handleBufferChangedForStatus)
	a.eventManager.Subscribe(event.TypeBufferLoaded, a.handleBufferLoaded)
}

func (a *App) handleCursorMovedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.CursorMovedData); ok {
		a.statusBar.SetCursorInfo(data.NewPosition)
	}
	return false
}

func (a *App) handleBufferChangedForStatus(e event.Event) bool {
	a.updateStatusBarContent()
	return false
}

func (a *App) handleBufferLoaded(e event.Event) bool {
	if data, ok := e.Data.(event.BufferLoadedData); ok {
		results, failed := a.editor.Sheet().Stats()
		logger.Infof("App: loaded '%s' (%d paragraphs, %d results, %d unparsed)", data.FilePath, len(a.editor.Sheet().Paragraphs), results, failed)
	}
	a.updateStatusBarContent()
	return false
}
