package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/resolver/internal/buffer"
	"github.com/bethropolis/resolver/internal/event"
	"github.com/bethropolis/resolver/internal/types"
)

func newTestEditor(t *testing.T, content string) *Editor {
	t.Helper()
	e := NewEditor(buffer.NewFile(), DefaultOptions())
	e.SetContent(content)
	return e
}

func typeString(e *Editor, s string) {
	for _, r := range s {
		e.InsertRune(r)
	}
}

func TestTypingReEvaluates(t *testing.T) {
	e := newTestEditor(t, "")
	typeString(e, "a = 2\na * 3")

	require.Len(t, e.Sheet().Paragraphs, 2)
	assert.Equal(t, []string{"6"}, e.Sheet().Paragraphs[1].Results)
	assert.True(t, e.IsModified())

	res, ok := e.CurrentResult()
	assert.True(t, ok)
	assert.Equal(t, "6", res)
	assert.Len(t, e.Text().Spans(), 2, "the pass applies its spans to the buffer")
}

func TestSetContentPutsCursorAtEnd(t *testing.T) {
	e := newTestEditor(t, "1 + 1\n")
	assert.Equal(t, types.Pos{Index: 6, X: 0, Y: 1}, e.GetCursor())
	assert.False(t, e.IsModified())
	assert.False(t, e.GetHistoryManager().CanUndo())
}

func TestApplyAndUndoDelete(t *testing.T) {
	e := newTestEditor(t, "total = 12 kg")
	e.SetCursor(0)

	e.Apply(types.Action{Movement: types.MoveWord, Operation: types.OpDelete})
	assert.Equal(t, "= 12 kg", e.Content())

	require.True(t, e.Undo())
	assert.Equal(t, "total = 12 kg", e.Content())
	assert.Equal(t, 0, e.GetCursor().Index)

	require.True(t, e.Redo())
	assert.Equal(t, "= 12 kg", e.Content())
}

func TestDeleteBackwardAndForward(t *testing.T) {
	e := newTestEditor(t, "12 kgs")
	e.DeleteBackward()
	assert.Equal(t, "12 kg", e.Content())
	assert.Equal(t, []string{"12 kg"}, e.Sheet().Paragraphs[0].Results)

	e.SetCursor(0)
	e.DeleteForward()
	assert.Equal(t, "2 kg", e.Content())

	e.SetCursor(4)
	e.DeleteForward()
	assert.Equal(t, "2 kg", e.Content())

	e.Undo()
	e.Undo()
	assert.Equal(t, "12 kgs", e.Content())
}

func TestSelectionTyping(t *testing.T) {
	e := newTestEditor(t, "100 g")
	e.SetCursor(0)
	e.Apply(types.Action{Movement: types.MoveEndOfWord, Operation: types.OpSelect})
	assert.Equal(t, "100", e.SelectedText())

	typeString(e, "250")
	assert.Equal(t, "250 g", e.Content())
	assert.False(t, e.HasSelection())

	// Undo the typing, then the replaced selection.
	e.Undo()
	assert.Equal(t, " g", e.Content())
	e.Undo()
	assert.Equal(t, "100 g", e.Content())
}

func TestClipboard(t *testing.T) {
	e := newTestEditor(t, "flour = 250 g")
	e.SelectAll()
	ok, err := e.YankSelection()
	require.NoError(t, err)
	assert.True(t, ok)

	e.InsertNewLine()
	assert.True(t, e.Paste())
	assert.Equal(t, "flour = 250 g\nflour = 250 g", e.Content())

	res, ok, err := e.CopyResult()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "250 g", res)
	assert.Equal(t, "250 g", e.GetClipboardManager().Contents())

	e.SelectAll()
	ok, err = e.CutSelection()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, e.Content())

	_, ok, err = e.CopyResult()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEvents(t *testing.T) {
	e := newTestEditor(t, "")
	mgr := event.NewManager()
	e.SetEventManager(mgr)

	var modified []event.BufferModifiedData
	var evaluated []event.SheetEvaluatedData
	moved := 0
	mgr.Subscribe(event.TypeBufferModified, func(ev event.Event) bool {
		modified = append(modified, ev.Data.(event.BufferModifiedData))
		return false
	})
	mgr.Subscribe(event.TypeSheetEvaluated, func(ev event.Event) bool {
		evaluated = append(evaluated, ev.Data.(event.SheetEvaluatedData))
		return false
	})
	mgr.Subscribe(event.TypeCursorMoved, func(event.Event) bool { moved++; return false })

	e.InsertText("x 1")
	require.Len(t, modified, 1)
	assert.Equal(t, event.BufferModifiedData{Range: types.Range{}, Inserted: 3}, modified[0])
	assert.Equal(t, event.SheetEvaluatedData{Paragraphs: 1, Clauses: 2, Failed: 1}, evaluated[len(evaluated)-1])

	e.Apply(types.Action{Movement: types.MoveLeft})
	e.Apply(types.Action{Movement: types.MoveStartOfLine})
	e.Apply(types.Action{Movement: types.MoveStartOfLine})
	assert.Equal(t, 2, moved, "a movement that goes nowhere is not announced")
}

func TestLoadAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "groceries.txt")
	require.NoError(t, os.WriteFile(path, []byte("milk = 2 cup\nmilk * 2"), 0644))

	e := NewEditor(buffer.NewFile(), DefaultOptions())
	require.NoError(t, e.Load(path))
	assert.Equal(t, []string{"1 quart"}, e.Sheet().Paragraphs[1].Results)

	typeString(e, " + 1 cup")
	assert.Equal(t, []string{"1 1/4 quart"}, e.Sheet().Paragraphs[1].Results)
	require.NoError(t, e.SaveBuffer())
	assert.False(t, e.IsModified())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "milk = 2 cup\nmilk * 2 + 1 cup", string(data))
}

func TestScrollToCursor(t *testing.T) {
	e := newTestEditor(t, "1\n2\n3\n4\n5\n6\n7\n8\n9\n10")
	e.ScrollOff = 1
	e.SetViewSize(20, 5) // four rows for text

	assert.Equal(t, 9, e.GetCursor().Y)
	assert.Equal(t, 7, e.ViewportY)

	e.SetCursor(0)
	assert.Equal(t, 0, e.ViewportY)

	e.PageMove(1)
	assert.Equal(t, 4, e.GetCursor().Y)
	assert.Equal(t, 2, e.ViewportY)
}

func TestSetViewSize_StatusBarHeight(t *testing.T) {
	opts := DefaultOptions()
	opts.StatusBarHeight = 3
	e := NewEditor(buffer.NewFile(), opts)
	e.SetContent("1\n2\n3\n4\n5\n6\n7\n8\n9\n10")
	e.ScrollOff = 0

	e.SetViewSize(20, 8)
	assert.Equal(t, 5, e.ViewHeight())
	assert.Equal(t, 5, e.ViewportY, "last row stays above the status bar")

	e.SetViewSize(20, 2)
	assert.Zero(t, e.ViewHeight())
}
