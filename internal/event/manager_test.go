package event

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bethropolis/resolver/internal/types"
)

func TestDispatchInOrder(t *testing.T) {
	m := NewManager()
	var got []string
	m.Subscribe(TypeCursorMoved, func(e Event) bool {
		got = append(got, "first")
		assert.Equal(t, CursorMovedData{NewPosition: types.Pos{Index: 3, X: 3}}, e.Data)
		return false
	})
	m.Subscribe(TypeCursorMoved, func(e Event) bool {
		got = append(got, "second")
		return false
	})

	m.Dispatch(TypeCursorMoved, CursorMovedData{NewPosition: types.Pos{Index: 3, X: 3}})
	assert.Equal(t, []string{"first", "second"}, got)
}

func TestDispatchStopsWhenConsumed(t *testing.T) {
	m := NewManager()
	calls := 0
	m.Subscribe(TypeBufferSaved, func(Event) bool { calls++; return true })
	m.Subscribe(TypeBufferSaved, func(Event) bool { calls++; return false })

	m.Dispatch(TypeBufferSaved, BufferSavedData{FilePath: "sheet.txt"})
	assert.Equal(t, 1, calls)
}

func TestDispatchWithoutHandlers(t *testing.T) {
	m := NewManager()
	assert.NotPanics(t, func() { m.Dispatch(TypeAppQuit, AppQuitData{}) })
}

func TestSubscribeDuringDispatch(t *testing.T) {
	m := NewManager()
	calls := 0
	m.Subscribe(TypeAppReady, func(Event) bool {
		calls++
		m.Subscribe(TypeAppReady, func(Event) bool { calls++; return false })
		return false
	})

	m.Dispatch(TypeAppReady, AppReadyData{})
	assert.Equal(t, 1, calls)
	m.Dispatch(TypeAppReady, AppReadyData{})
	assert.Equal(t, 3, calls)
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "SheetEvaluated", TypeSheetEvaluated.String())
	assert.Equal(t, "Unknown", Type(99).String())
}
