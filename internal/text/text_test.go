package text

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/resolver/internal/types"
)

func pos(index, x, y int) types.Pos {
	return types.Pos{Index: index, X: x, Y: y}
}

func TestIndex(t *testing.T) {
	tests := []struct {
		text string
		idx  int
		want types.Pos
	}{
		{"", 0, pos(0, 0, 0)},
		{"", 5, pos(0, 0, 0)},
		{"H", 1, pos(1, 1, 0)},
		{"Hi", 2, pos(2, 2, 0)},
		{"Hi\n", 3, pos(3, 0, 1)},
		{"Hi\nT", 4, pos(4, 1, 1)},
		{"Hi\nTi", 5, pos(5, 2, 1)},
		{"Hi\nTim", 6, pos(6, 3, 1)},
		{"Hi\nTim\n", 7, pos(7, 0, 2)},
		{"Hi\nTim\n!", 8, pos(8, 1, 2)},
		{"🎉", 1, pos(1, 1, 0)},
		{"🎉!", 2, pos(2, 2, 0)},
		{"🎉!\n", 3, pos(3, 0, 1)},
		{"🎉!\nTim\n!", 8, pos(8, 1, 2)},
		{"Hello", 4, pos(4, 4, 0)},
		{"Hello", 99, pos(5, 5, 0)},
		{"Hello!\n", 6, pos(6, 6, 0)},
		{"Hello!\n", 7, pos(7, 0, 1)},
		{"Yo! 🤖", 4, pos(4, 4, 0)},
		{"Yo! 🤖!\n", 6, pos(6, 6, 0)},
		{"Yo! 🤖!\n", 7, pos(7, 0, 1)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NewWithString(100, tt.text).Index(tt.idx), "%q @ %d", tt.text, tt.idx)
	}
}

func TestIndex_Wrapped(t *testing.T) {
	x := NewWithString(8, "Hello there")
	assert.Equal(t, pos(5, 5, 0), x.Index(5))
	assert.Equal(t, pos(6, 0, 1), x.Index(6), "the swallowed space belongs to the first row")
	assert.Equal(t, pos(11, 5, 1), x.Index(11))

	full := NewWithString(5, "Hello")
	assert.Equal(t, pos(5, 0, 1), full.Index(5), "a full row moves the end onto the next row")
}

func TestMovement(t *testing.T) {
	type move func(*Text, int) types.Pos
	var (
		left  move = (*Text).Left
		right move = (*Text).Right
		up    move = (*Text).Up
		down  move = (*Text).Down
		home  move = (*Text).Home
		end   move = (*Text).End
	)

	tests := []struct {
		name string
		fn   move
		text string
		idx  int
		want types.Pos
	}{
		{"left", left, "Hello", 0, pos(0, 0, 0)},
		{"left", left, "Hello", 1, pos(0, 0, 0)},
		{"left", left, "Hello\n", 6, pos(5, 5, 0)},
		{"left", left, "Hello\nthere", 7, pos(6, 0, 1)},
		{"left", left, "Yo! 🤪\n", 6, pos(5, 5, 0)},
		{"left", left, "Yo! 🤪\nthere", 7, pos(6, 0, 1)},

		{"right", right, "Hello", 0, pos(1, 1, 0)},
		{"right", right, "Hello\n", 4, pos(5, 5, 0)},
		{"right", right, "Hello\n", 5, pos(6, 0, 1)},
		{"right", right, "Hello\n", 6, pos(6, 0, 1)},
		{"right", right, "Yo! 🤪\n", 4, pos(5, 5, 0)},
		{"right", right, "Yo! 🤪\n", 5, pos(6, 0, 1)},

		{"up", up, "Hello\n", 5, pos(0, 0, 0)},
		{"up", up, "Hello\n", 6, pos(0, 0, 0)},
		{"up", up, "Hello,\nto\nyourself", 7, pos(0, 0, 0)},
		{"up", up, "Hello,\nto\nyourself", 8, pos(1, 1, 0)},
		{"up", up, "Hello,\nto\nyourself", 13, pos(9, 2, 1)},
		{"up", up, "Hello,\nto\nyourself", 16, pos(9, 2, 1)},
		{"up", up, "Yo! 🤪,\nto\nyourself", 16, pos(9, 2, 1)},

		{"down", down, "", 0, pos(0, 0, 0)},
		{"down", down, "Hello", 0, pos(5, 5, 0)},
		{"down", down, "Hello", 1, pos(5, 5, 0)},
		{"down", down, "Hello\n", 5, pos(6, 0, 1)},
		{"down", down, "Hello\n", 6, pos(6, 0, 1)},
		{"down", down, "Hello,\nto\nyourself", 2, pos(9, 2, 1)},
		{"down", down, "Hello,\nZO\nyourself", 6, pos(9, 2, 1)},
		{"down", down, "Hello,\nto\nyourself", 18, pos(18, 8, 2)},
		{"down", down, "Yo! 🤪,\nto\nyourself", 2, pos(9, 2, 1)},

		{"home", home, "", 0, pos(0, 0, 0)},
		{"home", home, "Hello", 5, pos(0, 0, 0)},
		{"home", home, "Hello\n", 5, pos(0, 0, 0)},
		{"home", home, "Hello\n", 6, pos(6, 0, 1)},
		{"home", home, "Hello\nthere", 6, pos(6, 0, 1)},
		{"home", home, "Hello\nthere", 99, pos(6, 0, 1)},
		{"home", home, "Yo! 🤓\nthere", 99, pos(6, 0, 1)},

		{"end", end, "Hello", 0, pos(5, 5, 0)},
		{"end", end, "Hello\n", 5, pos(5, 5, 0)},
		{"end", end, "Hello\n", 6, pos(6, 0, 1)},
		{"end", end, "Hello\nthere", 6, pos(11, 5, 1)},
		{"end", end, "Hello\nthere", 99, pos(11, 5, 1)},
		{"end", end, "Yo! 🤓\nthere", 6, pos(11, 5, 1)},
	}

	for _, tt := range tests {
		got := tt.fn(NewWithString(100, tt.text), tt.idx)
		assert.Equal(t, tt.want, got, "%s(%q, %d)", tt.name, tt.text, tt.idx)
	}
}

func TestMovement_RaggedEdge(t *testing.T) {
	x := NewWithString(8, "Hello there monchambo")
	// Row 2 is "monchamb"; moving up from its last column clamps to "there".
	assert.Equal(t, pos(11, 5, 1), x.Up(19))
	assert.Equal(t, pos(15, 3, 2), x.Down(9))
}

func TestWordMotions(t *testing.T) {
	x := NewWithString(100, "Hello there")

	assert.Equal(t, pos(6, 6, 0), x.Word(0))
	assert.Equal(t, pos(11, 11, 0), x.Word(6))
	assert.Equal(t, pos(11, 11, 0), x.Word(11))

	assert.Equal(t, pos(5, 5, 0), x.EndOfWord(0))
	assert.Equal(t, pos(11, 11, 0), x.EndOfWord(5))

	assert.Equal(t, pos(6, 6, 0), x.StartOfWord(8))
	assert.Equal(t, pos(0, 0, 0), x.StartOfWord(6))
	assert.Equal(t, pos(0, 0, 0), x.StartOfWord(0))

	y := NewWithString(100, "one  🎉two\nthree")
	assert.Equal(t, pos(5, 5, 0), y.Word(0))
	assert.Equal(t, pos(10, 0, 1), y.Word(5))
	assert.Equal(t, pos(9, 9, 0), y.EndOfWord(5))
	assert.Equal(t, pos(5, 5, 0), y.StartOfWord(10))
}

func TestEditing(t *testing.T) {
	x := New(100)
	assert.Equal(t, pos(0, 0, 0), x.DeleteBackward())
	x.InsertText("Yo!!")
	assert.Equal(t, pos(3, 3, 0), x.DeleteBackward())
	x.InsertRune('\n')
	assert.Equal(t, pos(3, 3, 0), x.DeleteBackward())
	assert.Equal(t, "Yo!", x.String())

	x = New(100)
	x.InsertText("Helll")
	x.DeleteBackward()
	x.InsertText("o 😎 dude\nOk\n")
	assert.Equal(t, pos(16, 0, 2), x.Apply(types.Action{Movement: types.MoveRight}))

	x = New(100)
	x.InsertText("Hello 😎 ")
	x.DeleteBackward()
	x.DeleteBackward()
	assert.Equal(t, pos(6, 6, 0), x.Apply(types.Action{Movement: types.MoveRight}))

	x = New(100)
	x.Apply(types.Action{Movement: types.MoveDown})
	assert.Equal(t, pos(0, 0, 0), x.Apply(types.Action{Movement: types.MoveDown}))
}

func TestInsertAtLineBoundary(t *testing.T) {
	x := New(100)
	for _, r := range "Hello.\nÉpoustouflant!\nOk.\n" {
		x.InsertRune(r)
	}
	assert.Equal(t, pos(25, 3, 2), x.DeleteBackward())

	x.SetLoc(21)
	l, ok := x.lineWithIndex(x.Loc())
	require.True(t, ok)
	assert.Equal(t, ln(1, 7, 7, 22, 23, 14, 15, true), l)

	steps := []struct {
		r    rune
		loc  int
		text string
	}{
		{' ', 22, "Hello.\nÉpoustouflant! \nOk."},
		{'Z', 23, "Hello.\nÉpoustouflant! Z\nOk."},
		{'o', 24, "Hello.\nÉpoustouflant! Zo\nOk."},
		{'w', 25, "Hello.\nÉpoustouflant! Zow\nOk."},
		{'.', 26, "Hello.\nÉpoustouflant! Zow.\nOk."},
	}
	for _, s := range steps {
		x.InsertRune(s.r)
		assert.Equal(t, s.loc, x.Loc())
		assert.Equal(t, s.text, x.String())
	}
}

func TestOffsets(t *testing.T) {
	x := NewWithString(100, "A → B")
	l, ok := x.lineWithIndex(1)
	require.True(t, ok)
	assert.Equal(t, ln(0, 0, 0, 5, 7, 5, 7, false), l)

	x = NewWithString(100, "A → B, très bien")
	_, ok = x.lineWithIndex(16)
	assert.False(t, ok)
	_, ok = x.lineWithIndex(99)
	assert.False(t, ok)

	x = NewWithString(100, "A → B\ntrès bien")
	offsets := map[int]int{0: 0, 1: 1, 3: 5, 6: 8, 9: 12}
	for idx, want := range offsets {
		got, ok := x.offsetForIndex(idx)
		require.True(t, ok, idx)
		assert.Equal(t, want, got, idx)
		assert.Equal(t, idx, x.IndexForOffset(want))
	}
	_, ok = x.offsetForIndex(16)
	assert.False(t, ok)

	x = NewWithString(100, "Yo!\n")
	off, ok := x.offsetForIndex(3)
	assert.True(t, ok)
	assert.Equal(t, 3, off)
	_, ok = x.offsetForIndex(4)
	assert.False(t, ok)
	assert.Equal(t, 4, x.nextOffset())
}

func TestInsertBackspaceRoundTrip(t *testing.T) {
	for _, s := range []string{"", "Hello", "Hello\n", "A → B\ntrès bien", "Hello there monchambo", "😎 \n\n x"} {
		n := utf8.RuneCountInString(s)
		for idx := 0; idx <= n; idx++ {
			x := NewWithString(8, s)
			p := x.Insert(idx, 'é')
			assert.Equal(t, idx+1, p.Index)
			x.Backspace(p.Index)
			assert.Equal(t, s, x.String(), "%q @ %d", s, idx)
		}
	}
}

func TestLeftRightRoundTrip(t *testing.T) {
	for _, s := range []string{"Hello", "A → B\ntrès bien", "Hello there monchambo"} {
		x := NewWithString(8, s)
		for idx := 0; idx < x.Len(); idx++ {
			assert.Equal(t, idx, x.Left(x.Right(idx).Index).Index, "%q @ %d", s, idx)
		}
	}
}

func TestDeleteRange(t *testing.T) {
	x := NewWithString(100, "A → B, très bien")
	assert.Equal(t, pos(2, 2, 0), x.Delete(types.Range{Start: 5, End: 2}))
	assert.Equal(t, "A , très bien", x.String())

	assert.Equal(t, pos(13, 13, 0), x.Delete(types.Range{Start: 13, End: 99}))
	assert.Equal(t, "A , très bien", x.String())

	x.Delete(types.Range{Start: -4, End: 2})
	assert.Equal(t, ", très bien", x.String())
}

func TestSelection(t *testing.T) {
	x := NewWithString(100, "Hello there")

	_, ok := x.Selection()
	assert.False(t, ok)

	x.Apply(types.Action{Movement: types.MoveEndOfWord, Operation: types.OpSelect})
	x.Apply(types.Action{Movement: types.MoveEndOfWord, Operation: types.OpSelect})
	sel, ok := x.Selection()
	require.True(t, ok)
	assert.Equal(t, types.Range{Start: 0, End: 11}, sel)
	assert.Equal(t, "Hello there", x.Slice(sel))

	x.Select(types.Range{Start: 2, End: 4}, false)
	sel, _ = x.Selection()
	assert.Equal(t, types.Range{Start: 2, End: 4}, sel)
	x.Select(types.Range{Start: 8, End: 6}, true)
	sel, _ = x.Selection()
	assert.Equal(t, types.Range{Start: 2, End: 8}, sel)

	x.Apply(types.Action{Movement: types.MoveLeft})
	_, ok = x.Selection()
	assert.False(t, ok, "moving drops the selection")
	assert.Equal(t, 10, x.Loc())
}

func TestSelectionEditing(t *testing.T) {
	x := NewWithString(100, "Hello there")
	x.Select(types.Range{Start: 0, End: 5}, false)
	assert.Equal(t, pos(5, 5, 0), x.InsertText("Howdy"))
	assert.Equal(t, "Howdy there", x.String())

	x.Select(types.Range{Start: 5, End: 11}, false)
	x.DeleteBackward()
	assert.Equal(t, "Howdy", x.String())
	assert.Equal(t, 5, x.Loc())
}

func TestApplyDelete(t *testing.T) {
	x := NewWithString(100, "Hello there")
	x.SetLoc(0)
	assert.Equal(t, pos(0, 0, 0), x.Apply(types.Action{Movement: types.MoveWord, Operation: types.OpDelete}))
	assert.Equal(t, "there", x.String())

	x = NewWithString(100, "Hello there")
	x.SetLoc(11)
	assert.Equal(t, pos(6, 6, 0), x.Apply(types.Action{Movement: types.MoveStartOfWord, Operation: types.OpDelete}))
	assert.Equal(t, "Hello ", x.String())

	x = NewWithString(100, "one\ntwo")
	x.SetLoc(5)
	x.Apply(types.Action{Movement: types.MoveEndOfLine, Operation: types.OpDelete})
	assert.Equal(t, "one\nt", x.String())
}

func TestSetWidthReflows(t *testing.T) {
	x := NewWithString(100, "Hello there")
	require.Len(t, x.Lines(), 1)
	x.SetWidth(8)
	assert.Len(t, x.Lines(), 2)
	x.SetWidth(0)
	assert.Equal(t, 1, x.Width())
}

func TestParagraphs(t *testing.T) {
	x := NewWithString(8, "a = 1\nlonger words\n\nb")
	assert.Equal(t, []Paragraph{
		{Text: "a = 1", Boff: 0, FirstRow: 0, Rows: 1},
		{Text: "longer words", Boff: 6, FirstRow: 1, Rows: 2},
		{Text: "", Boff: 19, FirstRow: 3, Rows: 1},
		{Text: "b", Boff: 20, FirstRow: 4, Rows: 1},
	}, x.Paragraphs())

	assert.Empty(t, New(8).Paragraphs())
}
