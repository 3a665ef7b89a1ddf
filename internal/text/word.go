// internal/text/word.go
package text

import (
	"unicode/utf8"

	"github.com/bethropolis/resolver/internal/types"
)

// Boundary predicates look at the codepoint before a position and the one
// at it. 0 stands for the start or end of the text.

// matchWord is true where a run of non-whitespace begins.
func matchWord(prev, cur rune) bool {
	return (prev == 0 || isSpace(prev)) && cur != 0 && !isSpace(cur)
}

// matchWordBoundary is true where a run of non-whitespace ends.
func matchWordBoundary(prev, cur rune) bool {
	return prev != 0 && !isSpace(prev) && (cur == 0 || isSpace(cur))
}

// findFwd returns the first index after idx where match holds, or the
// length of the text.
func (t *Text) findFwd(idx int, match func(prev, cur rune) bool) int {
	n := t.Len()
	idx = max(idx, 0)
	if idx >= n {
		return n
	}
	off := t.byteOffset(idx)
	prev, size := utf8.DecodeRuneInString(t.text[off:])
	off += size
	for j := idx + 1; j <= n; j++ {
		var cur rune
		size = 0
		if off < len(t.text) {
			cur, size = utf8.DecodeRuneInString(t.text[off:])
		}
		if match(prev, cur) {
			return j
		}
		prev = cur
		off += size
	}
	return n
}

// findRev returns the last index before idx where match holds, or 0.
func (t *Text) findRev(idx int, match func(prev, cur rune) bool) int {
	idx = t.clamp(idx)
	if idx == 0 {
		return 0
	}
	off := t.byteOffset(idx)
	cur, size := utf8.DecodeLastRuneInString(t.text[:off])
	off -= size
	for j := idx - 1; j > 0; j-- {
		prev, psize := utf8.DecodeLastRuneInString(t.text[:off])
		if match(prev, cur) {
			return j
		}
		cur = prev
		off -= psize
	}
	return 0
}

// Word moves to the start of the next word.
func (t *Text) Word(idx int) types.Pos {
	return t.Index(t.findFwd(idx, matchWord))
}

// StartOfWord moves to the start of the word before idx.
func (t *Text) StartOfWord(idx int) types.Pos {
	return t.Index(t.findRev(idx, matchWord))
}

// EndOfWord moves to the end of the word at or after idx.
func (t *Text) EndOfWord(idx int) types.Pos {
	return t.Index(t.findFwd(idx, matchWordBoundary))
}
