// internal/text/layout.go
package text

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Line describes one visual row produced by Layout.
//
// Coff/Boff and Cext/Bext bound the region of the text the row consumes,
// in codepoints and bytes. Chars/Bytes measure the part that is displayed,
// which is shorter than the consumed region when whitespace at a soft
// break is swallowed. Hard is set when the row ends at a newline.
type Line struct {
	Num   int
	Coff  int
	Boff  int
	Cext  int
	Bext  int
	Chars int
	Bytes int
	Hard  bool
}

// Text returns the displayed part of the row within s.
func (l Line) Text(s string) string {
	end := min(l.Boff+l.Bytes, len(s))
	if l.Boff >= end {
		return ""
	}
	return s[l.Boff:end]
}

// Width is the number of codepoints the row consumes.
func (l Line) Width() int { return l.Cext - l.Coff }

// Right is the index just past the row's last displayed codepoint.
func (l Line) Right() int { return l.Coff + l.Chars }

// Contains reports whether the codepoint index idx falls within the row.
func (l Line) Contains(idx int) bool { return idx >= l.Coff && idx < l.Cext }

func (l Line) String() string {
	return fmt.Sprintf("{%d %d/%d..%d/%d %d/%d %v}", l.Num, l.Coff, l.Boff, l.Cext, l.Bext, l.Chars, l.Bytes, l.Hard)
}

// Layout word-wraps s at width codepoints.
//
// A row closes at a newline or once it holds width codepoints. A soft break
// happens at the last whitespace boundary on the row, or mid-word when the
// row has none; whitespace after the break is consumed by the row so the
// next row does not start with it. The rows partition s without gaps.
func Layout(s string, width int) []Line {
	if width < 1 {
		width = 1
	}

	var (
		lines  []Line
		lc, lb int  // current row width so far
		wc, wb int  // last whitespace boundary, the candidate break
		rc, rb int  // last non-whitespace boundary, the candidate consumption
		ac, ab int  // absolute offset of the current row
		ly     int  // row number
		p      rune // previous codepoint, 0 at the start of a row
	)

	for i := 0; i < len(s); {
		c, n := utf8.DecodeRuneInString(s[i:])
		i += n

		hard := c == '\n'
		switch {
		case hard:
			if !isSpace(p) {
				rc, rb = lc, lb
			}
			wc, wb = lc, lb
		case isSpace(c) && !isSpace(p):
			wc, wb = lc, lb
		case !isSpace(c) && isSpace(p):
			rc, rb = lc, lb
		}

		lc++
		lb += n

		if !hard && lc < width {
			p = c
			continue
		}

		bc, bb := lc, lb
		if hard || wc > 0 {
			bc, bb = wc, wb
		}
		// Swallow the whitespace after the break only when a word follows
		// it on this row; a row ending in whitespace consumes all of it.
		cc, cb := lc, lb
		if !hard && wc > 0 && rc > wc {
			cc, cb = rc, rb
		}

		lines = append(lines, Line{
			Num:   ly,
			Coff:  ac,
			Boff:  ab,
			Cext:  ac + cc,
			Bext:  ab + cb,
			Chars: bc,
			Bytes: bb,
			Hard:  hard,
		})

		ly++
		ac += cc
		ab += cb
		lc -= cc
		lb -= cb
		wc, wb, rc, rb = 0, 0, 0, 0
		p = 0
	}

	if lc > 0 {
		lines = append(lines, Line{
			Num:   ly,
			Coff:  ac,
			Boff:  ab,
			Cext:  ac + lc,
			Bext:  ab + lb,
			Chars: lc,
			Bytes: lb,
		})
	}
	return lines
}

// isSpace treats the 0 sentinel as a boundary that is not whitespace.
func isSpace(c rune) bool {
	return c != 0 && unicode.IsSpace(c)
}
