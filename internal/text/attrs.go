// internal/text/attrs.go
package text

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/bethropolis/resolver/internal/types"
)

// Color is a foreground color from the basic terminal palette.
type Color int

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

var colorNames = [...]string{
	ColorDefault: "Default",
	ColorBlack:   "Black",
	ColorRed:     "Red",
	ColorGreen:   "Green",
	ColorYellow:  "Yellow",
	ColorBlue:    "Blue",
	ColorMagenta: "Magenta",
	ColorCyan:    "Cyan",
	ColorWhite:   "White",
}

func (c Color) String() string {
	if c >= 0 && int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "Default"
}

var ansiColors = map[Color]ansi.BasicColor{
	ColorBlack:   ansi.Black,
	ColorRed:     ansi.Red,
	ColorGreen:   ansi.Green,
	ColorYellow:  ansi.Yellow,
	ColorBlue:    ansi.Blue,
	ColorMagenta: ansi.Magenta,
	ColorCyan:    ansi.Cyan,
	ColorWhite:   ansi.White,
}

// Attributes style a run of text.
type Attributes struct {
	Bold  bool
	Color Color
}

// Span applies Attrs to a byte range of a text.
type Span struct {
	Range types.Range
	Attrs Attributes
}

// Attributed is a text with highlight spans over it.
type Attributed struct {
	Text  string
	Spans []Span
}

// Mode selects how Render encodes attributes.
type Mode int

const (
	ModePlain    Mode = iota // attributes dropped
	ModeTerminal             // ANSI SGR sequences
	ModeMarkup               // <b><Color>...</Color></b> tags
)

// Render writes s with spans applied. Spans are byte ranges into s; they
// are applied in order of their start and never overlap in the output.
func Render(s string, spans []Span, mode Mode) string {
	if mode == ModePlain || len(spans) == 0 {
		return s
	}

	var b strings.Builder
	x := 0
	for _, sp := range sortedSpans(spans) {
		start := min(max(sp.Range.Start, x), len(s))
		end := min(sp.Range.End, len(s))
		if start >= end {
			continue
		}
		b.WriteString(s[x:start])
		writeStyled(&b, s[start:end], sp.Attrs, mode)
		x = end
	}
	b.WriteString(s[x:])
	return b.String()
}

// Render encodes the attributed text in the given mode.
func (a Attributed) Render(mode Mode) string {
	return Render(a.Text, a.Spans, mode)
}

func writeStyled(b *strings.Builder, s string, a Attributes, mode Mode) {
	switch mode {
	case ModeMarkup:
		if a.Bold {
			b.WriteString("<b>")
		}
		if a.Color != ColorDefault {
			b.WriteString("<" + a.Color.String() + ">")
		}
		b.WriteString(s)
		if a.Color != ColorDefault {
			b.WriteString("</" + a.Color.String() + ">")
		}
		if a.Bold {
			b.WriteString("</b>")
		}
	case ModeTerminal:
		var style ansi.Style
		if a.Bold {
			style = style.Bold()
		}
		if c, ok := ansiColors[a.Color]; ok {
			style = style.ForegroundColor(c)
		}
		b.WriteString(style.String())
		b.WriteString(s)
		b.WriteString(ansi.ResetStyle)
	default:
		b.WriteString(s)
	}
}

// clipSpans returns the parts of spans inside [start, end), shifted so
// that start becomes 0.
func clipSpans(spans []Span, start, end int) []Span {
	var out []Span
	for _, sp := range spans {
		s := max(sp.Range.Start, start)
		e := min(sp.Range.End, end)
		if s >= e {
			continue
		}
		out = append(out, Span{Range: types.Range{Start: s - start, End: e - start}, Attrs: sp.Attrs})
	}
	return out
}
