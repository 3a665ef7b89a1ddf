// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/resolver/internal/logger"
	"github.com/bethropolis/resolver/internal/text"
)

// Theme maps style names to tcell styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the named style. A dotted name falls back to the part
// before the first dot, then to "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName := name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, using base '%s'", t.Name, name, baseName)
			return style
		}
	}

	if defStyle, ok := t.Styles["Default"]; ok {
		if name != "Default" {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// StyleFor maps highlight attributes onto the theme. Colours are looked up
// as "color.<name>" so themes can retint the clause palette.
func (t *Theme) StyleFor(a text.Attributes) tcell.Style {
	style := t.GetStyle("Default")
	if a.Color != text.ColorDefault {
		style = t.GetStyle("color." + strings.ToLower(a.Color.String()))
	}
	if a.Bold {
		style = style.Bold(true)
	}
	return style
}

// ColorStyleNames lists the style names StyleFor reads, in text.Color order.
var ColorStyleNames = []string{
	"color.black", "color.red", "color.green", "color.yellow",
	"color.blue", "color.magenta", "color.cyan", "color.white",
}

// Built-in themes.
var (
	ResolverDark  Theme
	ResolverLight Theme
)

func init() {
	// --- Palette for Resolver Dark ---
	rdBar := tcell.NewHexColor(0x2a2f38)
	rdForeground := tcell.NewHexColor(0xc5cdd9)
	rdMuted := tcell.NewHexColor(0x5c6370)
	rdRed := tcell.NewHexColor(0xe06c75)
	rdGreen := tcell.NewHexColor(0x98c379)
	rdYellow := tcell.NewHexColor(0xe5c07b)
	rdBlue := tcell.NewHexColor(0x61afef)
	rdMagenta := tcell.NewHexColor(0xc678dd)
	rdCyan := tcell.NewHexColor(0x56b6c2)

	// Terminal background, soft foreground.
	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(rdForeground)

	ResolverDark = Theme{
		Name:   "Resolver Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			// --- UI Elements ---
			"Default":   base,
			"Selection": base.Reverse(true),
			"Gutter":    base.Foreground(rdMuted),
			"Result":    base,
			"Splash":    base.Foreground(rdMuted),
			"Tilde":     base.Foreground(rdBlue),

			"StatusBar":         tcell.StyleDefault.Background(rdBar).Foreground(rdForeground),
			"StatusBarModified": tcell.StyleDefault.Background(rdBar).Foreground(rdYellow),
			"StatusBarMessage":  tcell.StyleDefault.Background(rdBar).Foreground(rdForeground).Bold(true),
			"StatusBarMode":     tcell.StyleDefault.Background(rdRed).Foreground(tcell.ColorBlack).Bold(true),

			// --- Clause palette ---
			"color.black":   base.Foreground(rdMuted),
			"color.red":     base.Foreground(rdRed),
			"color.green":   base.Foreground(rdGreen),
			"color.yellow":  base.Foreground(rdYellow),
			"color.blue":    base.Foreground(rdBlue),
			"color.magenta": base.Foreground(rdMagenta),
			"color.cyan":    base.Foreground(rdCyan),
			"color.white":   base.Foreground(tcell.ColorWhite),
		},
	}

	// --- Resolver Light uses the terminal's own palette ---
	lbase := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorBlack)

	ResolverLight = Theme{
		Name:   "Resolver Light",
		IsDark: false,
		Styles: map[string]tcell.Style{
			"Default":   lbase,
			"Selection": lbase.Reverse(true),
			"Gutter":    lbase.Foreground(tcell.ColorGray),
			"Result":    lbase,
			"Splash":    lbase.Foreground(tcell.ColorGray),
			"Tilde":     lbase.Foreground(tcell.ColorNavy),

			"StatusBar":         tcell.StyleDefault.Background(tcell.ColorSilver).Foreground(tcell.ColorBlack),
			"StatusBarModified": tcell.StyleDefault.Background(tcell.ColorSilver).Foreground(tcell.ColorMaroon),
			"StatusBarMessage":  tcell.StyleDefault.Background(tcell.ColorSilver).Foreground(tcell.ColorBlack).Bold(true),
			"StatusBarMode":     tcell.StyleDefault.Background(tcell.ColorMaroon).Foreground(tcell.ColorWhite).Bold(true),

			"color.black":   lbase.Foreground(tcell.ColorBlack),
			"color.red":     lbase.Foreground(tcell.ColorMaroon),
			"color.green":   lbase.Foreground(tcell.ColorGreen),
			"color.yellow":  lbase.Foreground(tcell.ColorOlive),
			"color.blue":    lbase.Foreground(tcell.ColorNavy),
			"color.magenta": lbase.Foreground(tcell.ColorPurple),
			"color.cyan":    lbase.Foreground(tcell.ColorTeal),
			"color.white":   lbase.Foreground(tcell.ColorGray),
		},
	}
}
