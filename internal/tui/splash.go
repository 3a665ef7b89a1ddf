// internal/tui/splash.go
package tui

import (
	"github.com/bethropolis/resolver/internal/theme"
)

const splashTitle = " RESOLVER. The 'Soulver' in your terminal."

// SplashLines returns the welcome screen for an empty document, one
// string per row.
func SplashLines(height int, version string) []string {
	lines := make([]string, height)
	for i := range lines {
		lines[i] = "~"
		switch i {
		case 2:
			lines[i] += splashTitle
		case 3:
			lines[i] += " v" + version
		}
	}
	return lines
}

// DrawSplash draws the welcome screen below the first row, which still
// holds the empty document and its cursor.
func DrawSplash(t *TUI, viewHeight int, activeTheme *theme.Theme, version string) {
	width, _ := t.Size()
	tildeStyle := activeTheme.GetStyle("Tilde")
	splashStyle := activeTheme.GetStyle("Splash")

	for y, line := range SplashLines(viewHeight, version) {
		if y == 0 {
			continue
		}
		for x, r := range []rune(line) {
			if x >= width {
				break
			}
			style := splashStyle
			if x == 0 {
				style = tildeStyle
			}
			t.screen.SetContent(x, y, r, nil, style)
		}
	}
}
