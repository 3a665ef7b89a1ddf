package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/resolver/internal/text"
)

func TestGetStyle_Fallbacks(t *testing.T) {
	th := &Theme{
		Name: "test",
		Styles: map[string]tcell.Style{
			"Default": tcell.StyleDefault.Foreground(tcell.ColorWhite),
			"color":   tcell.StyleDefault.Foreground(tcell.ColorGray),
			"Gutter":  tcell.StyleDefault.Foreground(tcell.ColorBlue),
		},
	}

	assert.Equal(t, th.Styles["Gutter"], th.GetStyle("Gutter"))
	assert.Equal(t, th.Styles["color"], th.GetStyle("color.red"))
	assert.Equal(t, th.Styles["Default"], th.GetStyle("Result"))

	empty := &Theme{Name: "empty"}
	assert.Equal(t, tcell.StyleDefault, empty.GetStyle("Result"))
}

func TestStyleFor(t *testing.T) {
	th := &ResolverDark

	plain := th.StyleFor(text.Attributes{})
	assert.Equal(t, th.GetStyle("Default"), plain)

	bold := th.StyleFor(text.Attributes{Bold: true, Color: text.ColorYellow})
	fg, _, attrs := bold.Decompose()
	wantFg, _, _ := th.Styles["color.yellow"].Decompose()
	assert.Equal(t, wantFg, fg)
	assert.NotZero(t, attrs&tcell.AttrBold)
}

func TestBuiltinsDefinePalette(t *testing.T) {
	for _, th := range []*Theme{&ResolverDark, &ResolverLight} {
		for _, name := range ColorStyleNames {
			_, ok := th.Styles[name]
			assert.True(t, ok, "%s lacks %s", th.Name, name)
		}
		for _, name := range []string{"Default", "Selection", "Gutter", "Result", "StatusBar", "StatusBarMessage", "StatusBarMode"} {
			_, ok := th.Styles[name]
			assert.True(t, ok, "%s lacks %s", th.Name, name)
		}
	}
}

const sampleTheme = `
name = "Paper"
is_dark = false

[styles.Default]
fg = "#101010"
bg = "white"

[styles."color.yellow"]
fg = "olive"
bold = true

[styles.Gutter]
fg = "nope"

[extra]
x = 1
`

func TestLoadTheme(t *testing.T) {
	th, err := LoadTheme(strings.NewReader(sampleTheme), "fallback")
	require.NoError(t, err)

	assert.Equal(t, "Paper", th.Name)
	assert.False(t, th.IsDark)

	fg, bg, _ := th.Styles["Default"].Decompose()
	assert.Equal(t, tcell.NewHexColor(0x101010), fg)
	assert.Equal(t, tcell.ColorWhite, bg)

	// Inherits the background from Default.
	fg, bg, attrs := th.Styles["color.yellow"].Decompose()
	assert.Equal(t, tcell.ColorOlive, fg)
	assert.Equal(t, tcell.ColorWhite, bg)
	assert.NotZero(t, attrs&tcell.AttrBold)

	_, ok := th.Styles["Gutter"]
	assert.False(t, ok, "unparseable style is skipped")
}

func TestLoadTheme_Invalid(t *testing.T) {
	_, err := LoadTheme(strings.NewReader("name = "), "x")
	assert.Error(t, err)
}

func TestParseColorString(t *testing.T) {
	tests := []struct {
		in      string
		want    tcell.Color
		wantErr bool
	}{
		{"#ff0000", tcell.NewHexColor(0xff0000), false},
		{" #FF0000 ", tcell.NewHexColor(0xff0000), false},
		{"reset", tcell.ColorReset, false},
		{"default", tcell.ColorDefault, false},
		{"Navy", tcell.ColorNavy, false},
		{"#fff", tcell.ColorDefault, true},
		{"#gggggg", tcell.ColorDefault, true},
		{"blurple", tcell.ColorDefault, true},
	}
	for _, tt := range tests {
		got, err := parseColorString(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestManager(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "paper.toml"), []byte(sampleTheme), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unnamed.toml"), []byte("[styles.Default]\nfg = \"red\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.toml"), []byte("name = "), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	mgr := NewManager(dir)
	assert.Equal(t, "Resolver Dark", mgr.Current().Name)
	assert.Equal(t, []string{"Paper", "Resolver Dark", "Resolver Light", "unnamed"}, mgr.ListThemes())

	require.NoError(t, mgr.SetTheme("paper"))
	assert.Equal(t, "Paper", mgr.Current().Name)

	assert.Error(t, mgr.SetTheme("missing"))
	assert.Equal(t, "Paper", mgr.Current().Name)

	_, ok := mgr.GetTheme("RESOLVER LIGHT")
	assert.True(t, ok)
}

func TestManager_MissingDir(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "nope"))
	assert.Equal(t, []string{"Resolver Dark", "Resolver Light"}, mgr.ListThemes())
}

func TestManager_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paper.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTheme), 0o644))

	mgr := NewManager("")
	require.NoError(t, mgr.LoadFile(path))
	assert.Equal(t, "Paper", mgr.Current().Name)

	assert.Error(t, mgr.LoadFile(filepath.Join(t.TempDir(), "missing.toml")))
}
