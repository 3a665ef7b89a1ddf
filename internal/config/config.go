// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/bethropolis/resolver/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger  logger.Config             `toml:"logger"`
	Editor  EditorConfig              `toml:"editor"`
	Calc    CalcConfig                `toml:"calc"`
	Theme   ThemeConfig               `toml:"theme"`
	Plugins map[string]map[string]any `toml:"plugins"` // [plugins.<name>] tables
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	WrapWidth       int  `toml:"wrap_width"` // 0 derives the width from the terminal
	Gutter          bool `toml:"gutter"`
	ScrollOff       int  `toml:"scroll_off"`
	SystemClipboard bool `toml:"system_clipboard"`
	MaxHistory      int  `toml:"max_history"`
	StatusBarHeight int  `toml:"status_bar_height"`
}

// CalcConfig holds evaluation settings.
type CalcConfig struct {
	Fractions bool               `toml:"fractions"` // render exact eighths as fractions
	Constants map[string]float64 `toml:"constants"` // bound in every evaluation pass
}

// ThemeConfig selects the active theme.
type ThemeConfig struct {
	Name string `toml:"name"` // built-in theme name
	File string `toml:"file"` // optional TOML theme file, wins over Name
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			Gutter:          DefaultGutter,
			ScrollOff:       DefaultScrollOff,
			SystemClipboard: SystemClipboard,
			MaxHistory:      DefaultMaxHistory,
			StatusBarHeight: StatusBarHeight,
		},
		Calc: CalcConfig{
			Fractions: DefaultFractions,
		},
		Theme: ThemeConfig{
			Name: DefaultThemeName,
		},
	}
}

// DefaultPath returns the config file location under the user's config directory.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName)
}

// loadFromFile decodes filePath over cfg, so keys missing from the file keep
// cfg's values. A missing file is not an error.
// It returns the keys the file set that Config does not know.
func loadFromFile(filePath string, cfg *Config) ([]string, error) {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	var undecoded []string
	for _, key := range metadata.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	return undecoded, nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.WrapWidth < 0 {
		c.Editor.WrapWidth = defaults.Editor.WrapWidth
	}
	if c.Editor.ScrollOff < 0 { // Allow 0
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	if c.Editor.MaxHistory <= 0 {
		c.Editor.MaxHistory = defaults.Editor.MaxHistory
	}
	if c.Editor.StatusBarHeight <= 0 {
		c.Editor.StatusBarHeight = defaults.Editor.StatusBarHeight
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if c.Theme.Name == "" {
		c.Theme.Name = defaults.Theme.Name
	}
}

// Load builds a configuration from defaults, the file at path (or the
// default location when empty) and flag overrides, then validates it.
// Unknown keys in the file are logged once the logger is up, so they are
// returned rather than logged here.
func Load(path string, flags *Flags) (*Config, []string, error) {
	cfg := NewDefaultConfig()

	if path == "" {
		path = DefaultPath()
	}
	var undecoded []string
	if path != "" {
		var err error
		undecoded, err = loadFromFile(path, cfg)
		if err != nil {
			return cfg, nil, err
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, undecoded, nil
}

// PluginValue returns a single setting from the [plugins.<name>] table.
func (c *Config) PluginValue(plugin, key string) (any, bool) {
	table, ok := c.Plugins[plugin]
	if !ok {
		return nil, false
	}
	v, ok := table[key]
	return v, ok
}

// WrapWidth returns the effective text column width for a terminal of
// the given width.
func (c *Config) WrapWidth(termWidth int) int {
	if c.Editor.WrapWidth > 0 {
		return c.Editor.WrapWidth
	}
	gutter := 0
	if c.Editor.Gutter {
		gutter = GutterWidth
	}
	w := int(float64(termWidth)*WrapRatio) - gutter
	return max(w, 1)
}

// GutterWidth is the number of columns used by line numbers.
const GutterWidth = 5
