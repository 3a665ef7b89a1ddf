// internal/config/flags.go
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Flags holds values bound to command-line flags.
// Only flags the user actually set override the configuration file.
type Flags struct {
	set *pflag.FlagSet

	ConfigFilePath  string
	LogLevel        string
	LogFilePath     string
	WrapWidth       int
	ScrollOff       int
	NoGutter        bool
	NoFractions     bool
	SystemClipboard bool
	Theme           string
	EnableTags      []string
	DisableTags     []string
	EnablePkgs      []string
	DisablePkgs     []string
	EnableFiles     []string
	DisableFiles    []string
}

// DefineFlags binds the flags on fs. Persistent flags of the root command
// are used so subcommands share them.
func (f *Flags) DefineFlags(fs *pflag.FlagSet) {
	f.set = fs
	fs.StringVarP(&f.ConfigFilePath, "config", "c", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", AppName, DefaultConfigFileName))
	fs.StringVar(&f.LogLevel, "loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	fs.StringVar(&f.LogFilePath, "logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	fs.IntVarP(&f.WrapWidth, "width", "w", 0, "Wrap width of the text column - Overrides config file")
	fs.IntVar(&f.ScrollOff, "scrolloff", 0, "Lines of context above/below cursor - Overrides config file")
	fs.BoolVar(&f.NoGutter, "no-gutter", false, "Hide line numbers")
	fs.BoolVar(&f.NoFractions, "no-fractions", false, "Show results as decimals instead of eighths")
	fs.BoolVar(&f.SystemClipboard, "system-clipboard", false, "Use system clipboard instead of internal clipboard")
	fs.StringVar(&f.Theme, "theme", "", "Built-in theme name - Overrides config file")
	fs.StringSliceVar(&f.EnableTags, "log-tags", nil, "Comma-separated list of tags to enable")
	fs.StringSliceVar(&f.DisableTags, "log-disable-tags", nil, "Comma-separated list of tags to disable")
	fs.StringSliceVar(&f.EnablePkgs, "log-packages", nil, "Comma-separated list of packages to enable")
	fs.StringSliceVar(&f.DisablePkgs, "log-disable-packages", nil, "Comma-separated list of packages to disable")
	fs.StringSliceVar(&f.EnableFiles, "log-files", nil, "Comma-separated list of files to enable")
	fs.StringSliceVar(&f.DisableFiles, "log-disable-files", nil, "Comma-separated list of files to disable")
}

// ApplyOverrides updates cfg with values from flags *if* they were set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	if f.set == nil {
		return
	}
	// Visit only processes flags that were actually set
	f.set.Visit(func(fl *pflag.Flag) {
		switch fl.Name {
		case "loglevel":
			if f.LogLevel != "" {
				cfg.Logger.LogLevel = f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = f.LogFilePath
		case "width":
			if f.WrapWidth > 0 {
				cfg.Editor.WrapWidth = f.WrapWidth
			}
		case "scrolloff":
			if f.ScrollOff >= 0 {
				cfg.Editor.ScrollOff = f.ScrollOff
			}
		case "no-gutter":
			cfg.Editor.Gutter = !f.NoGutter
		case "no-fractions":
			cfg.Calc.Fractions = !f.NoFractions
		case "system-clipboard":
			cfg.Editor.SystemClipboard = f.SystemClipboard
		case "theme":
			if f.Theme != "" {
				cfg.Theme.Name = f.Theme
				cfg.Theme.File = ""
			}
		case "log-tags":
			cfg.Logger.EnabledTags = cleanList(f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = cleanList(f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = cleanList(f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = cleanList(f.DisablePkgs)
		case "log-files":
			cfg.Logger.EnabledFiles = cleanList(f.EnableFiles)
		case "log-disable-files":
			cfg.Logger.DisabledFiles = cleanList(f.DisableFiles)
		}
	})
}

// cleanList trims entries and drops empty ones.
func cleanList(items []string) []string {
	result := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
