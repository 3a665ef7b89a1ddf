package config

import "time"

// Base application details
const AppName = "resolver"
const ThemesDirName = "themes"
const DefaultConfigFileName = "config.toml"

// UI Layout
const StatusBarHeight = 1
const DefaultGutter = true

// WrapRatio is the share of the terminal width given to the text column
// when wrap_width is not set.
const WrapRatio = 2.0 / 3.0

// Status Bar
const MessageTimeout = 4 * time.Second

const DefaultScrollOff = 3
const SystemClipboard = false
const DefaultMaxHistory = 100
const DefaultFractions = true
const DefaultThemeName = "Resolver Dark"

// Version is the application version, overridable at link time.
var Version = "0.1.0"
