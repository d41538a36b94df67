package config

import "time"

// Base application details
const AppName = "mailwright"
const Version = "0.1.0"
const ConfigDirName = "mailwright"
const ThemesDirName = "themes"
const DefaultThemeFileName = "theme.toml"   // Active theme file
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultLogFileName = "mailwright.log"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Editing defaults
const DefaultScrollOff = 3
const DefaultHistoryDepth = 100
const SystemClipboard = true

// DefaultMailLimit is the character budget the in-game mail box enforces
// on pasted markup, counted on the exported string, tags included.
const DefaultMailLimit = 2000
