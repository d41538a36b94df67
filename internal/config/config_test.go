// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.Equal(t, "info", cfg.Logger.LogLevel)
	assert.Equal(t, DefaultScrollOff, cfg.Editor.ScrollOff)
	assert.Equal(t, DefaultHistoryDepth, cfg.Editor.HistoryDepth)
	assert.Equal(t, DefaultMailLimit, cfg.Editor.MailLimit)
	assert.True(t, cfg.Editor.SystemClipboard)
	assert.Empty(t, cfg.Palette.Swatches)
}

func TestValidateResetsInvalidValues(t *testing.T) {
	cfg := &Config{}
	cfg.Editor.ScrollOff = -5
	cfg.Editor.HistoryDepth = 0
	cfg.Editor.MailLimit = -1
	cfg.validate()

	assert.Equal(t, DefaultScrollOff, cfg.Editor.ScrollOff)
	assert.Equal(t, StatusBarHeight, cfg.Editor.StatusBarHeight)
	assert.Equal(t, DefaultHistoryDepth, cfg.Editor.HistoryDepth)
	assert.Equal(t, 0, cfg.Editor.MailLimit)
	assert.Equal(t, "info", cfg.Logger.LogLevel)
}

func TestLoadFromFileMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[editor]
scroll_off = 7
mail_limit = 500

[palette]
swatches = ["#112233", "#abcdef"]

[logger]
log_level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg := NewDefaultConfig()
	require.NoError(t, loadFromFile(path, cfg, false))

	assert.Equal(t, 7, cfg.Editor.ScrollOff)
	assert.Equal(t, 500, cfg.Editor.MailLimit)
	// Keys the file omits keep their defaults.
	assert.Equal(t, DefaultHistoryDepth, cfg.Editor.HistoryDepth)
	assert.Equal(t, StatusBarHeight, cfg.Editor.StatusBarHeight)
	assert.Equal(t, []string{"#112233", "#abcdef"}, cfg.Palette.Swatches)
	assert.Equal(t, "debug", cfg.Logger.LogLevel)
}

func TestLoadFromFileMissingFileIsNoError(t *testing.T) {
	cfg := NewDefaultConfig()
	require.NoError(t, loadFromFile(filepath.Join(t.TempDir(), "nope.toml"), cfg, false))
	assert.Equal(t, DefaultScrollOff, cfg.Editor.ScrollOff)
}

func TestLoadFromFileBadTomlErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("editor = [not toml"), 0o644))
	cfg := NewDefaultConfig()
	require.Error(t, loadFromFile(path, cfg, false))
}

func TestSplitCommaList(t *testing.T) {
	assert.Nil(t, splitCommaList(""))
	assert.Equal(t, []string{"a", "b"}, splitCommaList("a,b"))
	assert.Equal(t, []string{"a", "b"}, splitCommaList(" a , b "))
	assert.Equal(t, []string{"a"}, splitCommaList("a,,"))
}
