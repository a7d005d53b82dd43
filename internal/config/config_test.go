package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "", cfg.Paths.Colors)
	assert.Equal(t, "plain", cfg.List.Format)
	assert.Equal(t, 250*time.Millisecond, cfg.Watch.Debounce.Std())
	assert.True(t, cfg.TUI.ShowHelp)
	assert.Equal(t, "", cfg.Clipboard.Command)
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	// Use a path that doesn't exist
	cfg, err := LoadConfig("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().List.Format, cfg.List.Format)
}

func TestLoadConfig_ParsesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[paths]
colors = "/home/me/palette.json"

[list]
format = "json"

[watch]
debounce = "1s"

[tui]
show_help = false

[clipboard]
command = "xclip"
`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/home/me/palette.json", cfg.Paths.Colors)
	assert.Equal(t, "json", cfg.List.Format)
	assert.Equal(t, time.Second, cfg.Watch.Debounce.Std())
	assert.False(t, cfg.TUI.ShowHelp)
	assert.Equal(t, "xclip", cfg.Clipboard.Command)
}

func TestLoadConfig_PartialConfig(t *testing.T) {
	// Create a config with only some fields
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[paths]
colors = "palette.yaml"
`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// Changed field
	assert.Equal(t, "palette.yaml", cfg.Paths.Colors)

	// Unchanged fields should have defaults
	assert.Equal(t, "plain", cfg.List.Format)
	assert.Equal(t, 250*time.Millisecond, cfg.Watch.Debounce.Std())
	assert.True(t, cfg.TUI.ShowHelp)
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `this is not valid toml [`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestConfig_Save(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subdir", "config.toml")

	cfg := DefaultConfig()
	cfg.Paths.Colors = "/tmp/palette.json"
	cfg.List.Format = "json"

	err := cfg.Save(path)
	require.NoError(t, err)

	// Verify file was created
	_, err = os.Stat(path)
	require.NoError(t, err)

	// Reload and verify
	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/palette.json", loaded.Paths.Colors)
	assert.Equal(t, "json", loaded.List.Format)
}

func TestConfigPath(t *testing.T) {
	t.Run("uses XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		assert.Equal(t, "/custom/config/themebind/config.toml", ConfigPath())
	})

	t.Run("falls back to home directory", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", "/home/tester")
		assert.Equal(t, "/home/tester/.config/themebind/config.toml", ConfigPath())
	})
}

func TestDurationUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"duration string", "500ms", 500 * time.Millisecond, false},
		{"compound duration", "1m30s", 90 * time.Second, false},
		{"plain integer is milliseconds", "250", 250 * time.Millisecond, false},
		{"zero", "0", 0, false},
		{"garbage", "soon", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d.Std())
		})
	}
}
