// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultListFormat    = "plain"
	DefaultWatchDebounce = Duration(250 * time.Millisecond)
)

// Config represents the themebind configuration.
type Config struct {
	Paths     PathsConfig     `toml:"paths"`
	List      ListConfig      `toml:"list"`
	Watch     WatchConfig     `toml:"watch"`
	TUI       TUIConfig       `toml:"tui"`
	Clipboard ClipboardConfig `toml:"clipboard"`
}

// PathsConfig holds default file locations.
type PathsConfig struct {
	Colors string `toml:"colors"` // Default mappings document (empty = require --colors)
}

// ListConfig holds default list output options.
type ListConfig struct {
	Format string `toml:"format"` // plain, json
}

// WatchConfig holds watch mode settings.
type WatchConfig struct {
	Debounce Duration `toml:"debounce"` // Rebuild coalescing window
}

// TUIConfig holds browser-specific settings.
type TUIConfig struct {
	ShowHelp bool `toml:"show_help"`
}

// ClipboardConfig holds clipboard settings (browser only).
type ClipboardConfig struct {
	Command string `toml:"command"` // Auto-detected if empty
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Paths: PathsConfig{
			Colors: "",
		},
		List: ListConfig{
			Format: DefaultListFormat,
		},
		Watch: WatchConfig{
			Debounce: DefaultWatchDebounce,
		},
		TUI: TUIConfig{
			ShowHelp: true,
		},
		Clipboard: ClipboardConfig{
			Command: "", // Auto-detect
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "themebind", "config.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	// Start with defaults
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
