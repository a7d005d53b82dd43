// Package main provides the CLI entrypoint for themebind.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themebind/internal/config"
	"github.com/jmylchreest/themebind/internal/mapping"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		colorsFile string
		configPath string
	}
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "themebind",
	Short: "Resolve symbolic color references in theme files",
	Long: `themebind rewrites the symbolic color references in a theme file
into literal color values.

A mappings document defines color groups (names carrying literal values)
and binding groups (theme elements bound to color names). References in
the theme point at bindings as "category.element"; themebind follows the
binding to its color name and the color name to its value.

Running themebind without a subcommand builds the theme: every reference
in the input is replaced with its resolved value.

Examples:
  # Rewrite a theme into a new file
  themebind --colors mappings.json --input theme.json --output theme.out.json

  # Print the rewritten theme to stdout
  themebind --colors mappings.json --input theme.json

  # Rebuild on every change to the mappings or the theme
  themebind --colors mappings.json --input theme.json --output theme.out.json --watch`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Setup logging
		setupLogger()

		// Load configuration
		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&globalOpts.colorsFile, "colors", "c", "",
		"Path to the mappings document (JSON or YAML)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/themebind/config.toml)")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// colorsPath returns the mappings document path from the --colors flag,
// falling back to paths.colors in the config file.
func colorsPath() (string, error) {
	if globalOpts.colorsFile != "" {
		return globalOpts.colorsFile, nil
	}
	if cfg != nil && cfg.Paths.Colors != "" {
		return cfg.Paths.Colors, nil
	}
	return "", fmt.Errorf("no mappings document: pass --colors or set paths.colors in the config file")
}

// loadMapping loads the mappings document for the current invocation.
func loadMapping() (*mapping.Mapping, error) {
	path, err := colorsPath()
	if err != nil {
		return nil, err
	}
	logger.Debug("loading mappings", "path", path)
	return mapping.Load(path)
}
