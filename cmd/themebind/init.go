package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themebind/internal/scaffold"
)

var initOpts struct {
	force bool
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter mappings document",
	Long: `Write a starter mappings document to get a new theme going.

The path defaults to mappings.json in the current directory. A path
ending in .yaml or .yml gets the YAML variant of the same document.

Examples:
  themebind init
  themebind init themes/mappings.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVarP(&initOpts.force, "force", "f", false,
		"Overwrite an existing file")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := "mappings.json"
	if len(args) > 0 {
		path = args[0]
	}

	if !initOpts.force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	data, err := scaffold.Starter(scaffold.FormatForPath(path))
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Printf("wrote %s\n", path)
	return nil
}
