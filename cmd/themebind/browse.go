package main

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/themebind/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse colors and bindings interactively",
	Long: `Launch the interactive browser for a mappings document.

The browser provides:
  - Scrollable list of colors or bindings with live swatches
  - Search across names, targets and values
  - Detail view with the full resolution chain and shadowing info
  - Copy resolved values or references to the clipboard

Key bindings:
  j/k, ↑/↓    Navigate list
  enter       View details
  tab         Switch between colors and bindings
  c           Copy resolved value to clipboard
  C           Copy qualified reference to clipboard
  /           Search
  ?           Show help
  q           Quit`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	m, err := loadMapping()
	if err != nil {
		return err
	}

	return tui.Run(tui.RunOptions{
		Config:  cfg,
		Mapping: m,
	})
}
