package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resolveOpts struct {
	color bool
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <reference>...",
	Short: "Resolve references to literal color values",
	Long: `Resolve one or more references and print the literal values, one
per line.

By default arguments are binding references ("category.element") and are
followed through the bound color name to its value. With --color the
arguments are color references instead: a bare name consults every group
in document order, "group.name" looks inside one group.

Examples:
  # Where does the UI border color come from?
  themebind resolve ui.border --colors mappings.json

  # Several bindings at once
  themebind resolve ui.border syntax.keyword --colors mappings.json

  # Look up a color name directly
  themebind resolve --color blues.sky --colors mappings.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().BoolVar(&resolveOpts.color, "color", false,
		"Treat arguments as color references instead of binding references")
}

func runResolve(cmd *cobra.Command, args []string) error {
	m, err := loadMapping()
	if err != nil {
		return err
	}

	for _, ref := range args {
		var value string
		var err error
		if resolveOpts.color {
			value, err = m.ResolveColor(ref)
		} else {
			value, err = m.ResolveBinding(ref)
		}
		if err != nil {
			return err
		}
		fmt.Println(value)
	}
	return nil
}
