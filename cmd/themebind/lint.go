package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themebind/internal/lint"
	"github.com/jmylchreest/themebind/internal/vstheme"
)

var lintOpts struct {
	input  string
	format string
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Check a mappings document for problems",
	Long: `Check a mappings document, and optionally a theme file, for problems.

Mapping checks:
  dangling-binding      a binding's target color name does not resolve (error)
  shadowed-name         a color name defined in more than one group (warning)
  missing-marker        a color value that does not start with "#" (warning)
  unused-color          a color definition no binding points at (info)

With --input, the theme is checked too:
  non-string-value      a color position holding a non-string value (warning)
  unresolved-reference  a reference the mappings cannot resolve (error)

The exit status is non-zero when any error-severity finding exists.

Examples:
  themebind lint --colors mappings.json
  themebind lint --colors mappings.json --input theme.json --format json`,
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringVarP(&lintOpts.input, "input", "i", "",
		"Theme file to check against the mappings")
	lintCmd.Flags().StringVarP(&lintOpts.format, "format", "f", "plain",
		"Output format (plain, json)")
}

func runLint(cmd *cobra.Command, args []string) error {
	m, err := loadMapping()
	if err != nil {
		return err
	}

	var doc *vstheme.Document
	if lintOpts.input != "" {
		doc, err = vstheme.Load(lintOpts.input)
		if err != nil {
			return err
		}
	}

	findings := lint.Run(m, doc)

	switch lintOpts.format {
	case "json":
		if findings == nil {
			findings = []lint.Finding{}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(findings); err != nil {
			return err
		}
	case "plain":
		if len(findings) == 0 {
			fmt.Println("no problems found")
			return nil
		}
		for _, f := range findings {
			fmt.Printf("%-7s %s: %s [%s]\n", f.Severity, f.Location, f.Message, f.Rule)
		}
	default:
		return fmt.Errorf("unknown format %q (want plain or json)", lintOpts.format)
	}

	if lint.HasErrors(findings) {
		errs := 0
		for _, f := range findings {
			if f.Severity == lint.SeverityError {
				errs++
			}
		}
		return fmt.Errorf("%d error(s) found", errs)
	}
	return nil
}
