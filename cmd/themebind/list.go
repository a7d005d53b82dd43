package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themebind/internal/mapping"
	"github.com/jmylchreest/themebind/internal/output"
)

var listOpts struct {
	format   string
	template string
	long     bool
}

var listCmd = &cobra.Command{
	Use:   "list [colors|bindings]",
	Short: "List color definitions or bindings",
	Long: `List the color definitions or the bindings of a mappings document.

Colors are listed per group in document order; bindings include the
target color name and its resolved value. Bindings whose target does not
resolve are listed with the resolution error instead of a value.

Examples:
  # All color definitions
  themebind list colors --colors mappings.json

  # Bindings with resolved values, as JSON
  themebind list bindings --format json --colors mappings.json

  # Custom per-row template
  themebind list colors --template "{{.Group}}/{{.Name}} {{.Value}}" --colors mappings.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listOpts.format, "format", "f", "",
		"Output format (plain, json, template; default from config)")
	listCmd.Flags().StringVar(&listOpts.template, "template", "",
		"Go template executed once per row (implies --format template)")
	listCmd.Flags().BoolVarP(&listOpts.long, "long", "l", false,
		"Include shadowing detail in plain output")
}

func runList(cmd *cobra.Command, args []string) error {
	what := "colors"
	if len(args) > 0 {
		what = args[0]
	}

	m, err := loadMapping()
	if err != nil {
		return err
	}

	var rows []output.Row
	switch what {
	case "colors":
		rows = colorRows(m)
	case "bindings":
		rows = bindingRows(m)
	default:
		return fmt.Errorf("unknown listing %q (want colors or bindings)", what)
	}

	formatter, err := createFormatter()
	if err != nil {
		return err
	}
	return formatter.Format(os.Stdout, rows)
}

// colorRows flattens the color table into listing rows, keeping group
// order and sorting names within each group.
func colorRows(m *mapping.Mapping) []output.Row {
	shadowed := m.Colors.Shadowed()
	var rows []output.Row
	for _, group := range m.Colors.Groups() {
		for _, name := range mapping.SortedKeys(group.Colors) {
			owners := shadowed[name]
			rows = append(rows, output.Row{
				Group:    group.Key,
				Name:     name,
				Value:    group.Colors[name],
				Shadowed: len(owners) > 1 && owners[0] != group.Key,
			})
		}
	}
	return rows
}

// bindingRows flattens the binding table into listing rows, resolving
// every target down to its literal value.
func bindingRows(m *mapping.Mapping) []output.Row {
	var rows []output.Row
	for _, category := range m.Bindings.Categories() {
		for _, element := range mapping.SortedKeys(category.Elements) {
			row := output.Row{
				Group:  category.Key,
				Name:   element,
				Target: category.Elements[element],
			}
			if value, err := m.ResolveColor(row.Target); err != nil {
				row.Error = err.Error()
			} else {
				row.Value = value
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// createFormatter creates the output formatter based on options and config.
func createFormatter() (output.Formatter, error) {
	format := listOpts.format
	if format == "" && cfg != nil {
		format = cfg.List.Format
	}
	if listOpts.template != "" {
		format = string(output.FormatTemplate)
	}

	opts := output.DefaultFormatterOptions()
	opts.Template = listOpts.template
	opts.Long = listOpts.long

	return output.NewFormatter(output.FormatType(format), opts)
}
