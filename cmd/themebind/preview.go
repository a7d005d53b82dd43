package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themebind/internal/mapping"
	"github.com/jmylchreest/themebind/internal/output"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print a swatch sheet of the palette and bindings",
	Long: `Print every color group and binding category as a swatch sheet.

Each color is shown with a terminal swatch rendered in its actual value,
so a palette can be eyeballed without building a theme. Bindings show
the chain from element to target to resolved value; targets that do not
resolve are marked instead of silently skipped.`,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	m, err := loadMapping()
	if err != nil {
		return err
	}

	for _, group := range m.Colors.Groups() {
		fmt.Println(output.Heading(group.Key))
		names := mapping.SortedKeys(group.Colors)
		width := maxLen(names)
		for _, name := range names {
			value := group.Colors[name]
			fmt.Printf("  %s %-*s %s\n", output.Swatch(value), width, name, value)
		}
		fmt.Println()
	}

	for _, category := range m.Bindings.Categories() {
		fmt.Println(output.Heading(category.Key))
		elements := mapping.SortedKeys(category.Elements)
		width := maxLen(elements)
		for _, element := range elements {
			target := category.Elements[element]
			value, err := m.ResolveColor(target)
			if err != nil {
				fmt.Printf("  %s %-*s -> %s  !! %v\n", output.Swatch(""), width, element, target, err)
				continue
			}
			fmt.Printf("  %s %-*s -> %s = %s\n", output.Swatch(value), width, element, target, value)
		}
		fmt.Println()
	}

	return nil
}

func maxLen(names []string) int {
	longest := 0
	for _, s := range names {
		if len(s) > longest {
			longest = len(s)
		}
	}
	return longest
}
