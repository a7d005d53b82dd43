package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// PlainFormatter formats rows as aligned plain text, one row per line.
type PlainFormatter struct {
	opts FormatterOptions
}

// NewPlainFormatter creates a new plain text formatter.
func NewPlainFormatter(opts FormatterOptions) *PlainFormatter {
	return &PlainFormatter{opts: opts}
}

// Format writes rows as tab-aligned columns: the qualified name, the bound
// target for bindings, and the value or resolution error.
func (f *PlainFormatter) Format(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	for _, row := range rows {
		if _, err := fmt.Fprintln(tw, f.formatRow(row)); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// formatRow builds one tab-separated line.
func (f *PlainFormatter) formatRow(row Row) string {
	cols := []string{row.Qualified()}

	if row.Target != "" {
		cols = append(cols, "-> "+row.Target)
	}

	switch {
	case row.Error != "":
		cols = append(cols, "!! "+row.Error)
	case row.Value != "":
		cols = append(cols, row.Value)
	}

	if f.opts.Long && row.Shadowed {
		cols = append(cols, "(shadowed)")
	}

	return strings.Join(cols, "\t")
}
