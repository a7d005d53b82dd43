// Package output provides output formatters for mapping listings.
package output

import (
	"fmt"
	"io"
)

// Row is one listing entry: a color definition or a binding.
type Row struct {
	Group    string `json:"group"`
	Name     string `json:"name"`
	Target   string `json:"target,omitempty"`
	Value    string `json:"value,omitempty"`
	Shadowed bool   `json:"shadowed,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Qualified returns the row's fully qualified reference.
func (r Row) Qualified() string {
	return r.Group + "." + r.Name
}

// Formatter formats listing rows for output.
type Formatter interface {
	// Format writes formatted rows to the writer.
	Format(w io.Writer, rows []Row) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain    FormatType = "plain"
	FormatJSON     FormatType = "json"
	FormatTemplate FormatType = "template"
)

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType, opts FormatterOptions) (Formatter, error) {
	switch format {
	case FormatJSON:
		return NewJSONFormatter(opts), nil
	case FormatTemplate:
		return NewTemplateFormatter(opts)
	case FormatPlain:
		return NewPlainFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// FormatterOptions configures formatter behavior.
type FormatterOptions struct {
	Template string // Custom Go template, executed once per row
	Long     bool   // Include shadowing detail
}

// DefaultFormatterOptions returns sensible defaults for plain output.
func DefaultFormatterOptions() FormatterOptions {
	return FormatterOptions{}
}
