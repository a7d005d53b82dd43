package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter formats rows as JSON.
type JSONFormatter struct {
	opts FormatterOptions
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(opts FormatterOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Format writes rows as a JSON array.
func (f *JSONFormatter) Format(w io.Writer, rows []Row) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rows)
}
