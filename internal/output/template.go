package output

import (
	"fmt"
	"io"
	"strings"
	"text/template"
)

// TemplateFormatter renders each row through a user-supplied Go template.
type TemplateFormatter struct {
	template *template.Template
}

// NewTemplateFormatter creates a formatter from the template in opts.
func NewTemplateFormatter(opts FormatterOptions) (*TemplateFormatter, error) {
	tmpl, err := template.New("row").Funcs(templateFuncs()).Parse(opts.Template)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	return &TemplateFormatter{template: tmpl}, nil
}

// Format executes the template once per row, appending a newline after each.
func (f *TemplateFormatter) Format(w io.Writer, rows []Row) error {
	for _, row := range rows {
		if err := f.template.Execute(w, row); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// templateFuncs returns the helpers available to row templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"upper": strings.ToUpper,
		"lower": strings.ToLower,
	}
}
