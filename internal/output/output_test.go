package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRows() []Row {
	return []Row{
		{Group: "blues", Name: "sky", Value: "#87ceeb"},
		{Group: "greens", Name: "accent", Value: "#2e8b57", Shadowed: true},
	}
}

func TestNewFormatter(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		f, err := NewFormatter(FormatPlain, DefaultFormatterOptions())
		require.NoError(t, err)
		assert.IsType(t, &PlainFormatter{}, f)
	})

	t.Run("json", func(t *testing.T) {
		f, err := NewFormatter(FormatJSON, DefaultFormatterOptions())
		require.NoError(t, err)
		assert.IsType(t, &JSONFormatter{}, f)
	})

	t.Run("template", func(t *testing.T) {
		opts := DefaultFormatterOptions()
		opts.Template = "{{.Name}}"
		f, err := NewFormatter(FormatTemplate, opts)
		require.NoError(t, err)
		assert.IsType(t, &TemplateFormatter{}, f)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := NewFormatter(FormatType("xml"), DefaultFormatterOptions())
		assert.Error(t, err)
	})
}

func TestPlainFormatter(t *testing.T) {
	t.Run("colors", func(t *testing.T) {
		var buf bytes.Buffer
		f := NewPlainFormatter(DefaultFormatterOptions())
		require.NoError(t, f.Format(&buf, testRows()))

		out := buf.String()
		assert.Contains(t, out, "blues.sky")
		assert.Contains(t, out, "#87ceeb")
		assert.NotContains(t, out, "(shadowed)")
	})

	t.Run("long marks shadowed rows", func(t *testing.T) {
		var buf bytes.Buffer
		f := NewPlainFormatter(FormatterOptions{Long: true})
		require.NoError(t, f.Format(&buf, testRows()))
		assert.Contains(t, buf.String(), "(shadowed)")
	})

	t.Run("bindings show target and errors", func(t *testing.T) {
		rows := []Row{
			{Group: "ui", Name: "border", Target: "sky", Value: "#87ceeb"},
			{Group: "ui", Name: "focus", Target: "missing", Error: `color not found: "missing"`},
		}
		var buf bytes.Buffer
		f := NewPlainFormatter(DefaultFormatterOptions())
		require.NoError(t, f.Format(&buf, rows))

		out := buf.String()
		assert.Contains(t, out, "-> sky")
		assert.Contains(t, out, `!! color not found: "missing"`)
	})
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(DefaultFormatterOptions())
	require.NoError(t, f.Format(&buf, testRows()))

	var decoded []Row
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "sky", decoded[0].Name)
	assert.True(t, decoded[1].Shadowed)
}

func TestTemplateFormatter(t *testing.T) {
	t.Run("renders per row", func(t *testing.T) {
		f, err := NewTemplateFormatter(FormatterOptions{Template: "{{.Group}}/{{.Name}}={{.Value}}"})
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, f.Format(&buf, testRows()))
		assert.Equal(t, "blues/sky=#87ceeb\ngreens/accent=#2e8b57\n", buf.String())
	})

	t.Run("template funcs", func(t *testing.T) {
		f, err := NewTemplateFormatter(FormatterOptions{Template: "{{upper .Name}}"})
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, f.Format(&buf, testRows()[:1]))
		assert.Equal(t, "SKY\n", buf.String())
	})

	t.Run("invalid template", func(t *testing.T) {
		_, err := NewTemplateFormatter(FormatterOptions{Template: "{{.Name"})
		assert.Error(t, err)
	})
}

func TestSwatch(t *testing.T) {
	t.Run("literal gets a block", func(t *testing.T) {
		assert.NotEmpty(t, Swatch("#87ceeb"))
	})

	t.Run("non-literal gets a placeholder", func(t *testing.T) {
		assert.Equal(t, "··", Swatch("sky"))
	})
}
