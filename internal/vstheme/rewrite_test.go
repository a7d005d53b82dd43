package vstheme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/themebind/internal/mapping"
)

// resolverFunc adapts a function to the Resolver interface.
type resolverFunc func(string) (string, error)

func (f resolverFunc) ResolveBinding(ref string) (string, error) { return f(ref) }

// testResolver resolves through a real mapping: ui.border is bound to the
// color "sky" in group "blues".
func testResolver(t *testing.T) Resolver {
	t.Helper()
	return mapping.New(
		[]mapping.ColorGroup{
			{Key: "blues", Colors: map[string]string{"sky": "#87ceeb"}},
		},
		[]mapping.BindingCategory{
			{Key: "ui", Elements: map[string]string{"border": "sky"}},
			{Key: "syntax", Elements: map[string]string{"comment": "sky"}},
		},
	)
}

func decodeDoc(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	return doc
}

func TestRewriteColors(t *testing.T) {
	t.Run("symbolic reference is replaced", func(t *testing.T) {
		doc := decodeDoc(t, `{"colors": {"panel.border": "ui.border"}}`)
		require.NoError(t, Rewrite(doc, testResolver(t)))

		colors := doc.root["colors"].(map[string]any)
		assert.Equal(t, "#87ceeb", colors["panel.border"])
	})

	t.Run("literal passes through verbatim", func(t *testing.T) {
		doc := decodeDoc(t, `{"colors": {"editor.background": "#ffffff"}}`)
		calls := 0
		err := Rewrite(doc, resolverFunc(func(string) (string, error) {
			calls++
			return "", nil
		}))
		require.NoError(t, err)
		assert.Zero(t, calls)

		colors := doc.root["colors"].(map[string]any)
		assert.Equal(t, "#ffffff", colors["editor.background"])
	})

	t.Run("non-string value is left alone", func(t *testing.T) {
		doc := decodeDoc(t, `{"colors": {"oddity": 42}}`)
		require.NoError(t, Rewrite(doc, testResolver(t)))

		colors := doc.root["colors"].(map[string]any)
		assert.Equal(t, json.Number("42"), colors["oddity"])
	})

	t.Run("unqualified reference fails", func(t *testing.T) {
		doc := decodeDoc(t, `{"colors": {"panel.border": "border"}}`)
		err := Rewrite(doc, testResolver(t))
		assert.ErrorIs(t, err, mapping.ErrUnqualifiedBinding)
		assert.Contains(t, err.Error(), `colors["panel.border"]`)
	})

	t.Run("malformed reference fails", func(t *testing.T) {
		doc := decodeDoc(t, `{"colors": {"panel.border": "a.b.c"}}`)
		err := Rewrite(doc, testResolver(t))
		assert.ErrorIs(t, err, mapping.ErrMalformedName)
	})

	t.Run("first failure is deterministic", func(t *testing.T) {
		doc := decodeDoc(t, `{"colors": {"zz.pane": "nope.a", "aa.pane": "nope.b"}}`)
		err := Rewrite(doc, testResolver(t))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `colors["aa.pane"]`)
	})

	t.Run("colors region absent", func(t *testing.T) {
		doc := decodeDoc(t, `{"name": "Bare"}`)
		assert.NoError(t, Rewrite(doc, testResolver(t)))
	})

	t.Run("colors region not an object", func(t *testing.T) {
		doc := decodeDoc(t, `{"colors": ["#fff"]}`)
		assert.Error(t, Rewrite(doc, testResolver(t)))
	})
}

func TestRewriteTokenColors(t *testing.T) {
	t.Run("foreground and background are replaced", func(t *testing.T) {
		doc := decodeDoc(t, `{"tokenColors": [
			{"scope": "comment", "settings": {"foreground": "syntax.comment", "background": "ui.border"}}
		]}`)
		require.NoError(t, Rewrite(doc, testResolver(t)))

		settings := doc.root["tokenColors"].([]any)[0].(map[string]any)["settings"].(map[string]any)
		assert.Equal(t, "#87ceeb", settings["foreground"])
		assert.Equal(t, "#87ceeb", settings["background"])
	})

	t.Run("rule without settings is skipped", func(t *testing.T) {
		doc := decodeDoc(t, `{"tokenColors": [{"scope": "keyword"}]}`)
		assert.NoError(t, Rewrite(doc, testResolver(t)))
	})

	t.Run("absent fields are skipped", func(t *testing.T) {
		doc := decodeDoc(t, `{"tokenColors": [{"settings": {"fontStyle": "italic"}}]}`)
		assert.NoError(t, Rewrite(doc, testResolver(t)))
	})

	t.Run("literal settings pass through", func(t *testing.T) {
		doc := decodeDoc(t, `{"tokenColors": [{"settings": {"foreground": "#ff0000"}}]}`)
		require.NoError(t, Rewrite(doc, testResolver(t)))

		settings := doc.root["tokenColors"].([]any)[0].(map[string]any)["settings"].(map[string]any)
		assert.Equal(t, "#ff0000", settings["foreground"])
	})

	t.Run("errors carry the rule index", func(t *testing.T) {
		doc := decodeDoc(t, `{"tokenColors": [
			{"settings": {"foreground": "#fff"}},
			{"settings": {"foreground": "missing.ref"}}
		]}`)
		err := Rewrite(doc, testResolver(t))
		assert.ErrorIs(t, err, mapping.ErrCategoryNotFound)
		assert.Contains(t, err.Error(), "tokenColors[1].settings.foreground")
	})
}

func TestRewriteRoundTrip(t *testing.T) {
	// A document containing only literals must re-encode to the same tree.
	src := `{
		"name": "Literal Theme",
		"colors": {"editor.background": "#1e1e1e", "panel.border": "#333333"},
		"tokenColors": [{"scope": "comment", "settings": {"foreground": "#6a9955"}}],
		"semanticTokenColors": {"variable": "#9cdcfe"}
	}`
	doc := decodeDoc(t, src)
	original := decodeDoc(t, src)

	require.NoError(t, Rewrite(doc, resolverFunc(func(ref string) (string, error) {
		return "", fmt.Errorf("unexpected resolution of %q", ref)
	})))

	var buf bytes.Buffer
	require.NoError(t, doc.Encode(&buf))
	again, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, original.root, again.root)
}

func TestRewriteFullTheme(t *testing.T) {
	doc := decodeDoc(t, `{
		"name": "Sample",
		"colors": {
			"panel.border": "ui.border",
			"editor.background": "#1e1e1e"
		},
		"tokenColors": [
			{"scope": "comment", "settings": {"foreground": "syntax.comment", "fontStyle": "italic"}}
		]
	}`)
	require.NoError(t, Rewrite(doc, testResolver(t)))

	colors := doc.root["colors"].(map[string]any)
	assert.Equal(t, "#87ceeb", colors["panel.border"])
	assert.Equal(t, "#1e1e1e", colors["editor.background"])

	settings := doc.root["tokenColors"].([]any)[0].(map[string]any)["settings"].(map[string]any)
	assert.Equal(t, "#87ceeb", settings["foreground"])
	assert.Equal(t, "italic", settings["fontStyle"])
}
