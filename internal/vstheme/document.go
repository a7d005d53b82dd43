// Package vstheme loads, rewrites, and saves VS Code color theme documents.
package vstheme

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// Document is a parsed theme template. The whole object tree is retained so
// regions the rewriter never touches survive a load and save round trip.
type Document struct {
	root map[string]any
}

// Load reads and parses a theme document from path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Decode parses a theme document from r. Numbers decode as json.Number so
// their original notation survives re-encoding.
func Decode(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var root map[string]any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("parsing theme: %w", err)
	}
	return &Document{root: root}, nil
}

// Encode writes the document as pretty-printed JSON with two-space
// indentation and a trailing newline.
func (d *Document) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(d.root)
}

// Save writes the document to path through a temporary file in the same
// directory, so a failed write never leaves a truncated theme behind.
func (d *Document) Save(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".themebind-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := d.Encode(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Position is one rewritable color slot in a theme document.
type Position struct {
	Location string
	Value    any
}

// Positions lists every rewritable color slot: the members of "colors" and
// the foreground/background settings of tokenColors rules. Locations use the
// same notation rewrite errors carry. Colors members are listed in sorted
// key order, tokenColors rules in array order.
func (d *Document) Positions() []Position {
	var out []Position

	if colors, ok := d.root["colors"].(map[string]any); ok {
		keys := make([]string, 0, len(colors))
		for k := range colors {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			out = append(out, Position{
				Location: fmt.Sprintf("colors[%q]", k),
				Value:    colors[k],
			})
		}
	}

	if rules, ok := d.root["tokenColors"].([]any); ok {
		for i, entry := range rules {
			rule, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			settings, ok := rule["settings"].(map[string]any)
			if !ok {
				continue
			}
			for _, field := range []string{"foreground", "background"} {
				if v, ok := settings[field]; ok {
					out = append(out, Position{
						Location: fmt.Sprintf("tokenColors[%d].settings.%s", i, field),
						Value:    v,
					})
				}
			}
		}
	}

	return out
}
