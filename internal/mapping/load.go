package mapping

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a mappings document from path. The format is chosen by file
// extension: .yaml and .yml parse as YAML, everything else as JSON.
func Load(path string) (*Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m *Mapping
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		m, err = DecodeYAML(data)
	default:
		m, err = DecodeJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// namedMap is one key-to-values pair recovered from a document in its
// original order.
type namedMap struct {
	key    string
	values map[string]string
}

// DecodeJSON parses a JSON mappings document. Group order inside
// color_groups is recovered by token-level decoding; plain unmarshaling into
// a map would lose it, and order is what decides unqualified shadowing.
func DecodeJSON(data []byte) (*Mapping, error) {
	var doc struct {
		ColorGroups   json.RawMessage `json:"color_groups"`
		BindingGroups json.RawMessage `json:"binding_groups"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing mappings: %w", err)
	}
	if doc.ColorGroups == nil {
		return nil, errors.New(`missing required member "color_groups"`)
	}
	if doc.BindingGroups == nil {
		return nil, errors.New(`missing required member "binding_groups"`)
	}

	groups, err := decodeOrderedObject(doc.ColorGroups)
	if err != nil {
		return nil, fmt.Errorf("color_groups: %w", err)
	}
	categories, err := decodeOrderedObject(doc.BindingGroups)
	if err != nil {
		return nil, fmt.Errorf("binding_groups: %w", err)
	}

	return New(toColorGroups(groups), toBindingCategories(categories)), nil
}

// decodeOrderedObject walks a JSON object token by token, yielding its
// members in document order.
func decodeOrderedObject(raw json.RawMessage) ([]namedMap, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("expected a JSON object")
	}

	var out []namedMap
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", keyTok)
		}

		var values map[string]string
		if err := dec.Decode(&values); err != nil {
			return nil, fmt.Errorf("%q: %w", key, err)
		}
		out = append(out, namedMap{key: key, values: values})
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeYAML parses a YAML mappings document. The yaml.Node representation
// is walked instead of unmarshaling into a map so group order survives.
func DecodeYAML(data []byte) (*Mapping, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing mappings: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, errors.New("empty mappings document")
	}
	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, errors.New("mappings document must be a mapping")
	}

	var groups []namedMap
	var categories []namedMap
	var sawColors, sawBindings bool

	for i := 0; i+1 < len(top.Content); i += 2 {
		key, value := top.Content[i], top.Content[i+1]
		switch key.Value {
		case "color_groups":
			sawColors = true
			named, err := yamlOrderedObject(value)
			if err != nil {
				return nil, fmt.Errorf("color_groups: %w", err)
			}
			groups = named
		case "binding_groups":
			sawBindings = true
			named, err := yamlOrderedObject(value)
			if err != nil {
				return nil, fmt.Errorf("binding_groups: %w", err)
			}
			categories = named
		}
	}

	if !sawColors {
		return nil, errors.New(`missing required member "color_groups"`)
	}
	if !sawBindings {
		return nil, errors.New(`missing required member "binding_groups"`)
	}

	return New(toColorGroups(groups), toBindingCategories(categories)), nil
}

// yamlOrderedObject walks a YAML mapping node, yielding its members in
// document order.
func yamlOrderedObject(n *yaml.Node) ([]namedMap, error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if n.Kind != yaml.MappingNode {
		return nil, errors.New("expected a mapping")
	}

	var out []namedMap
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		var values map[string]string
		if err := n.Content[i+1].Decode(&values); err != nil {
			return nil, fmt.Errorf("%q: %w", key, err)
		}
		out = append(out, namedMap{key: key, values: values})
	}
	return out, nil
}

func toColorGroups(named []namedMap) []ColorGroup {
	groups := make([]ColorGroup, 0, len(named))
	for _, nm := range named {
		groups = append(groups, ColorGroup{Key: nm.key, Colors: nm.values})
	}
	return groups
}

func toBindingCategories(named []namedMap) []BindingCategory {
	categories := make([]BindingCategory, 0, len(named))
	for _, nm := range named {
		categories = append(categories, BindingCategory{Key: nm.key, Elements: nm.values})
	}
	return categories
}
