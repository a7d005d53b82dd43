package vstheme

import (
	"fmt"
	"sort"
	"strings"
)

// Resolver resolves a symbolic reference to a literal color value.
type Resolver interface {
	ResolveBinding(ref string) (string, error)
}

// literalPrefix marks values that are already literal colors.
const literalPrefix = "#"

// Rewrite replaces every symbolic color reference in doc with the literal
// value the resolver produces. Values already starting with "#" pass through
// verbatim, as do non-string values. The document is mutated in place; after
// an error it may be partially rewritten and should be discarded.
func Rewrite(doc *Document, r Resolver) error {
	if err := rewriteColors(doc.root, r); err != nil {
		return err
	}
	return rewriteTokenColors(doc.root, r)
}

func rewriteColors(root map[string]any, r Resolver) error {
	raw, ok := root["colors"]
	if !ok {
		return nil
	}
	colors, ok := raw.(map[string]any)
	if !ok {
		return fmt.Errorf(`"colors" must be an object`)
	}

	// Sorted keys keep the first reported failure deterministic.
	keys := make([]string, 0, len(colors))
	for k := range colors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value, ok := colors[key].(string)
		if !ok || strings.HasPrefix(value, literalPrefix) {
			continue
		}
		resolved, err := r.ResolveBinding(value)
		if err != nil {
			return fmt.Errorf("colors[%q]: %w", key, err)
		}
		colors[key] = resolved
	}
	return nil
}

func rewriteTokenColors(root map[string]any, r Resolver) error {
	raw, ok := root["tokenColors"]
	if !ok {
		return nil
	}
	rules, ok := raw.([]any)
	if !ok {
		return fmt.Errorf(`"tokenColors" must be an array`)
	}

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
			value, ok := settings[field].(string)
			if !ok || strings.HasPrefix(value, literalPrefix) {
				continue
			}
			resolved, err := r.ResolveBinding(value)
			if err != nil {
				return fmt.Errorf("tokenColors[%d].settings.%s: %w", i, field, err)
			}
			settings[field] = resolved
		}
	}
	return nil
}
