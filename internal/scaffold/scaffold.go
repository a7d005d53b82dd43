// Package scaffold provides the bundled starter mappings documents
// written by themebind init.
package scaffold

import (
	"embed"
	"fmt"
	"path/filepath"
	"strings"
)

// Templates contains the bundled starter documents.
//
//go:embed templates/*.json templates/*.yaml
var Templates embed.FS

// Formats lists the formats a starter document is bundled for.
var Formats = []string{"json", "yaml"}

// Starter returns the starter mappings document for a format.
func Starter(format string) ([]byte, error) {
	data, err := Templates.ReadFile("templates/mappings." + format)
	if err != nil {
		return nil, fmt.Errorf("no starter document for format %q (have %s)", format, strings.Join(Formats, ", "))
	}
	return data, nil
}

// FormatForPath returns the starter format matching a destination path's
// extension. Anything that is not YAML gets the JSON document.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}
