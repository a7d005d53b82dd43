package tui

import (
	"strings"

	"github.com/jmylchreest/themebind/internal/mapping"
)

type entryKind int

const (
	kindColor entryKind = iota
	kindBinding
)

// entry is one browsable row: a color definition or a binding together
// with its resolution.
type entry struct {
	kind     entryKind
	group    string // color group, or binding category
	name     string // color name, or binding element
	target   string // bindings only: the color name the binding points at
	value    string // resolved literal, empty when resolution failed
	shadowed bool   // colors only: an earlier group owns the unqualified name
	err      string
}

// ref returns the qualified reference for the entry.
func (e entry) ref() string {
	return e.group + "." + e.name
}

// Title implements list.DefaultItem.
func (e entry) Title() string {
	return e.ref()
}

// Description implements list.DefaultItem.
func (e entry) Description() string {
	switch {
	case e.err != "":
		return "!! " + e.err
	case e.kind == kindBinding:
		return "-> " + e.target + " = " + e.value
	default:
		return e.value
	}
}

// FilterValue implements list.Item.
func (e entry) FilterValue() string {
	return e.ref() + " " + e.target + " " + e.value
}

// buildColorEntries flattens the color table into browsable entries,
// keeping group declaration order and sorting names within each group.
func buildColorEntries(m *mapping.Mapping) []entry {
	shadowed := m.Colors.Shadowed()
	var entries []entry
	for _, group := range m.Colors.Groups() {
		for _, name := range mapping.SortedKeys(group.Colors) {
			owners := shadowed[name]
			entries = append(entries, entry{
				kind:     kindColor,
				group:    group.Key,
				name:     name,
				value:    group.Colors[name],
				shadowed: len(owners) > 1 && owners[0] != group.Key,
			})
		}
	}
	return entries
}

// buildBindingEntries flattens the binding table into browsable entries,
// resolving every binding down to its literal value.
func buildBindingEntries(m *mapping.Mapping) []entry {
	var entries []entry
	for _, category := range m.Bindings.Categories() {
		for _, element := range mapping.SortedKeys(category.Elements) {
			e := entry{
				kind:   kindBinding,
				group:  category.Key,
				name:   element,
				target: category.Elements[element],
			}
			if value, err := m.ResolveColor(e.target); err != nil {
				e.err = err.Error()
			} else {
				e.value = value
			}
			entries = append(entries, e)
		}
	}
	return entries
}

// filterEntries returns the entries whose searchable text contains the
// query, case-insensitively. An empty query returns all entries.
func filterEntries(entries []entry, query string) []entry {
	if query == "" {
		return entries
	}
	query = strings.ToLower(query)
	var matched []entry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.FilterValue()), query) {
			matched = append(matched, e)
		}
	}
	return matched
}
