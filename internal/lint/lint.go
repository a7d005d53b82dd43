// Package lint provides static checks for mappings documents and theme
// templates.
package lint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jmylchreest/themebind/internal/mapping"
	"github.com/jmylchreest/themebind/internal/vstheme"
)

// Severity classifies findings.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Finding is one issue reported by a check.
type Finding struct {
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Location string   `json:"location"`
	Message  string   `json:"message"`
}

// Run checks the mapping and, when doc is non-nil, the theme template.
// Findings are emitted in a stable order: per rule, following document order
// with sorted names inside each group.
func Run(m *mapping.Mapping, doc *vstheme.Document) []Finding {
	var findings []Finding
	findings = append(findings, checkDanglingBindings(m)...)
	findings = append(findings, checkShadowedNames(m)...)
	findings = append(findings, checkMissingMarkers(m)...)
	findings = append(findings, checkUnusedColors(m)...)
	if doc != nil {
		findings = append(findings, checkTemplate(m, doc)...)
	}
	return findings
}

// HasErrors reports whether any finding has error severity.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// checkDanglingBindings reports bindings whose target color name does not
// resolve through the color table.
func checkDanglingBindings(m *mapping.Mapping) []Finding {
	var findings []Finding
	for _, category := range m.Bindings.Categories() {
		for _, element := range mapping.SortedKeys(category.Elements) {
			target := category.Elements[element]
			if _, err := m.ResolveColor(target); err != nil {
				findings = append(findings, Finding{
					Rule:     "dangling-binding",
					Severity: SeverityError,
					Location: fmt.Sprintf("bindings.%s.%s", category.Key, element),
					Message:  fmt.Sprintf("target %q does not resolve: %v", target, err),
				})
			}
		}
	}
	return findings
}

// checkShadowedNames reports color names defined in more than one group.
func checkShadowedNames(m *mapping.Mapping) []Finding {
	shadowed := m.Colors.Shadowed()

	names := make([]string, 0, len(shadowed))
	for name := range shadowed {
		names = append(names, name)
	}
	sort.Strings(names)

	findings := make([]Finding, 0, len(names))
	for _, name := range names {
		groups := shadowed[name]
		findings = append(findings, Finding{
			Rule:     "shadowed-name",
			Severity: SeverityWarning,
			Location: "colors." + name,
			Message: fmt.Sprintf("defined in groups %s; unqualified references resolve to %q",
				strings.Join(groups, ", "), groups[0]),
		})
	}
	return findings
}

// checkMissingMarkers reports color values that do not carry the "#" literal
// marker. The rewriter would emit them into the theme as-is.
func checkMissingMarkers(m *mapping.Mapping) []Finding {
	var findings []Finding
	for _, group := range m.Colors.Groups() {
		for _, name := range mapping.SortedKeys(group.Colors) {
			value := group.Colors[name]
			if strings.HasPrefix(value, "#") {
				continue
			}
			findings = append(findings, Finding{
				Rule:     "missing-marker",
				Severity: SeverityWarning,
				Location: fmt.Sprintf("colors.%s.%s", group.Key, name),
				Message:  fmt.Sprintf("value %q does not start with \"#\"", value),
			})
		}
	}
	return findings
}

// checkUnusedColors reports color definitions no binding targets. A binding
// with an unqualified target only counts for the group that owns the name.
func checkUnusedColors(m *mapping.Mapping) []Finding {
	owner := make(map[string]string)
	for _, group := range m.Colors.Groups() {
		for name := range group.Colors {
			if _, ok := owner[name]; !ok {
				owner[name] = group.Key
			}
		}
	}

	used := make(map[string]bool)
	for _, category := range m.Bindings.Categories() {
		for _, target := range category.Elements {
			ref, err := mapping.ParseRef(target)
			if err != nil {
				continue
			}
			if ref.Qualified {
				used[ref.Qualifier+"."+ref.Name] = true
			} else if group, ok := owner[ref.Name]; ok {
				used[group+"."+ref.Name] = true
			}
		}
	}

	var findings []Finding
	for _, group := range m.Colors.Groups() {
		for _, name := range mapping.SortedKeys(group.Colors) {
			if used[group.Key+"."+name] {
				continue
			}
			findings = append(findings, Finding{
				Rule:     "unused-color",
				Severity: SeverityInfo,
				Location: fmt.Sprintf("colors.%s.%s", group.Key, name),
				Message:  "no binding targets this color",
			})
		}
	}
	return findings
}

// checkTemplate reports template positions that would fail or be skipped
// during a rewrite.
func checkTemplate(m *mapping.Mapping, doc *vstheme.Document) []Finding {
	var findings []Finding
	for _, pos := range doc.Positions() {
		value, ok := pos.Value.(string)
		if !ok {
			findings = append(findings, Finding{
				Rule:     "non-string-value",
				Severity: SeverityWarning,
				Location: pos.Location,
				Message:  fmt.Sprintf("expected a string, found %T", pos.Value),
			})
			continue
		}
		if strings.HasPrefix(value, "#") {
			continue
		}
		if _, err := m.ResolveBinding(value); err != nil {
			findings = append(findings, Finding{
				Rule:     "unresolved-reference",
				Severity: SeverityError,
				Location: pos.Location,
				Message:  err.Error(),
			})
		}
	}
	return findings
}
