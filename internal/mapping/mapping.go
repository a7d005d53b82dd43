// Package mapping implements the two-level color mapping used to resolve
// symbolic theme references: a binding reference names a color, and the
// color name carries the literal value.
package mapping

import "fmt"

// ColorGroup is one named set of color definitions from a mappings document.
type ColorGroup struct {
	Key    string
	Colors map[string]string
}

// BindingCategory is one named set of element-to-color-name bindings.
type BindingCategory struct {
	Key      string
	Elements map[string]string
}

// ColorTable resolves color names to literal color values. Group order
// matters: when two groups define the same name, the first group in the
// document owns the unqualified lookup.
type ColorTable struct {
	groups []ColorGroup
	byKey  map[string]map[string]string
	flat   map[string]string
}

// NewColorTable builds a table from groups in document order.
func NewColorTable(groups []ColorGroup) *ColorTable {
	t := &ColorTable{
		byKey: make(map[string]map[string]string, len(groups)),
		flat:  make(map[string]string),
	}

	// A repeated group key replaces the earlier definition but keeps its
	// original position, matching plain JSON object semantics.
	for _, g := range groups {
		if _, seen := t.byKey[g.Key]; seen {
			for i := range t.groups {
				if t.groups[i].Key == g.Key {
					t.groups[i] = g
					break
				}
			}
		} else {
			t.groups = append(t.groups, g)
		}
		t.byKey[g.Key] = g.Colors
	}

	// Flatten for unqualified lookup: the first group to define a name wins,
	// later definitions are ignored.
	for _, g := range t.groups {
		for name, value := range g.Colors {
			if _, ok := t.flat[name]; !ok {
				t.flat[name] = value
			}
		}
	}

	return t
}

// Resolve returns the literal value for a color reference. Unqualified
// references consult the flattened index; qualified references look up the
// group first, then the name within it.
func (t *ColorTable) Resolve(ref Ref) (string, error) {
	if !ref.Qualified {
		value, ok := t.flat[ref.Name]
		if !ok {
			return "", fmt.Errorf("%w: %q%s", ErrColorNotFound, ref.Name, hint(ref.Name, t.Names()))
		}
		return value, nil
	}

	group, ok := t.byKey[ref.Qualifier]
	if !ok {
		return "", fmt.Errorf("%w: %q%s", ErrGroupNotFound, ref.Qualifier, hint(ref.Qualifier, t.GroupKeys()))
	}

	value, ok := group[ref.Name]
	if !ok {
		return "", fmt.Errorf("%w: %q in group %q%s", ErrColorNotFound, ref.Name, ref.Qualifier, hint(ref.Name, SortedKeys(group)))
	}
	return value, nil
}

// Groups returns the color groups in document order.
func (t *ColorTable) Groups() []ColorGroup {
	return t.groups
}

// GroupKeys returns the group keys in document order.
func (t *ColorTable) GroupKeys() []string {
	keys := make([]string, 0, len(t.groups))
	for _, g := range t.groups {
		keys = append(keys, g.Key)
	}
	return keys
}

// Names returns every unqualified color name, sorted.
func (t *ColorTable) Names() []string {
	return SortedKeys(t.flat)
}

// Shadowed reports names defined by more than one group, mapped to the keys
// of the groups that define them in document order. Only the first group's
// value is reachable through an unqualified reference.
func (t *ColorTable) Shadowed() map[string][]string {
	owners := make(map[string][]string)
	for _, g := range t.groups {
		for name := range g.Colors {
			owners[name] = append(owners[name], g.Key)
		}
	}
	for name, groups := range owners {
		if len(groups) < 2 {
			delete(owners, name)
		}
	}
	return owners
}

// BindingTable resolves binding references to the color names they are bound
// to. Binding lookups are always qualified as "category.element".
type BindingTable struct {
	categories []BindingCategory
	byKey      map[string]map[string]string
}

// NewBindingTable builds a table from categories in document order.
func NewBindingTable(categories []BindingCategory) *BindingTable {
	t := &BindingTable{
		byKey: make(map[string]map[string]string, len(categories)),
	}
	for _, c := range categories {
		if _, seen := t.byKey[c.Key]; seen {
			for i := range t.categories {
				if t.categories[i].Key == c.Key {
					t.categories[i] = c
					break
				}
			}
		} else {
			t.categories = append(t.categories, c)
		}
		t.byKey[c.Key] = c.Elements
	}
	return t
}

// Resolve returns the color name bound to a binding reference. The result is
// a name for the color table, not a literal value.
func (t *BindingTable) Resolve(ref Ref) (string, error) {
	if !ref.Qualified {
		return "", fmt.Errorf("%w: %q", ErrUnqualifiedBinding, ref.Name)
	}

	category, ok := t.byKey[ref.Qualifier]
	if !ok {
		return "", fmt.Errorf("%w: %q%s", ErrCategoryNotFound, ref.Qualifier, hint(ref.Qualifier, t.CategoryKeys()))
	}

	name, ok := category[ref.Name]
	if !ok {
		return "", fmt.Errorf("%w: %q in category %q%s", ErrElementNotFound, ref.Name, ref.Qualifier, hint(ref.Name, SortedKeys(category)))
	}
	return name, nil
}

// Categories returns the binding categories in document order.
func (t *BindingTable) Categories() []BindingCategory {
	return t.categories
}

// CategoryKeys returns the category keys in document order.
func (t *BindingTable) CategoryKeys() []string {
	keys := make([]string, 0, len(t.categories))
	for _, c := range t.categories {
		keys = append(keys, c.Key)
	}
	return keys
}

// Mapping pairs the color table and binding table loaded from one mappings
// document.
type Mapping struct {
	Colors   *ColorTable
	Bindings *BindingTable
}

// New builds a Mapping from ordered color groups and binding categories.
func New(groups []ColorGroup, categories []BindingCategory) *Mapping {
	return &Mapping{
		Colors:   NewColorTable(groups),
		Bindings: NewBindingTable(categories),
	}
}

// ResolveColor resolves a color reference in string form to its literal
// value.
func (m *Mapping) ResolveColor(name string) (string, error) {
	ref, err := ParseRef(name)
	if err != nil {
		return "", err
	}
	return m.Colors.Resolve(ref)
}

// BindingTarget resolves a binding reference to the color name it is bound
// to, without resolving the color itself.
func (m *Mapping) BindingTarget(name string) (string, error) {
	ref, err := ParseRef(name)
	if err != nil {
		return "", err
	}
	return m.Bindings.Resolve(ref)
}

// ResolveBinding resolves a binding reference all the way to a literal color
// value: binding, then color name, then value. Errors from either stage are
// returned unchanged.
func (m *Mapping) ResolveBinding(name string) (string, error) {
	target, err := m.BindingTarget(name)
	if err != nil {
		return "", err
	}
	return m.ResolveColor(target)
}
