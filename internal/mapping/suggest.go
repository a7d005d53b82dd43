package mapping

import (
	"fmt"
	"sort"

	"github.com/sahilm/fuzzy"
)

// hint returns a "did you mean" suffix for an unresolved name, or an empty
// string when no candidate is close enough to be worth suggesting.
func hint(name string, candidates []string) string {
	sort.Strings(candidates)
	matches := fuzzy.Find(name, candidates)
	if len(matches) == 0 || matches[0].Str == name {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", matches[0].Str)
}

// SortedKeys returns the keys of m in sorted order.
func SortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
