package mapping

import (
	"fmt"
	"strings"
)

// Ref is a color or binding reference, possibly qualified with a group or
// category key. "sky" is unqualified; "blues.sky" carries qualifier "blues".
type Ref struct {
	Qualifier string
	Name      string
	Qualified bool
}

// ParseRef splits a reference on its dot. References containing more than
// one dot are rejected with ErrMalformedName. A leading or trailing dot
// still counts as a split, so ".sky" is qualified with an empty qualifier
// and "sky." has an empty name.
func ParseRef(s string) (Ref, error) {
	switch strings.Count(s, ".") {
	case 0:
		return Ref{Name: s}, nil
	case 1:
		qualifier, name, _ := strings.Cut(s, ".")
		return Ref{Qualifier: qualifier, Name: name, Qualified: true}, nil
	default:
		return Ref{}, fmt.Errorf("%w: %q contains more than one dot", ErrMalformedName, s)
	}
}

// String reassembles the reference.
func (r Ref) String() string {
	if r.Qualified {
		return r.Qualifier + "." + r.Name
	}
	return r.Name
}
