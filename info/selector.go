package info

import (
	"fmt"
	"strings"
)

// Identifier is a bare symbol name
type Identifier string

// String returns identifier text
func (i Identifier) String() string {
	return string(i)
}

// Selector is a non-empty dotted path of identifiers (package, class, nested class)
type Selector struct {
	ids []Identifier
}

// NewSelector creates a selector, it panics when no identifier is given
func NewSelector(ids ...Identifier) Selector {
	if len(ids) == 0 {
		panic("info: empty selector")
	}
	cp := make([]Identifier, len(ids))
	copy(cp, ids)
	return Selector{ids: cp}
}

// ParseSelector splits a dotted path into a selector
func ParseSelector(path string) (Selector, error) {
	if path == "" {
		return Selector{}, fmt.Errorf("empty selector")
	}
	parts := strings.Split(path, ".")
	ids := make([]Identifier, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return Selector{}, fmt.Errorf("invalid selector %q", path)
		}
		ids = append(ids, Identifier(part))
	}
	return Selector{ids: ids}, nil
}

// MustParseSelector is ParseSelector that panics on error
func MustParseSelector(path string) Selector {
	s, err := ParseSelector(path)
	if err != nil {
		panic(err)
	}
	return s
}

// IsZero returns true for the zero value
func (s Selector) IsZero() bool {
	return len(s.ids) == 0
}

// Size returns number of identifiers
func (s Selector) Size() int {
	return len(s.ids)
}

// Segments returns a copy of the identifiers
func (s Selector) Segments() []Identifier {
	cp := make([]Identifier, len(s.ids))
	copy(cp, s.ids)
	return cp
}

// At returns identifier at position i
func (s Selector) At(i int) Identifier {
	return s.ids[i]
}

// Identifier returns the last identifier
func (s Selector) Identifier() Identifier {
	return s.ids[len(s.ids)-1]
}

// Scope returns all but the last identifier, ok is false for a single identifier selector
func (s Selector) Scope() (Selector, bool) {
	if len(s.ids) < 2 {
		return Selector{}, false
	}
	return Selector{ids: s.ids[:len(s.ids)-1]}, true
}

// Equal compares selectors structurally
func (s Selector) Equal(o Selector) bool {
	if len(s.ids) != len(o.ids) {
		return false
	}
	for i := range s.ids {
		if s.ids[i] != o.ids[i] {
			return false
		}
	}
	return true
}

// StartsWith returns true if prefix is a leading part of s
func (s Selector) StartsWith(prefix Selector) bool {
	if len(prefix.ids) > len(s.ids) {
		return false
	}
	for i := range prefix.ids {
		if s.ids[i] != prefix.ids[i] {
			return false
		}
	}
	return true
}

// EndsWith returns true if suffix is a trailing part of s
func (s Selector) EndsWith(suffix Selector) bool {
	offset := len(s.ids) - len(suffix.ids)
	if offset < 0 {
		return false
	}
	for i := range suffix.ids {
		if s.ids[offset+i] != suffix.ids[i] {
			return false
		}
	}
	return true
}

// Combine concatenates two selectors
func (s Selector) Combine(o Selector) Selector {
	ids := make([]Identifier, 0, len(s.ids)+len(o.ids))
	ids = append(ids, s.ids...)
	ids = append(ids, o.ids...)
	return Selector{ids: ids}
}

// Join concatenates two selectors sharing an identifier: the last identifier of s must be the first of o.
// a.b.C joined with C.D gives a.b.C.D
func (s Selector) Join(o Selector) (Selector, error) {
	if s.IsZero() || o.IsZero() || s.Identifier() != o.ids[0] {
		return Selector{}, fmt.Errorf("cannot join %v with %v", s, o)
	}
	return s.Combine(Selector{ids: o.ids[1:]}), nil
}

// Subtract removes suffix o from s keeping the shared identifier: a.b.C.D minus C.D gives a.b.C
func (s Selector) Subtract(o Selector) (Selector, error) {
	if o.IsZero() || !s.EndsWith(o) {
		return Selector{}, fmt.Errorf("%v does not end with %v", s, o)
	}
	cutoff := len(s.ids) - len(o.ids) + 1
	return Selector{ids: s.ids[:cutoff]}, nil
}

// Rebase removes prefix from s keeping the prefix last identifier: a.b.C.D rebased on a.b.C gives C.D
func (s Selector) Rebase(prefix Selector) (Selector, error) {
	if prefix.IsZero() || !s.StartsWith(prefix) {
		return Selector{}, fmt.Errorf("%v does not start with %v", s, prefix)
	}
	return Selector{ids: s.ids[len(prefix.ids)-1:]}, nil
}

// Path returns identifiers joined with separator
func (s Selector) Path(separator string) string {
	var sb strings.Builder
	for i, id := range s.ids {
		if i > 0 {
			sb.WriteString(separator)
		}
		sb.WriteString(string(id))
	}
	return sb.String()
}

// String returns dot joined identifiers
func (s Selector) String() string {
	return s.Path(".")
}

// Compare orders selectors lexically by their dotted form
func (s Selector) Compare(o Selector) int {
	return strings.Compare(s.String(), o.String())
}
