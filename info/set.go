package info

import "sort"

// IdentifierSet is a set of identifiers
type IdentifierSet map[Identifier]struct{}

// NewIdentifierSet creates a set
func NewIdentifierSet(ids ...Identifier) IdentifierSet {
	ret := make(IdentifierSet, len(ids))
	for _, id := range ids {
		ret[id] = struct{}{}
	}
	return ret
}

// Add adds identifiers
func (s IdentifierSet) Add(ids ...Identifier) {
	for _, id := range ids {
		s[id] = struct{}{}
	}
}

// AddAll adds all identifiers of other
func (s IdentifierSet) AddAll(other IdentifierSet) {
	for id := range other {
		s[id] = struct{}{}
	}
}

// Has returns true if id is in the set
func (s IdentifierSet) Has(id Identifier) bool {
	_, ok := s[id]
	return ok
}

// Remove removes identifiers
func (s IdentifierSet) Remove(ids ...Identifier) {
	for _, id := range ids {
		delete(s, id)
	}
}

// Clone returns a copy
func (s IdentifierSet) Clone() IdentifierSet {
	ret := make(IdentifierSet, len(s))
	for id := range s {
		ret[id] = struct{}{}
	}
	return ret
}

// Difference returns identifiers of s not in other
func (s IdentifierSet) Difference(other IdentifierSet) IdentifierSet {
	ret := make(IdentifierSet, len(s))
	for id := range s {
		if !other.Has(id) {
			ret[id] = struct{}{}
		}
	}
	return ret
}

// Sorted returns identifiers in lexical order
func (s IdentifierSet) Sorted() []Identifier {
	ret := make([]Identifier, 0, len(s))
	for id := range s {
		ret = append(ret, id)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i] < ret[j] })
	return ret
}
