package candidate

import (
	"sort"

	"github.com/viant/javaimports/info"
)

// Source tags where a candidate comes from, higher value means higher priority
type Source int

const (
	External Source = iota
	Stdlib
	Sibling
)

func (s Source) String() string {
	switch s {
	case External:
		return "external"
	case Stdlib:
		return "stdlib"
	case Sibling:
		return "sibling"
	}
	return "unknown"
}

// Candidate is one source proposed import for a symbol
type Candidate struct {
	Import info.Import
	Source Source
}

// Candidates maps a selector to its candidates
type Candidates struct {
	selectors map[string]info.Selector
	entries   map[string][]Candidate
}

// New creates empty candidates
func New() *Candidates {
	return &Candidates{selectors: map[string]info.Selector{}, entries: map[string][]Candidate{}}
}

// Add appends candidates for selector, a selector without candidates is still recorded
func (c *Candidates) Add(selector info.Selector, candidates ...Candidate) {
	key := selector.String()
	if _, ok := c.selectors[key]; !ok {
		c.selectors[key] = selector
	}
	c.entries[key] = append(c.entries[key], candidates...)
}

// Merge adds all entries of other
func (c *Candidates) Merge(other *Candidates) {
	for _, s := range other.Selectors() {
		c.Add(s, other.For(s)...)
	}
}

// For returns candidates of selector
func (c *Candidates) For(selector info.Selector) []Candidate {
	return c.entries[selector.String()]
}

// Selectors returns selectors in lexical order
func (c *Candidates) Selectors() []info.Selector {
	ret := make([]info.Selector, 0, len(c.selectors))
	for _, s := range c.selectors {
		ret = append(ret, s)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].Compare(ret[j]) < 0 })
	return ret
}

// Len returns number of selectors
func (c *Candidates) Len() int {
	return len(c.selectors)
}

// Empty returns true when no selector has any candidate
func (c *Candidates) Empty() bool {
	for _, list := range c.entries {
		if len(list) > 0 {
			return false
		}
	}
	return true
}

// Map builds new candidates applying fn to each selector candidate list
func (c *Candidates) Map(fn func(selector info.Selector, candidates []Candidate) ([]Candidate, error)) (*Candidates, error) {
	ret := New()
	for _, s := range c.Selectors() {
		list, err := fn(s, c.For(s))
		if err != nil {
			return nil, err
		}
		ret.Add(s, list...)
	}
	return ret, nil
}

// BestCandidates holds at most one import per selector
type BestCandidates struct {
	selectors map[string]info.Selector
	imports   map[string]info.Import
}

func newBest() *BestCandidates {
	return &BestCandidates{selectors: map[string]info.Selector{}, imports: map[string]info.Import{}}
}

func (b *BestCandidates) put(selector info.Selector, i info.Import) {
	b.selectors[selector.String()] = selector
	b.imports[selector.String()] = i
}

// For returns the import selected for selector
func (b *BestCandidates) For(selector info.Selector) (info.Import, bool) {
	i, ok := b.imports[selector.String()]
	return i, ok
}

// Selectors returns resolved selectors in lexical order
func (b *BestCandidates) Selectors() []info.Selector {
	ret := make([]info.Selector, 0, len(b.selectors))
	for _, s := range b.selectors {
		ret = append(ret, s)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].Compare(ret[j]) < 0 })
	return ret
}

// Len returns number of resolved selectors
func (b *BestCandidates) Len() int {
	return len(b.imports)
}
