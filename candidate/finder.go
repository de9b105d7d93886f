package candidate

import (
	"github.com/viant/javaimports/info"
)

// ImportProvider offers imports declaring an identifier
type ImportProvider interface {
	FindImports(identifier info.Identifier) []info.Import
}

// ImportProviderFunc adapts a function to ImportProvider
type ImportProviderFunc func(identifier info.Identifier) []info.Import

// FindImports calls fn
func (fn ImportProviderFunc) FindImports(identifier info.Identifier) []info.Import {
	return fn(identifier)
}

// Finder fans a selector out to every registered provider and tags results with their source
type Finder struct {
	providers map[Source][]ImportProvider
}

// NewFinder creates a finder
func NewFinder() *Finder {
	return &Finder{providers: map[Source][]ImportProvider{}}
}

// Add registers providers for a source
func (f *Finder) Add(source Source, providers ...ImportProvider) {
	for _, p := range providers {
		if p != nil {
			f.providers[source] = append(f.providers[source], p)
		}
	}
}

// Find returns candidates for selector: imports whose path ends with selector, truncated so that
// they import the selector first identifier (a.b.C for C.D)
func (f *Finder) Find(selectors ...info.Selector) *Candidates {
	ret := New()
	for _, selector := range selectors {
		ret.Add(selector)
		seen := map[string]bool{}
		for _, source := range []Source{Sibling, Stdlib, External} {
			for _, provider := range f.providers[source] {
				for _, i := range provider.FindImports(selector.Identifier()) {
					if !i.Selector.EndsWith(selector) {
						continue
					}
					truncated, err := i.Selector.Subtract(selector)
					if err != nil {
						continue
					}
					c := Candidate{Import: info.NewImport(truncated, i.Static), Source: source}
					key := source.String() + "/" + c.Import.Key()
					if seen[key] {
						continue
					}
					seen[key] = true
					ret.Add(selector, c)
				}
			}
		}
	}
	return ret
}
