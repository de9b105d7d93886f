package stdlib

import (
	"sort"

	"github.com/viant/javaimports/info"
)

var javaLang = info.MustParseSelector("java.lang")

// Provider resolves identifiers declared by the platform library
type Provider struct {
	byIdentifier map[info.Identifier][]info.Import
	classes      map[string]*info.ClassEntity
}

// New creates a provider backed by the builtin table, extra holds additional fully qualified class names
func New(extra ...string) (*Provider, error) {
	ret := &Provider{byIdentifier: map[info.Identifier][]info.Import{}, classes: map[string]*info.ClassEntity{}}
	for name, entry := range hierarchy {
		selector := info.MustParseSelector(name)
		ids := make([]info.Identifier, 0, len(entry.members))
		for _, member := range entry.members {
			ids = append(ids, info.Identifier(member))
		}
		parent := info.NewImport(info.MustParseSelector(entry.parent), false)
		ret.classes[name] = info.NewClassEntityBuilder(selector).Declare(ids...).Extends(info.ResolvedSuperclass(parent)).Build()
	}
	packages := make([]string, 0, len(classes))
	for pkg := range classes {
		packages = append(packages, pkg)
	}
	sort.Strings(packages)
	for _, pkg := range packages {
		for _, name := range classes[pkg] {
			ret.add(info.MustParseSelector(pkg + "." + name))
		}
	}
	names := make([]string, 0, len(hierarchy))
	for name := range hierarchy {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		ret.add(info.MustParseSelector(name))
	}
	for _, name := range extra {
		selector, err := info.ParseSelector(name)
		if err != nil {
			return nil, err
		}
		ret.add(selector)
	}
	return ret, nil
}

// Default returns the builtin provider
func Default() *Provider {
	ret, _ := New()
	return ret
}

func (p *Provider) add(selector info.Selector) {
	id := selector.Identifier()
	for _, existing := range p.byIdentifier[id] {
		if existing.Selector.Equal(selector) {
			return
		}
	}
	p.byIdentifier[id] = append(p.byIdentifier[id], info.NewImport(selector, false))
}

// FindImports returns platform classes named identifier
func (p *Provider) FindImports(identifier info.Identifier) []info.Import {
	found := p.byIdentifier[identifier]
	ret := make([]info.Import, len(found))
	copy(ret, found)
	return ret
}

// IsInJavaLang returns true when identifier is a top level java.lang class, nested ones like
// Thread.State still need an import
func (p *Provider) IsInJavaLang(identifier info.Identifier) bool {
	for _, i := range p.byIdentifier[identifier] {
		if i.Selector.StartsWith(javaLang) && i.Selector.Size() == javaLang.Size()+1 {
			return true
		}
	}
	return false
}

// FindClass returns a platform class. Commonly extended classes carry their members and superclass,
// any other class only inherits from java.lang.Object.
func (p *Provider) FindClass(i info.Import) (*info.ClassEntity, bool) {
	if entity, ok := p.classes[i.Key()]; ok {
		return entity, true
	}
	for _, known := range p.byIdentifier[i.Selector.Identifier()] {
		if !known.Selector.Equal(i.Selector) {
			continue
		}
		builder := info.NewClassEntityBuilder(i.Selector)
		if !i.Selector.Equal(info.JavaLangObject.Name) {
			builder.Extends(info.ResolvedSuperclass(info.NewImport(info.JavaLangObject.Name, false)))
		}
		return builder.Build(), true
	}
	return nil, false
}
