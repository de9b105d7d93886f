package java

import (
	"unicode"

	"github.com/viant/javaimports/info"
)

// File is a parsed Java source file
type File struct {
	path       string
	pkg        info.Selector
	pkgEnd     int
	imports    []*Import
	duplicates []*Import
	top        info.IdentifierSet
	classes    map[string]*info.ClassEntity
	importable []info.Import
	unresolved info.IdentifierSet
	orphans    []*info.OrphanClass
}

// Path returns the file location
func (f *File) Path() string {
	return f.path
}

// Package returns the declared package
func (f *File) Package() info.Selector {
	return f.pkg
}

// PackageEnd returns the offset right after the package clause, 0 without one
func (f *File) PackageEnd() int {
	return f.pkgEnd
}

// Imports returns distinct import declarations in source order
func (f *File) Imports() []*Import {
	return f.imports
}

// Duplicates returns import declarations repeating an earlier one
func (f *File) Duplicates() []*Import {
	return f.duplicates
}

// TopLevelDeclarations returns identifiers declared at file level
func (f *File) TopLevelDeclarations() info.IdentifierSet {
	return f.top.Clone()
}

// FindImports returns single type or static imports ending with identifier
func (f *File) FindImports(identifier info.Identifier) []info.Import {
	var ret []info.Import
	for _, i := range f.imports {
		if !i.Wildcard && i.Selector.Identifier() == identifier {
			ret = append(ret, i.Import)
		}
	}
	return ret
}

// Imported returns identifiers brought in scope by single type and static imports
func (f *File) Imported() info.IdentifierSet {
	ret := info.IdentifierSet{}
	for _, i := range f.imports {
		if !i.Wildcard {
			ret.Add(i.Selector.Identifier())
		}
	}
	return ret
}

// FindImportables returns classes declared in the file named identifier
func (f *File) FindImportables(identifier info.Identifier) []info.Import {
	var ret []info.Import
	for _, i := range f.importable {
		if i.Selector.Identifier() == identifier {
			ret = append(ret, i)
		}
	}
	return ret
}

// FindClass returns a class declared in the file
func (f *File) FindClass(i info.Import) (*info.ClassEntity, bool) {
	c, ok := f.classes[i.Selector.String()]
	return c, ok
}

// Unresolved returns identifiers the file neither declares nor inherits locally, imports are not considered
func (f *File) Unresolved() info.IdentifierSet {
	return f.unresolved.Clone()
}

// Orphans returns classes whose superclass is declared outside of the file
func (f *File) Orphans() *info.Orphans {
	ret := make([]*info.OrphanClass, 0, len(f.orphans))
	for _, o := range f.orphans {
		ret = append(ret, info.NewOrphanClass(o.Name, o.Unresolved, o.Parent))
	}
	return info.NewOrphans(ret...)
}

func (f *File) qualify(name info.Selector) info.Selector {
	if f.pkg.IsZero() {
		return name
	}
	return f.pkg.Combine(name)
}

// superclass resolves a superclass reference using local classes then imports
func (f *File) superclass(selector info.Selector, s *scanner, self *class) *info.Superclass {
	if local := s.lookup(selector, self); local != nil {
		return info.ResolvedSuperclass(info.NewImport(f.qualify(local.name), false))
	}
	for _, i := range f.imports {
		if i.Static || i.Wildcard || i.Selector.Identifier() != selector.At(0) {
			continue
		}
		if joined, err := i.Selector.Join(selector); err == nil {
			return info.ResolvedSuperclass(info.NewImport(joined, false))
		}
	}
	if selector.Size() > 1 && unicode.IsLower([]rune(string(selector.At(0)))[0]) {
		return info.ResolvedSuperclass(info.NewImport(selector, false))
	}
	return info.UnresolvedSuperclass(selector)
}

func (f *File) build(s *scanner, unresolved info.IdentifierSet) {
	f.top = info.IdentifierSet{}
	f.classes = map[string]*info.ClassEntity{}
	for _, c := range s.classes {
		if c.topLevel {
			f.top.Add(c.name.Identifier())
		}
		name := f.qualify(c.name)
		builder := info.NewClassEntityBuilder(name).Declare(c.members.Sorted()...)
		switch {
		case !c.extends.IsZero():
			builder.Extends(f.superclass(c.extends, s, c))
		case c.inheritsObject():
			builder.Extends(info.ResolvedSuperclass(info.NewImport(info.JavaLangObject.Name, false)))
		}
		f.classes[name.String()] = builder.Build()
		f.importable = append(f.importable, info.NewImport(name, false))
	}
	f.unresolved = unresolved
	for _, ext := range s.orphans {
		f.orphans = append(f.orphans, info.NewOrphanClass(f.qualify(ext.class.name), ext.unresolved, f.superclass(ext.parent, s, ext.class)))
	}
}
