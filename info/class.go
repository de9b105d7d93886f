package info

// Superclass references a parent class, either resolved to an import or still an unresolved selector
type Superclass struct {
	resolved   *Import
	unresolved Selector
}

// ResolvedSuperclass creates a resolved superclass
func ResolvedSuperclass(i Import) *Superclass {
	return &Superclass{resolved: &i}
}

// UnresolvedSuperclass creates an unresolved superclass
func UnresolvedSuperclass(s Selector) *Superclass {
	return &Superclass{unresolved: s}
}

// IsResolved returns true if the superclass is known as an import
func (s *Superclass) IsResolved() bool {
	return s.resolved != nil
}

// Resolved returns the superclass import
func (s *Superclass) Resolved() (Import, bool) {
	if s.resolved == nil {
		return Import{}, false
	}
	return *s.resolved, true
}

// Unresolved returns the superclass selector as written, or the import selector once resolved
func (s *Superclass) Unresolved() Selector {
	if s.resolved != nil {
		return s.resolved.Selector
	}
	return s.unresolved
}

// Resolve returns a resolved copy, a resolved superclass never reverts
func (s *Superclass) Resolve(i Import) *Superclass {
	if s.resolved != nil {
		return s
	}
	return ResolvedSuperclass(i)
}

func (s *Superclass) String() string {
	if s == nil {
		return "<none>"
	}
	if s.resolved != nil {
		return s.resolved.String()
	}
	return s.unresolved.String()
}

// ClassEntity represents a declared class public surface
type ClassEntity struct {
	Name         Selector
	declarations IdentifierSet
	Parent       *Superclass
}

// Declarations returns a copy of declared identifiers
func (c *ClassEntity) Declarations() IdentifierSet {
	return c.declarations.Clone()
}

// Declares returns true if the class declares id
func (c *ClassEntity) Declares(id Identifier) bool {
	return c.declarations.Has(id)
}

// ClassEntityBuilder accumulates declarations before freezing a ClassEntity
type ClassEntityBuilder struct {
	name         Selector
	declarations IdentifierSet
	parent       *Superclass
}

// NewClassEntityBuilder creates a builder
func NewClassEntityBuilder(name Selector) *ClassEntityBuilder {
	return &ClassEntityBuilder{name: name, declarations: IdentifierSet{}}
}

// Declare adds declarations
func (b *ClassEntityBuilder) Declare(ids ...Identifier) *ClassEntityBuilder {
	b.declarations.Add(ids...)
	return b
}

// Extends sets the parent
func (b *ClassEntityBuilder) Extends(parent *Superclass) *ClassEntityBuilder {
	b.parent = parent
	return b
}

// Build freezes the entity
func (b *ClassEntityBuilder) Build() *ClassEntity {
	return &ClassEntity{Name: b.name, declarations: b.declarations.Clone(), Parent: b.parent}
}

// JavaLangObject is the implicit root of every class hierarchy
var JavaLangObject = NewClassEntityBuilder(MustParseSelector("java.lang.Object")).
	Declare("clone", "equals", "finalize", "getClass", "hashCode", "notify", "notifyAll", "toString", "wait").
	Build()
