package info

// OrphanClass is a class whose used identifiers cannot all be accounted for until its superclass chain is known
type OrphanClass struct {
	Name       Selector
	Unresolved IdentifierSet
	Parent     *Superclass
}

// NewOrphanClass creates an orphan
func NewOrphanClass(name Selector, unresolved IdentifierSet, parent *Superclass) *OrphanClass {
	return &OrphanClass{Name: name, Unresolved: unresolved.Clone(), Parent: parent}
}

// NeedsParent returns true while a superclass remains to be looked at
func (o *OrphanClass) NeedsParent() bool {
	return o.Parent != nil && len(o.Unresolved) > 0
}

// AddParent absorbs parent declarations and advances to the parent's own superclass
func (o *OrphanClass) AddParent(parent *ClassEntity) *OrphanClass {
	return &OrphanClass{
		Name:       o.Name,
		Unresolved: o.Unresolved.Difference(parent.declarations),
		Parent:     parent.Parent,
	}
}

// AddDeclarations removes identifiers known to be declared elsewhere
func (o *OrphanClass) AddDeclarations(ids IdentifierSet) *OrphanClass {
	return &OrphanClass{Name: o.Name, Unresolved: o.Unresolved.Difference(ids), Parent: o.Parent}
}

// Orphans groups the orphan classes of a file
type Orphans struct {
	classes []*OrphanClass
}

// NewOrphans creates orphans
func NewOrphans(classes ...*OrphanClass) *Orphans {
	return &Orphans{classes: classes}
}

// Classes returns orphan classes
func (o *Orphans) Classes() []*OrphanClass {
	return o.classes
}

// Len returns number of classes
func (o *Orphans) Len() int {
	return len(o.classes)
}

// Unresolved returns identifiers not yet resolved across all classes
func (o *Orphans) Unresolved() IdentifierSet {
	ret := IdentifierSet{}
	for _, c := range o.classes {
		ret.AddAll(c.Unresolved)
	}
	return ret
}

// NeedsParents returns true if any class still needs a parent
func (o *Orphans) NeedsParents() bool {
	for _, c := range o.classes {
		if c.NeedsParent() {
			return true
		}
	}
	return false
}

// AddDeclarations removes ids from every class
func (o *Orphans) AddDeclarations(ids IdentifierSet) {
	for i, c := range o.classes {
		o.classes[i] = c.AddDeclarations(ids)
	}
}

// Pending returns indexes of classes needing a parent
func (o *Orphans) Pending() []int {
	var ret []int
	for i, c := range o.classes {
		if c.NeedsParent() {
			ret = append(ret, i)
		}
	}
	return ret
}

// Get returns class at index
func (o *Orphans) Get(i int) *OrphanClass {
	return o.classes[i]
}

// Replace swaps class at index
func (o *Orphans) Replace(i int, c *OrphanClass) {
	o.classes[i] = c
}
