package maven

// FlatPom is a simplified descriptor exposing dependencies, it can be merged with its parents
type FlatPom struct {
	dependencies []Dependency
	managed      map[Versionless]Dependency
	managedOrder []Versionless
	properties   map[string]string
	parent       *Parent
}

// NewFlatPom creates a descriptor, among managed dependencies sharing coordinates the first one wins
func NewFlatPom(dependencies, managed []Dependency, properties map[string]string, parent *Parent) *FlatPom {
	ret := &FlatPom{
		dependencies: append([]Dependency{}, dependencies...),
		managed:      map[Versionless]Dependency{},
		properties:   map[string]string{},
		parent:       parent,
	}
	for k, v := range properties {
		ret.properties[k] = v
	}
	for _, d := range managed {
		ret.addManaged(d)
	}
	ret.apply()
	return ret
}

func (p *FlatPom) addManaged(d Dependency) {
	key := d.Versionless()
	if _, ok := p.managed[key]; ok {
		return
	}
	p.managed[key] = d
	p.managedOrder = append(p.managedOrder, key)
}

func (p *FlatPom) apply() {
	for i, d := range p.dependencies {
		if managed, ok := p.managed[d.Versionless()]; ok {
			if d.Version == "" {
				d.Version = managed.Version
			}
			if d.Scope == "" {
				d.Scope = managed.Scope
			}
			if !d.Optional {
				d.Optional = managed.Optional
			}
			if len(d.Exclusions) == 0 {
				d.Exclusions = managed.Exclusions
			}
		}
		d.Version = Substitute(d.Version, p.properties)
		d.GroupID = Substitute(d.GroupID, p.properties)
		p.dependencies[i] = d
	}
	for _, key := range p.managedOrder {
		d := p.managed[key]
		d.Version = Substitute(d.Version, p.properties)
		p.managed[key] = d
	}
}

// Dependencies returns declared dependencies
func (p *FlatPom) Dependencies() []Dependency {
	return append([]Dependency{}, p.dependencies...)
}

// ManagedDependencies returns managed dependencies in declaration order
func (p *FlatPom) ManagedDependencies() []Dependency {
	ret := make([]Dependency, 0, len(p.managedOrder))
	for _, key := range p.managedOrder {
		ret = append(ret, p.managed[key])
	}
	return ret
}

// Properties returns a copy of properties
func (p *FlatPom) Properties() map[string]string {
	ret := make(map[string]string, len(p.properties))
	for k, v := range p.properties {
		ret[k] = v
	}
	return ret
}

// Parent returns the parent link, nil when none
func (p *FlatPom) Parent() *Parent {
	return p.parent
}

// WellDefined returns true when every dependency has a version free of property references
func (p *FlatPom) WellDefined() bool {
	for _, d := range p.dependencies {
		if !d.WellDefined() {
			return false
		}
	}
	return true
}

// Merge enriches the descriptor with its parent: managed dependencies and properties of other are
// used as lower priority defaults, and the parent link moves to other's parent. It is a no-op when
// the descriptor is already well defined.
func (p *FlatPom) Merge(other *FlatPom) {
	if p.WellDefined() {
		return
	}
	p.mergeManaged(other.ManagedDependencies())
	for k, v := range other.properties {
		if _, ok := p.properties[k]; !ok {
			p.properties[k] = v
		}
	}
	p.parent = other.parent
	p.apply()
}

// mergeManaged adds managed dependencies without overriding existing ones, regardless of WellDefined
func (p *FlatPom) mergeManaged(managed []Dependency) {
	for _, d := range managed {
		p.addManaged(d)
	}
	p.apply()
}
