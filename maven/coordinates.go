package maven

import (
	"fmt"

	"github.com/viant/javaimports/info"
)

const (
	defaultType  = "jar"
	defaultScope = "compile"
	pomType      = "pom"
	testJarType  = "test-jar"
)

// Coordinates identifies an artifact
type Coordinates struct {
	GroupID    string
	ArtifactID string
	Version    string
	Type       string
	Classifier string
}

// Versionless identifies an artifact regardless of its version
type Versionless struct {
	GroupID    string
	ArtifactID string
	Type       string
	Classifier string
}

// Versionless drops the version
func (c Coordinates) Versionless() Versionless {
	return Versionless{GroupID: c.GroupID, ArtifactID: c.ArtifactID, Type: c.kind(), Classifier: c.Classifier}
}

func (c Coordinates) kind() string {
	if c.Type == "" {
		return defaultType
	}
	return c.Type
}

func (c Coordinates) String() string {
	ret := c.GroupID + ":" + c.ArtifactID + ":" + c.kind()
	if c.Classifier != "" {
		ret += ":" + c.Classifier
	}
	if c.Version != "" {
		ret += ":" + c.Version
	}
	return ret
}

// Exclusion removes a transitive artifact from a dependency subtree
type Exclusion struct {
	GroupID    string
	ArtifactID string
}

// Matches returns true if the exclusion applies to d, * acts as a wildcard
func (e Exclusion) Matches(d Dependency) bool {
	return (e.GroupID == "*" || e.GroupID == d.GroupID) && (e.ArtifactID == "*" || e.ArtifactID == d.ArtifactID)
}

// Dependency represents a declared dependency
type Dependency struct {
	Coordinates
	Scope      string
	Optional   bool
	Exclusions []Exclusion
	Kind       info.Kind
}

// HasScope returns true if the effective scope is scope
func (d Dependency) HasScope(scope string) bool {
	if d.Scope == "" {
		return scope == defaultScope
	}
	return d.Scope == scope
}

// WellDefined returns true when the version is present and free of property references
func (d Dependency) WellDefined() bool {
	return d.Version != "" && !HasPropertyReference(d.Version)
}

// Excluded returns true if any exclusion matches d
func Excluded(exclusions []Exclusion, d Dependency) bool {
	for _, e := range exclusions {
		if e.Matches(d) {
			return true
		}
	}
	return false
}

func (d Dependency) String() string {
	return fmt.Sprintf("%v (%v)", d.Coordinates, d.Kind)
}
