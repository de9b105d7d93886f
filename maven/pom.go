package maven

import (
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"strings"

	"github.com/viant/afs"
)

// DefaultParentPath is used when a parent declares no relativePath
const DefaultParentPath = "../pom.xml"

type (
	pomProject struct {
		XMLName              xml.Name         `xml:"project"`
		GroupID              string           `xml:"groupId"`
		ArtifactID           string           `xml:"artifactId"`
		Version              string           `xml:"version"`
		Parent               *pomParent       `xml:"parent"`
		Properties           pomProperties    `xml:"properties"`
		Dependencies         []pomDependency  `xml:"dependencies>dependency"`
		DependencyManagement *pomDependencies `xml:"dependencyManagement"`
	}

	pomDependencies struct {
		Dependencies []pomDependency `xml:"dependencies>dependency"`
	}

	pomParent struct {
		GroupID      string  `xml:"groupId"`
		ArtifactID   string  `xml:"artifactId"`
		Version      string  `xml:"version"`
		RelativePath *string `xml:"relativePath"`
	}

	pomDependency struct {
		GroupID    string         `xml:"groupId"`
		ArtifactID string         `xml:"artifactId"`
		Version    string         `xml:"version"`
		Type       string         `xml:"type"`
		Classifier string         `xml:"classifier"`
		Scope      string         `xml:"scope"`
		Optional   string         `xml:"optional"`
		Exclusions []pomExclusion `xml:"exclusions>exclusion"`
	}

	pomExclusion struct {
		GroupID    string `xml:"groupId"`
		ArtifactID string `xml:"artifactId"`
	}

	pomProperties map[string]string
)

// UnmarshalXML collects arbitrary property elements
func (p *pomProperties) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	if *p == nil {
		*p = pomProperties{}
	}
	for {
		token, err := d.Token()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		switch t := token.(type) {
		case xml.StartElement:
			var value string
			if err = d.DecodeElement(&value, &t); err != nil {
				return err
			}
			(*p)[t.Name.Local] = strings.TrimSpace(value)
		case xml.EndElement:
			return nil
		}
	}
}

// Parent links a descriptor to its parent
type Parent struct {
	Coordinates  Coordinates
	RelativePath string
}

// HasRelativePath returns true when the parent can be looked up on the file system
func (p *Parent) HasRelativePath() bool {
	return p != nil && p.RelativePath != ""
}

// ParsePom decodes descriptor content
func ParsePom(data []byte) (*FlatPom, error) {
	project := &pomProject{}
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.Strict = false
	if err := decoder.Decode(project); err != nil {
		return nil, err
	}
	properties := map[string]string{}
	for k, v := range project.Properties {
		properties[k] = v
	}
	groupID, version := project.GroupID, project.Version
	if project.Parent != nil {
		if groupID == "" {
			groupID = project.Parent.GroupID
		}
		if version == "" {
			version = project.Parent.Version
		}
	}
	if groupID != "" {
		properties["project.groupId"] = groupID
	}
	if version != "" {
		properties["project.version"] = version
	}
	var managed []Dependency
	if project.DependencyManagement != nil {
		managed = convert(project.DependencyManagement.Dependencies)
	}
	return NewFlatPom(convert(project.Dependencies), managed, properties, parentOf(project.Parent)), nil
}

// LoadPom reads and decodes a descriptor, on failure an empty descriptor is returned along with the error
func LoadPom(ctx context.Context, fs afs.Service, path string) (*FlatPom, error) {
	data, err := fs.DownloadWithURL(ctx, path)
	if err != nil {
		return NewFlatPom(nil, nil, nil, nil), newPomError("read", path, err)
	}
	pom, err := ParsePom(data)
	if err != nil {
		return NewFlatPom(nil, nil, nil, nil), newPomError("parse", path, err)
	}
	return pom, nil
}

func parentOf(p *pomParent) *Parent {
	if p == nil {
		return nil
	}
	ret := &Parent{
		Coordinates:  Coordinates{GroupID: strings.TrimSpace(p.GroupID), ArtifactID: strings.TrimSpace(p.ArtifactID), Version: strings.TrimSpace(p.Version), Type: pomType},
		RelativePath: DefaultParentPath,
	}
	if p.RelativePath != nil {
		ret.RelativePath = strings.TrimSpace(*p.RelativePath)
	}
	return ret
}

func convert(dependencies []pomDependency) []Dependency {
	ret := make([]Dependency, 0, len(dependencies))
	for _, d := range dependencies {
		dep := Dependency{
			Coordinates: Coordinates{
				GroupID:    strings.TrimSpace(d.GroupID),
				ArtifactID: strings.TrimSpace(d.ArtifactID),
				Version:    strings.TrimSpace(d.Version),
				Type:       strings.TrimSpace(d.Type),
				Classifier: strings.TrimSpace(d.Classifier),
			},
			Scope:    strings.TrimSpace(d.Scope),
			Optional: strings.TrimSpace(d.Optional) == "true",
		}
		for _, e := range d.Exclusions {
			dep.Exclusions = append(dep.Exclusions, Exclusion{GroupID: strings.TrimSpace(e.GroupID), ArtifactID: strings.TrimSpace(e.ArtifactID)})
		}
		ret = append(ret, dep)
	}
	return ret
}
