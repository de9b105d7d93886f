package environment

import (
	"context"
	"path/filepath"

	"github.com/viant/afs"
	"github.com/viant/javaimports/maven"
)

const (
	mavenProject = "maven"
	bazelProject = "bazel"
)

var (
	bazelBuildFiles = []string{"BUILD", "BUILD.bazel"}
	bazelWorkspaces = []string{"WORKSPACE", "WORKSPACE.bazel"}
	bazelModules    = []string{"MODULE", "MODULE.bazel"}
)

// Project describes the build root owning a file
type Project struct {
	Type         string
	RootPath     string
	Descriptor   string
	RelativePath string
}

// Workspace is the bazel workspace enclosing a target
type Workspace struct {
	RootPath string
	Module   bool
}

// Detector identifies project root folders by their descriptor files
type Detector struct {
	fs      afs.Service
	markers []string
}

// NewDetector creates a detector, markers are checked in order within each folder
func NewDetector(fs afs.Service, markers ...string) *Detector {
	if fs == nil {
		fs = afs.New()
	}
	if len(markers) == 0 {
		markers = append([]string{maven.PomFile}, bazelBuildFiles...)
	}
	return &Detector{fs: fs, markers: markers}
}

// Detect searches up from the file folder for a descriptor, ok is false when none is found
func (d *Detector) Detect(ctx context.Context, filePath string) (*Project, bool) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, false
	}
	rootPath, marker := d.findRoot(ctx, filepath.Dir(absPath), d.markers)
	if rootPath == "" {
		return nil, false
	}
	ret := &Project{
		Type:       determineProjectType(marker),
		RootPath:   rootPath,
		Descriptor: filepath.Join(rootPath, marker),
	}
	relPath, err := filepath.Rel(rootPath, absPath)
	if err != nil {
		relPath = filepath.Base(absPath)
	}
	ret.RelativePath = filepath.ToSlash(relPath)
	return ret, true
}

// Workspace searches up from a bazel target folder for a WORKSPACE or MODULE file
func (d *Detector) Workspace(ctx context.Context, target string) (*Workspace, bool) {
	markers := append(append([]string{}, bazelWorkspaces...), bazelModules...)
	rootPath, marker := d.findRoot(ctx, target, markers)
	if rootPath == "" {
		return nil, false
	}
	ret := &Workspace{RootPath: rootPath}
	for _, candidate := range bazelModules {
		ret.Module = ret.Module || marker == candidate
	}
	return ret, true
}

// findRoot searches up from startDir for the first folder holding one of markers
func (d *Detector) findRoot(ctx context.Context, startDir string, markers []string) (string, string) {
	dir := startDir
	for {
		for _, marker := range markers {
			if ok, _ := d.fs.Exists(ctx, filepath.Join(dir, marker)); ok {
				return dir, marker
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ""
}

// determineProjectType identifies the type of project based on the marker file
func determineProjectType(marker string) string {
	switch marker {
	case maven.PomFile:
		return mavenProject
	case bazelBuildFiles[0], bazelBuildFiles[1]:
		return bazelProject
	default:
		return "unknown"
	}
}
