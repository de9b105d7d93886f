package maven

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/javaimports/info"
)

// PomFile is the descriptor file name
const PomFile = "pom.xml"

// Finder collects the dependencies declared by a module and its relative parent chain
type Finder struct {
	fs     afs.Service
	logger *slog.Logger
}

// NewFinder creates a finder
func NewFinder(fs afs.Service, logger *slog.Logger) *Finder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Finder{fs: fs, logger: logger}
}

// FindAll returns the direct dependencies of the module rooted at moduleRoot.
// Descriptor errors are returned joined alongside whatever could be collected.
func (f *Finder) FindAll(ctx context.Context, moduleRoot string) ([]Dependency, error) {
	var errs []error
	pomPath := filepath.Join(moduleRoot, PomFile)
	pom, err := LoadPom(ctx, f.fs, pomPath)
	if err != nil {
		errs = append(errs, err)
	}
	visited := map[string]bool{pomPath: true}
	dir := moduleRoot
	for pom.Parent().HasRelativePath() && !pom.WellDefined() {
		parentPath := relativeParentPom(dir, pom.Parent().RelativePath)
		if visited[parentPath] {
			break
		}
		visited[parentPath] = true
		parent, err := LoadPom(ctx, f.fs, parentPath)
		if err != nil {
			errs = append(errs, err)
		}
		pom.Merge(parent)
		dir = filepath.Dir(parentPath)
	}

	var ret []Dependency
	for _, d := range pom.Dependencies() {
		if d.WellDefined() {
			if _, err := NormalizeVersion(d.Version); err != nil {
				f.logger.Warn("maven.dependency.skip", "dependency", d.Coordinates.String(), "error", err)
				continue
			}
		}
		d.Kind = info.Direct
		ret = append(ret, d)
	}
	return ret, errors.Join(errs...)
}

func relativeParentPom(dir, relative string) string {
	relative = filepath.FromSlash(strings.TrimSuffix(relative, "/"))
	if filepath.Base(relative) != PomFile {
		relative = filepath.Join(relative, PomFile)
	}
	if filepath.IsAbs(relative) {
		return filepath.Clean(relative)
	}
	return filepath.Join(dir, relative)
}
