package maven

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/viant/afs"
)

// Location points at the descriptor and archive of a resolved artifact
type Location struct {
	Pom     string
	Jar     string
	Version string
}

// Resolver locates artifacts in a local repository laid out as group/artifact/version
type Resolver struct {
	fs         afs.Service
	repository string
}

// DefaultRepository returns ~/.m2/repository
func DefaultRepository() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	return filepath.Join(home, ".m2", "repository")
}

// NewResolver creates a resolver, an empty repository means the default one
func NewResolver(fs afs.Service, repository string) *Resolver {
	if repository == "" {
		repository = DefaultRepository()
	}
	return &Resolver{fs: fs, repository: repository}
}

// Repository returns the repository root
func (r *Resolver) Repository() string {
	return r.repository
}

// Locate returns the location of the artifact. The exact version directory is used when present,
// then one whose normalized version matches, then the first available version when the
// version is unknown.
func (r *Resolver) Locate(ctx context.Context, c Coordinates) (*Location, error) {
	dir := r.directory(c)
	version, err := r.version(ctx, dir, c.Version)
	if err != nil {
		return nil, err
	}
	base := filepath.Join(dir, version, c.ArtifactID+"-"+version)
	return &Location{Pom: base + ".pom", Jar: base + jarSuffix(c), Version: version}, nil
}

func (r *Resolver) directory(c Coordinates) string {
	return filepath.Join(r.repository, filepath.FromSlash(strings.ReplaceAll(c.GroupID, ".", "/")), c.ArtifactID)
}

func jarSuffix(c Coordinates) string {
	suffix := ""
	if c.Classifier != "" {
		suffix = "-" + c.Classifier
	}
	if c.Type == testJarType {
		return suffix + "-tests.jar"
	}
	return suffix + ".jar"
}

func (r *Resolver) version(ctx context.Context, dir, requested string) (string, error) {
	known := requested != "" && !HasPropertyReference(requested)
	if known {
		if ok, _ := r.fs.Exists(ctx, filepath.Join(dir, requested)); ok {
			return requested, nil
		}
	}
	available, err := r.Versions(ctx, dir)
	if err != nil {
		return "", err
	}
	if len(available) == 0 {
		if known {
			return requested, nil
		}
		return "", fmt.Errorf("no version available in %s", dir)
	}
	if known {
		if normalized, err := NormalizeVersion(requested); err == nil {
			for _, candidate := range available {
				if n, err := NormalizeVersion(candidate); err == nil && n == normalized {
					return candidate, nil
				}
			}
		}
		return requested, nil
	}
	return available[0], nil
}

// Versions lists version directories of an artifact directory in ascending version order
func (r *Resolver) Versions(ctx context.Context, dir string) ([]string, error) {
	if ok, _ := r.fs.Exists(ctx, dir); !ok {
		return nil, nil
	}
	objects, err := r.fs.List(ctx, dir)
	if err != nil {
		return nil, err
	}
	var ret []string
	base := filepath.Base(dir)
	for i, object := range objects {
		if !object.IsDir() || (i == 0 && object.Name() == base) {
			continue
		}
		ret = append(ret, object.Name())
	}
	sort.SliceStable(ret, func(i, j int) bool {
		ni, erri := NormalizeVersion(ret[i])
		nj, errj := NormalizeVersion(ret[j])
		switch {
		case erri != nil && errj != nil:
			return ret[i] < ret[j]
		case erri != nil:
			return false
		case errj != nil:
			return true
		}
		if c := CompareVersions(ni, nj); c != 0 {
			return c < 0
		}
		return ret[i] < ret[j]
	})
	return ret, nil
}
