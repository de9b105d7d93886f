package project

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
)

// DiscoverOption customises Discover
type DiscoverOption func(*discovery)

type discovery struct {
	exclude []string
	skip    map[string]bool
	ignore  *ignore.GitIgnore
}

// WithExclude skips files matching doublestar patterns relative to the root
func WithExclude(patterns ...string) DiscoverOption {
	return func(d *discovery) {
		d.exclude = append(d.exclude, patterns...)
	}
}

// WithSkip skips given file paths
func WithSkip(paths ...string) DiscoverOption {
	return func(d *discovery) {
		for _, p := range paths {
			if abs, err := filepath.Abs(p); err == nil {
				d.skip[abs] = true
			}
		}
	}
}

// JavaFiles matches Java source files and skips common build directories.
func JavaFiles(info os.FileInfo) bool {
	if info.IsDir() {
		name := info.Name()
		if name == "target" || name == "build" || name == "out" {
			return false
		}
		return true
	}
	return filepath.Ext(info.Name()) == ".java"
}

func (d *discovery) excluded(rel string, isDir bool) bool {
	rel = filepath.ToSlash(rel)
	if d.ignore != nil && rel != "." {
		if d.ignore.MatchesPath(rel) || (isDir && d.ignore.MatchesPath(rel+"/")) {
			return true
		}
	}
	if isDir {
		return false
	}
	for _, pattern := range d.exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// Discover lists Java source files under root honouring .gitignore and exclusions
func Discover(ctx context.Context, fs afs.Service, root string, options ...DiscoverOption) ([]string, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	d := &discovery{skip: map[string]bool{}}
	for _, option := range options {
		option(d)
	}
	if gitignore, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore")); err == nil {
		d.ignore = gitignore
	}
	var paths []string
	var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		rel := filepath.Join(filepath.FromSlash(parent), info.Name())
		if info.IsDir() {
			return JavaFiles(info) && !d.excluded(rel, true), nil
		}
		if !JavaFiles(info) || d.excluded(rel, false) {
			return true, nil
		}
		if path := filepath.Join(root, rel); !d.skip[path] {
			paths = append(paths, path)
		}
		return true, nil
	}
	if err := fs.Walk(ctx, root, visitor); err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}
