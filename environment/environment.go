package environment

import (
	"context"
	"path/filepath"

	"github.com/viant/javaimports/config"
	"github.com/viant/javaimports/info"
	"github.com/viant/javaimports/project"
)

// Environment exposes what a build system knows beyond the file being fixed: project files and
// dependency archives
type Environment interface {
	// Siblings returns parsed project files declaring pkg
	Siblings(ctx context.Context, pkg info.Selector) []*project.File
	// Init loads dependencies, it is safe to call more than once
	Init(ctx context.Context) error
	FindImports(identifier info.Identifier) []info.Import
	FindClass(i info.Import) (*info.ClassEntity, bool)
}

type empty struct{}

// Empty returns an environment that knows nothing
func Empty() Environment {
	return empty{}
}

func (empty) Siblings(context.Context, info.Selector) []*project.File { return nil }

func (empty) Init(context.Context) error { return nil }

func (empty) FindImports(info.Identifier) []info.Import { return nil }

func (empty) FindClass(info.Import) (*info.ClassEntity, bool) { return nil, false }

// Selector picks the environment of a file
type Selector func(ctx context.Context, file string, cfg *config.Config, opts ...Option) Environment

// AutoSelect returns a maven environment when a pom is the closest descriptor above file, a bazel
// one when a BUILD file is closer and a workspace encloses it, an empty one otherwise
func AutoSelect(ctx context.Context, file string, cfg *config.Config, opts ...Option) Environment {
	if cfg == nil {
		cfg = config.Default()
	}
	o := newOptions(opts)
	detector := NewDetector(o.fs, cfg.Descriptors...)
	p, ok := detector.Detect(ctx, file)
	if !ok {
		o.logger.Debug("environment.empty", "file", file)
		return Empty()
	}
	switch p.Type {
	case mavenProject:
		o.logger.Debug("environment.maven", "root", p.RootPath, "file", p.RelativePath)
		return NewMaven(p.RootPath, file, cfg, opts...)
	case bazelProject:
		workspace, ok := detector.Workspace(ctx, p.RootPath)
		if !ok {
			o.logger.Debug("environment.empty", "file", file, "target", p.RootPath)
			return Empty()
		}
		o.logger.Debug("environment.bazel", "workspace", workspace.RootPath, "target", p.RootPath, "module", workspace.Module)
		absFile, err := filepath.Abs(file)
		if err != nil {
			absFile = file
		}
		return NewBazel(workspace.RootPath, p.RootPath, absFile, workspace.Module, cfg, opts...)
	}
	o.logger.Debug("environment.empty", "file", file)
	return Empty()
}
