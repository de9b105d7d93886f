package environment

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/viant/afs/file"
	"github.com/viant/javaimports/config"
	"github.com/viant/javaimports/info"
	"github.com/viant/javaimports/project"
)

const (
	bazelBinary     = "bazel"
	bazelDepsQuery  = "deps(attr('srcs', //%s:%s, //%s:*))"
	bazelOutputHome = ".javaimports"
)

// Querier runs a bazel command in the workspace and returns its standard output
type Querier func(ctx context.Context, workspace string, args ...string) ([]byte, error)

// ExecQuerier runs the bazel binary found in PATH
func ExecQuerier(ctx context.Context, workspace string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, bazelBinary, args...)
	cmd.Dir = workspace
	return cmd.Output()
}

// OutputBase returns the bazel output base used for a workspace, one per workspace under root
func OutputBase(root, workspace string) string {
	if root == "" {
		if home, err := os.UserHomeDir(); err == nil {
			root = filepath.Join(home, bazelOutputHome)
		} else {
			root = filepath.Join(os.TempDir(), bazelOutputHome)
		}
	}
	return filepath.Join(root, fmt.Sprintf("%016x", xxhash.Sum64String(workspace)))
}

// Bazel is a bazel target environment: the sources and archives the target owning the file being
// fixed depends on, as reported by bazel query
type Bazel struct {
	workspace  string
	target     string
	file       string
	module     bool
	outputBase string
	cfg        *config.Config
	opts       *options

	queryOnce sync.Once
	results   *QueryResults

	projectOnce sync.Once
	index       *project.Index

	initOnce sync.Once
	initErr  error
	jars     *Jars
}

// NewBazel creates an environment for file, target is the folder of the BUILD file owning it and
// module is true for MODULE workspaces
func NewBazel(workspace, target, file string, module bool, cfg *config.Config, opts ...Option) *Bazel {
	if cfg == nil {
		cfg = config.Default()
	}
	o := newOptions(opts)
	return &Bazel{
		workspace:  workspace,
		target:     target,
		file:       file,
		module:     module,
		outputBase: OutputBase(cfg.BazelOutputRoot, workspace),
		cfg:        cfg,
		opts:       o,
		jars:       NewJars(o.logger, cfg.Workers),
	}
}

// depsQuery selects the dependencies of every target of the package listing the file
func (b *Bazel) depsQuery() string {
	pkg, err := filepath.Rel(b.workspace, b.target)
	if err != nil || pkg == "." {
		pkg = ""
	}
	name, err := filepath.Rel(b.target, b.file)
	if err != nil {
		name = filepath.Base(b.file)
	}
	pkg, name = filepath.ToSlash(pkg), filepath.ToSlash(name)
	return fmt.Sprintf(bazelDepsQuery, pkg, name, pkg)
}

// Query runs bazel query once, a failed query yields no dependencies
func (b *Bazel) Query(ctx context.Context) *QueryResults {
	b.queryOnce.Do(func() {
		started := time.Now()
		b.results = &QueryResults{}
		if err := b.opts.fs.Create(ctx, b.outputBase, file.DefaultDirOsMode, true); err != nil {
			b.opts.logger.Warn("bazel.outputBase", "path", b.outputBase, "error", err)
		}
		deps := b.depsQuery()
		b.opts.logger.Info("bazel.query", "query", deps, "workspace", b.workspace, "outputBase", b.outputBase)
		out, err := b.opts.query(ctx, b.workspace, "--output_base="+b.outputBase, "query", "--output=minrank", deps)
		if err != nil {
			b.opts.logger.Warn("bazel.query", "workspace", b.workspace, "error", err)
		}
		results, err := ParseQueryResults(bytes.NewReader(out), b.workspace, b.outputBase, b.module)
		if err != nil {
			b.opts.logger.Warn("bazel.query", "workspace", b.workspace, "error", err)
			return
		}
		b.results = results
		b.opts.logger.Info("bazel.query", "sources", len(results.Sources), "jars", len(results.Jars), "elapsed", time.Since(started))
	})
	return b.results
}

// Project indexes the sources the target depends on, the file being fixed excluded
func (b *Bazel) Project(ctx context.Context) *project.Index {
	b.projectOnce.Do(func() {
		loader := project.NewLoader(b.opts.fs, b.opts.parser, b.opts.logger)
		skip, _ := filepath.Abs(b.file)
		files := map[info.Kind][]*project.File{}
		for _, source := range b.Query(ctx).Sources {
			if source.Path == skip || source.Path == b.file {
				continue
			}
			files[source.Kind] = append(files[source.Kind], loader.File(source.Path, source.Kind))
		}
		b.index = project.NewIndex(files)
		b.index.IncludeTransitive()
	})
	return b.index
}

// Siblings parses target sources declaring pkg. Bazel layouts rarely follow src/*/java so every
// source is parsed before filtering on its declared package.
func (b *Bazel) Siblings(ctx context.Context, pkg info.Selector) []*project.File {
	files := b.Project(ctx).AllFiles()
	if err := project.ParseAll(ctx, files, project.NewPool(b.cfg.Workers)); err != nil {
		b.opts.logger.Warn("bazel.siblings", "package", pkg.String(), "error", err)
	}
	var ret []*project.File
	for _, f := range files {
		if f.Err() == nil && f.Package().Equal(pkg) {
			ret = append(ret, f)
		}
	}
	return ret
}

// Init parses the target sources and loads every archive the query reported
func (b *Bazel) Init(ctx context.Context) error {
	b.initOnce.Do(func() {
		b.initErr = b.init(ctx)
	})
	return b.initErr
}

func (b *Bazel) init(ctx context.Context) error {
	started := time.Now()
	index := b.Project(ctx)
	if err := project.ParseAll(ctx, index.AllFiles(), project.NewPool(b.cfg.Workers)); err != nil {
		b.opts.logger.Warn("bazel.parse", "workspace", b.workspace, "error", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	external := filepath.Join(b.outputBase, "external")
	for _, dep := range b.Query(ctx).Jars {
		b.jars.Add(NewJar(dep.Path, jarGroup(external, dep.Path), dep.Kind, b.opts.fs, b.opts.cache, b.opts.logger))
	}
	for _, kind := range []info.Kind{info.Direct, info.Transitive} {
		if err := b.jars.Load(ctx, kind); err != nil {
			return err
		}
	}
	b.opts.logger.Info("bazel.init", "workspace", b.workspace, "elapsed", time.Since(started))
	return nil
}

// FindImports returns archive classes and target source classes named identifier
func (b *Bazel) FindImports(identifier info.Identifier) []info.Import {
	ret := b.jars.FindImports(identifier)
	if b.index != nil {
		ret = append(ret, b.index.FindImports(identifier)...)
	}
	return ret
}

// FindClass looks in target sources first, then in archives
func (b *Bazel) FindClass(i info.Import) (*info.ClassEntity, bool) {
	if b.index != nil {
		if class, ok := b.index.FindClass(i); ok {
			return class, true
		}
	}
	return b.jars.FindClass(i)
}
