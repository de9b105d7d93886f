package environment

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/viant/afs"
	"github.com/viant/javaimports/config"
	"github.com/viant/javaimports/info"
	"github.com/viant/javaimports/inspector/java"
	"github.com/viant/javaimports/maven"
	"github.com/viant/javaimports/project"
)

const testSources = "/src/test/"

// Option customises environments
type Option func(*options)

type options struct {
	fs     afs.Service
	logger *slog.Logger
	parser project.Parser
	cache  *ClassCache
	query  Querier
}

// WithFS sets the file system service
func WithFS(fs afs.Service) Option {
	return func(o *options) { o.fs = fs }
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithParser sets the parser used for project files
func WithParser(parser project.Parser) Option {
	return func(o *options) { o.parser = parser }
}

// WithClassCache shares decoded classes between environments
func WithClassCache(cache *ClassCache) Option {
	return func(o *options) { o.cache = cache }
}

// WithQuerier sets how bazel queries run
func WithQuerier(query Querier) Option {
	return func(o *options) { o.query = query }
}

func newOptions(opts []Option) *options {
	ret := &options{}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	if ret.logger == nil {
		ret.logger = slog.Default()
	}
	if ret.cache == nil {
		ret.cache = NewClassCache()
	}
	if ret.parser == nil {
		ret.parser = java.NewInspector()
	}
	if ret.query == nil {
		ret.query = ExecQuerier
	}
	return ret
}

// Maven is a maven module environment: project sources under the module root and the archives
// of its dependencies
type Maven struct {
	root       string
	file       string
	cfg        *config.Config
	opts       *options
	finder     *maven.Finder
	repository *maven.Repository

	projectOnce sync.Once
	index       *project.Index

	initOnce sync.Once
	initErr  error
	direct   []maven.Dependency
	jars     *Jars

	closureOnce sync.Once
}

// NewMaven creates an environment for the file being fixed inside the module rooted at root
func NewMaven(root, file string, cfg *config.Config, opts ...Option) *Maven {
	if cfg == nil {
		cfg = config.Default()
	}
	o := newOptions(opts)
	resolver := maven.NewResolver(o.fs, cfg.Repository)
	return &Maven{
		root:       root,
		file:       file,
		cfg:        cfg,
		opts:       o,
		finder:     maven.NewFinder(o.fs, o.logger),
		repository: maven.NewRepository(o.fs, resolver, o.logger, cfg.Workers),
		jars:       NewJars(o.logger, cfg.Workers),
	}
}

// Project discovers the module sources, test sources stay hidden unless a test file is fixed
func (m *Maven) Project(ctx context.Context) *project.Index {
	m.projectOnce.Do(func() {
		started := time.Now()
		paths, err := project.Discover(ctx, m.opts.fs, m.root, project.WithExclude(m.cfg.Exclude...), project.WithSkip(m.file))
		if err != nil {
			m.opts.logger.Warn("maven.project", "root", m.root, "error", err)
		}
		loader := project.NewLoader(m.opts.fs, m.opts.parser, m.opts.logger)
		files := map[info.Kind][]*project.File{}
		for _, path := range paths {
			kind := info.Direct
			if isTestSource(path) {
				kind = info.Transitive
			}
			files[kind] = append(files[kind], loader.File(path, kind))
		}
		m.index = project.NewIndex(files)
		if isTestSource(m.file) {
			m.index.IncludeTransitive()
		}
		m.opts.logger.Info("maven.project", "root", m.root, "files", len(paths), "elapsed", time.Since(started))
	})
	return m.index
}

func isTestSource(path string) bool {
	return strings.Contains(filepath.ToSlash(path), testSources)
}

// Siblings parses project files declaring pkg
func (m *Maven) Siblings(ctx context.Context, pkg info.Selector) []*project.File {
	index := m.Project(ctx)
	files := index.FilesInPackage(pkg)
	if err := project.ParseAll(ctx, files, m.scheduler()); err != nil {
		m.opts.logger.Warn("maven.siblings", "package", pkg.String(), "error", err)
	}
	var ret []*project.File
	for _, f := range files {
		if f.Err() == nil && f.Package().Equal(pkg) {
			ret = append(ret, f)
		}
	}
	return ret
}

func (m *Maven) scheduler() project.Scheduler {
	return project.NewPool(m.cfg.Workers)
}

// Init parses the project and loads direct dependency archives. Direct archives without classes
// pull their own dependencies, up to the configured depth.
func (m *Maven) Init(ctx context.Context) error {
	m.initOnce.Do(func() {
		m.initErr = m.init(ctx)
	})
	return m.initErr
}

func (m *Maven) init(ctx context.Context) error {
	started := time.Now()
	index := m.Project(ctx)
	if err := project.ParseAll(ctx, index.AllFiles(), m.scheduler()); err != nil {
		m.opts.logger.Warn("maven.parse", "root", m.root, "error", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	direct, err := m.finder.FindAll(ctx, m.root)
	if err != nil {
		m.opts.logger.Warn("maven.dependencies", "root", m.root, "error", err)
	}
	m.direct = direct
	m.opts.logger.Info("maven.dependencies", "direct", len(direct))
	directJars := m.locate(ctx, direct)
	m.jars.Add(jarsOf(directJars)...)
	if err = m.jars.Load(ctx, info.Direct); err != nil {
		return err
	}

	var empty []maven.Dependency
	for _, jar := range directJars {
		if len(jar.Importables(ctx)) == 0 {
			empty = append(empty, jar.dependency)
		}
	}
	if len(empty) > 0 {
		indirect := m.repository.TransitiveDependencies(ctx, empty, m.cfg.TransitiveDepth)
		m.opts.logger.Info("maven.dependencies", "indirect", len(indirect))
		m.jars.Add(jarsOf(m.locate(ctx, indirect))...)
		if err = m.jars.Load(ctx, info.Transitive); err != nil {
			return err
		}
	}
	m.opts.logger.Info("maven.init", "root", m.root, "elapsed", time.Since(started))
	return nil
}

type located struct {
	*Jar
	dependency maven.Dependency
}

func jarsOf(list []located) []*Jar {
	ret := make([]*Jar, 0, len(list))
	for _, l := range list {
		ret = append(ret, l.Jar)
	}
	return ret
}

func (m *Maven) locate(ctx context.Context, dependencies []maven.Dependency) []located {
	var ret []located
	for _, d := range dependencies {
		if d.ArtifactID == "" {
			continue
		}
		location, err := m.repository.Resolver().Locate(ctx, d.Coordinates)
		if err != nil {
			m.opts.logger.Warn("maven.locate", "dependency", d.Coordinates.String(), "error", err)
			continue
		}
		jar := NewJar(location.Jar, d.GroupID, d.Kind, m.opts.fs, m.opts.cache, m.opts.logger)
		ret = append(ret, located{Jar: jar, dependency: d})
	}
	return ret
}

// FindImports returns dependency classes and project classes named identifier
func (m *Maven) FindImports(identifier info.Identifier) []info.Import {
	ret := m.jars.FindImports(identifier)
	if m.index != nil {
		ret = append(ret, m.index.FindImports(identifier)...)
	}
	return ret
}

// FindClass looks in project files first, then in dependency archives. Classes missing from the
// loaded archives are searched in the archives of the whole dependency closure.
func (m *Maven) FindClass(i info.Import) (*info.ClassEntity, bool) {
	if m.index != nil {
		if class, ok := m.index.FindClass(i); ok {
			return class, true
		}
	}
	if m.jars.Knows(i) {
		return m.jars.FindClass(i)
	}
	m.closureOnce.Do(func() {
		ctx := context.Background()
		closure := m.repository.TransitiveDependencies(ctx, m.direct, -1)
		m.jars.Add(jarsOf(m.locate(ctx, closure))...)
	})
	return m.jars.FindClass(i)
}
