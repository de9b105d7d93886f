package importer

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/viant/afs"
	"github.com/viant/javaimports/candidate"
	"github.com/viant/javaimports/config"
	"github.com/viant/javaimports/environment"
	"github.com/viant/javaimports/info"
	"github.com/viant/javaimports/inspector/java"
	"github.com/viant/javaimports/project"
	"github.com/viant/javaimports/resolver"
	"github.com/viant/javaimports/stdlib"
)

var javaLang = info.MustParseSelector("java.lang")

// Importer finds the imports a Java file is missing
type Importer struct {
	config    *config.Config
	stdlib    *stdlib.Provider
	selector  environment.Selector
	logger    *slog.Logger
	fs        afs.Service
	inspector *java.Inspector
	cache     *environment.ClassCache
}

// New creates an importer
func New(options ...Option) (*Importer, error) {
	ret := &Importer{inspector: java.NewInspector(), cache: environment.NewClassCache()}
	for _, option := range options {
		option(ret)
	}
	if ret.config == nil {
		ret.config = config.Default()
	}
	ret.config.Init()
	if ret.logger == nil {
		ret.logger = slog.Default()
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	if ret.selector == nil {
		ret.selector = environment.AutoSelect
	}
	if ret.stdlib == nil {
		provider, err := stdlib.New(ret.config.Stdlib...)
		if err != nil {
			return nil, fmt.Errorf("invalid stdlib entry: %w", err)
		}
		ret.stdlib = provider
	}
	return ret, nil
}

// AddUsedImports returns src with its missing imports added and duplicated imports removed
func (i *Importer) AddUsedImports(ctx context.Context, path string, src []byte) ([]byte, *Result, error) {
	file, err := i.inspector.InspectSource(ctx, path, src)
	if err != nil {
		return nil, nil, err
	}
	result, err := i.resolve(ctx, path, file)
	if err != nil {
		return nil, nil, err
	}
	return Apply(src, file, result), result, nil
}

// Resolve finds the imports missing from src
func (i *Importer) Resolve(ctx context.Context, path string, src []byte) (*Result, error) {
	file, err := i.inspector.InspectSource(ctx, path, src)
	if err != nil {
		return nil, err
	}
	return i.resolve(ctx, path, file)
}

// sibling is a file of the same package
type sibling interface {
	candidate.ImportProvider
	resolver.ClassProvider
	Package() info.Selector
	TopLevelDeclarations() info.IdentifierSet
}

type state struct {
	pkg        info.Selector
	unresolved info.IdentifierSet
	orphans    *info.Orphans
}

func (s *state) done() bool {
	return len(s.unresolved) == 0 && len(s.orphans.Unresolved()) == 0
}

// declare removes identifiers declared by the package, superclasses named after them become local
func (s *state) declare(ids info.IdentifierSet) {
	s.unresolved = s.unresolved.Difference(ids)
	s.orphans.AddDeclarations(ids)
	for index, orphan := range s.orphans.Classes() {
		if orphan.Parent == nil || orphan.Parent.IsResolved() || !ids.Has(orphan.Parent.Unresolved().At(0)) {
			continue
		}
		local := info.ResolvedSuperclass(info.NewImport(s.qualify(orphan.Parent.Unresolved()), false))
		s.orphans.Replace(index, info.NewOrphanClass(orphan.Name, orphan.Unresolved, local))
	}
}

func (s *state) qualify(selector info.Selector) info.Selector {
	if s.pkg.IsZero() {
		return selector
	}
	return s.pkg.Combine(selector)
}

func (i *Importer) javaLang(ids info.IdentifierSet) info.IdentifierSet {
	ret := info.IdentifierSet{}
	for id := range ids {
		if i.stdlib.IsInJavaLang(id) {
			ret.Add(id)
		}
	}
	return ret
}

func (i *Importer) resolve(ctx context.Context, path string, file *java.File) (*Result, error) {
	started := time.Now()
	imported := file.Imported()
	s := &state{pkg: file.Package(), unresolved: file.Unresolved().Difference(imported), orphans: file.Orphans()}
	s.orphans.AddDeclarations(imported)
	if s.done() {
		i.logger.Info("importer.complete", "path", path, "stage", "file")
		return complete(), nil
	}

	var siblings []sibling
	seen := map[string]bool{path: true}
	for _, f := range i.directorySiblings(ctx, path, s.pkg) {
		seen[f.Path()] = true
		siblings = append(siblings, f)
		s.declare(f.TopLevelDeclarations())
	}
	s.unresolved = s.unresolved.Difference(i.javaLang(s.unresolved))
	s.orphans.AddDeclarations(i.javaLang(s.orphans.Unresolved()))
	if s.done() {
		i.logger.Info("importer.complete", "path", path, "stage", "siblings")
		return complete(), nil
	}

	env := i.selector(ctx, path, i.config, environment.WithFS(i.fs), environment.WithLogger(i.logger), environment.WithParser(i.inspector), environment.WithClassCache(i.cache))
	for _, f := range env.Siblings(ctx, s.pkg) {
		if seen[f.Path] {
			continue
		}
		seen[f.Path] = true
		siblings = append(siblings, f)
		s.declare(f.TopLevelDeclarations())
	}
	if err := env.Init(ctx); err != nil {
		return nil, err
	}

	finder := candidate.NewFinder()
	library := resolver.NewLibrary(file)
	for _, f := range siblings {
		finder.Add(candidate.Sibling, f)
		library.Add(f)
	}
	finder.Add(candidate.Stdlib, i.stdlib)
	finder.Add(candidate.External, env)
	library.Add(env, resolver.Object, i.stdlib)

	parentFinder := resolver.NewParentFinder(finder, library, i.logger)
	parentFinder.Strategy = candidate.Basic(s.pkg)
	parents, err := parentFinder.FindAllParents(s.orphans)
	if err != nil {
		return nil, err
	}
	for _, fix := range parents.Fixes {
		s.unresolved.Remove(fix.Selector.Identifier())
	}
	remaining := parents.Unresolved.Difference(i.javaLang(parents.Unresolved))
	s.unresolved.AddAll(remaining)

	selectors := make([]info.Selector, 0, len(s.unresolved))
	for _, id := range s.unresolved.Sorted() {
		selectors = append(selectors, info.NewSelector(id))
	}
	best, err := candidate.Basic(s.pkg).SelectBest(finder.Find(selectors...))
	if err != nil {
		return nil, err
	}

	ret := &Result{Complete: parents.Complete, Unresolved: info.IdentifierSet{}}
	fixes := map[string]info.Import{}
	add := func(fix info.Import) {
		if scope, ok := fix.Selector.Scope(); ok && !fix.Static && (scope.Equal(s.pkg) || scope.Equal(javaLang)) {
			return
		}
		fixes[fix.Key()] = fix
	}
	for _, fix := range parents.Fixes {
		add(fix)
	}
	for _, selector := range selectors {
		fix, ok := best.For(selector)
		if !ok {
			ret.Complete = false
			ret.Unresolved.Add(selector.Identifier())
			continue
		}
		add(fix)
	}
	for _, fix := range fixes {
		ret.Fixes = append(ret.Fixes, fix)
	}
	info.SortImports(ret.Fixes)
	i.logger.Info("importer.resolved", "path", path, "fixes", len(ret.Fixes), "unresolved", len(ret.Unresolved), "complete", ret.Complete, "elapsed", time.Since(started))
	return ret, nil
}

// directorySiblings parses the other Java files of the file folder declaring pkg, unparsable files are skipped
func (i *Importer) directorySiblings(ctx context.Context, path string, pkg info.Selector) []*java.File {
	dir := filepath.Dir(path)
	objects, err := i.fs.List(ctx, dir)
	if err != nil {
		i.logger.Warn("importer.siblings", "dir", dir, "error", err)
		return nil
	}
	var ret []*java.File
	for _, object := range objects {
		if object.IsDir() || filepath.Ext(object.Name()) != ".java" || object.Name() == filepath.Base(path) {
			continue
		}
		siblingPath := filepath.Join(dir, object.Name())
		src, err := i.fs.DownloadWithURL(ctx, siblingPath)
		if err != nil {
			i.logger.Warn("importer.siblings", "path", siblingPath, "error", err)
			continue
		}
		parsed, err := i.inspector.InspectSource(ctx, siblingPath, src)
		if err != nil {
			i.logger.Warn("importer.siblings", "path", siblingPath, "error", &project.ParseError{Path: siblingPath, Underlying: err, Timestamp: time.Now()})
			continue
		}
		if parsed.Package().Equal(pkg) {
			ret = append(ret, parsed)
		}
	}
	return ret
}
