package maven

import (
	"context"
	"log/slog"

	"github.com/viant/afs"
	"github.com/viant/javaimports/info"
	"golang.org/x/sync/errgroup"
)

const maxParentChain = 32

// Repository answers dependency graph queries over a local repository
type Repository struct {
	fs       afs.Service
	resolver *Resolver
	logger   *slog.Logger
	workers  int
}

// NewRepository creates a repository
func NewRepository(fs afs.Service, resolver *Resolver, logger *slog.Logger, workers int) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	if workers <= 0 {
		workers = 4
	}
	return &Repository{fs: fs, resolver: resolver, logger: logger, workers: workers}
}

// Resolver returns the underlying resolver
func (r *Repository) Resolver() *Resolver {
	return r.resolver
}

// ManagedDependencies returns the managed dependencies of d, parents merged and imports expanded
func (r *Repository) ManagedDependencies(ctx context.Context, d Dependency) []Dependency {
	return r.effectivePom(ctx, d.Coordinates, 0).ManagedDependencies()
}

// DirectDependencies returns the dependencies declared by d
func (r *Repository) DirectDependencies(ctx context.Context, d Dependency) []Dependency {
	return r.effectivePom(ctx, d.Coordinates, 0).Dependencies()
}

type withDepth struct {
	dependency Dependency
	depth      int
}

// TransitiveDependencies walks the dependency graph breadth first up to maxDepth levels
// (negative means unbounded). Test, provided, system and optional dependencies are not followed,
// and only one version per artifact is kept: the nearest one, the first one found on ties.
func (r *Repository) TransitiveDependencies(ctx context.Context, direct []Dependency, maxDepth int) []Dependency {
	directKeys := map[Versionless]bool{}
	for _, d := range direct {
		directKeys[d.Versionless()] = true
	}
	found := make([][]withDepth, len(direct))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, d := range direct {
		g.Go(func() error {
			found[i] = r.walk(gctx, d, direct, directKeys, maxDepth)
			return nil
		})
	}
	_ = g.Wait()

	var order []Versionless
	nearest := map[Versionless]withDepth{}
	for _, layer := range found {
		for _, d := range layer {
			key := d.dependency.Versionless()
			prev, ok := nearest[key]
			if !ok {
				order = append(order, key)
				nearest[key] = d
				continue
			}
			if d.depth < prev.depth {
				nearest[key] = d
			}
		}
	}
	ret := make([]Dependency, 0, len(order))
	for _, key := range order {
		d := nearest[key].dependency
		d.Kind = info.Transitive
		ret = append(ret, d)
	}
	return ret
}

func (r *Repository) walk(ctx context.Context, target Dependency, direct []Dependency, directKeys map[Versionless]bool, maxDepth int) []withDepth {
	visited := map[Coordinates]bool{}
	for _, d := range direct {
		visited[d.Coordinates] = true
	}
	exclusions := append([]Exclusion{}, target.Exclusions...)
	layer := []Dependency{target}
	var ret []withDepth
	for depth := 0; len(layer) > 0; {
		if maxDepth >= 0 && depth >= maxDepth {
			break
		}
		if ctx.Err() != nil {
			break
		}
		depth++
		var next []Dependency
		for _, d := range layer {
			for _, t := range r.effectivePom(ctx, d.Coordinates, 0).Dependencies() {
				switch {
				case visited[t.Coordinates],
					directKeys[t.Versionless()],
					Excluded(exclusions, t),
					!isTransitiveScope(t),
					t.Optional:
					continue
				}
				exclusions = append(exclusions, t.Exclusions...)
				visited[t.Coordinates] = true
				next = append(next, t)
				ret = append(ret, withDepth{dependency: t, depth: depth})
			}
		}
		layer = next
	}
	return ret
}

func isTransitiveScope(d Dependency) bool {
	return !d.HasScope("test") && !d.HasScope("provided") && !d.HasScope("system")
}

// effectivePom merges the artifact descriptor with its parents and expands import scoped managed dependencies
func (r *Repository) effectivePom(ctx context.Context, c Coordinates, level int) *FlatPom {
	pom := r.mergedWithParents(ctx, c)
	if level >= maxParentChain {
		return pom
	}
	var imported []Dependency
	for _, m := range pom.ManagedDependencies() {
		if !m.HasScope("import") {
			continue
		}
		imported = append(imported, r.effectivePom(ctx, m.Coordinates, level+1).ManagedDependencies()...)
	}
	if len(imported) > 0 {
		pom.mergeManaged(imported)
	}
	return pom
}

func (r *Repository) mergedWithParents(ctx context.Context, c Coordinates) *FlatPom {
	location, err := r.resolver.Locate(ctx, c)
	if err != nil {
		r.logger.Debug("maven.pom.locate", "coordinates", c.String(), "error", err)
		return NewFlatPom(nil, nil, nil, nil)
	}
	pom, err := LoadPom(ctx, r.fs, location.Pom)
	if err != nil {
		r.logger.Debug("maven.pom.load", "coordinates", c.String(), "error", err)
		return pom
	}
	for i := 0; pom.Parent() != nil && i < maxParentChain; i++ {
		parentCoordinates := pom.Parent().Coordinates
		parentLocation, err := r.resolver.Locate(ctx, parentCoordinates)
		if err != nil {
			r.logger.Debug("maven.pom.parent", "coordinates", parentCoordinates.String(), "error", err)
			break
		}
		parent, err := LoadPom(ctx, r.fs, parentLocation.Pom)
		if err != nil {
			r.logger.Debug("maven.pom.parent", "coordinates", parentCoordinates.String(), "error", err)
			break
		}
		if pom.WellDefined() {
			// keep climbing for managed dependencies only
			pom.mergeManaged(parent.ManagedDependencies())
			pom.parent = parent.parent
			continue
		}
		pom.Merge(parent)
	}
	return pom
}
