package resolver

import (
	"log/slog"

	"github.com/viant/javaimports/candidate"
	"github.com/viant/javaimports/info"
)

// Result summarises a parent lookup
type Result struct {
	// Complete is false when some superclass could not be found
	Complete bool
	// Unresolved holds identifiers declared by none of the parents found
	Unresolved info.IdentifierSet
	// Fixes holds the imports needed to reach the parents found
	Fixes []info.Import
}

// ParentFinder absorbs superclass declarations into orphan classes
type ParentFinder struct {
	Finder   *candidate.Finder
	Strategy candidate.Strategy
	Library  ClassProvider
	Logger   *slog.Logger
}

// NewParentFinder creates a parent finder using the take first strategy
func NewParentFinder(finder *candidate.Finder, library ClassProvider, logger *slog.Logger) *ParentFinder {
	if logger == nil {
		logger = slog.Default()
	}
	return &ParentFinder{Finder: finder, Strategy: candidate.TakeFirst(), Library: library, Logger: logger}
}

// FindAllParents walks every orphan superclass chain until the orphans are resolved or no progress can be made.
// Each orphan keeps the set of superclasses it visited, a superclass seen twice ends its chain.
func (p *ParentFinder) FindAllParents(orphans *info.Orphans) (*Result, error) {
	fixes := map[string]info.Import{}
	fixed := map[string]bool{}
	visited := map[int]map[string]bool{}
	queue := orphans.Pending()
	for len(queue) > 0 {
		index := queue[0]
		queue = queue[1:]
		orphan := orphans.Get(index)
		if !orphan.NeedsParent() {
			continue
		}
		key := orphan.Parent.String()
		if visited[index] == nil {
			visited[index] = map[string]bool{}
		}
		if visited[index][key] {
			p.Logger.Debug("parent.cycle", "class", orphan.Name.String(), "parent", key)
			continue
		}
		visited[index][key] = true

		parent, ok, err := p.parentImport(orphan.Parent)
		if err != nil {
			return nil, err
		}
		if !ok {
			p.Logger.Debug("parent.unresolved", "class", orphan.Name.String(), "parent", key)
			continue
		}
		if !orphan.Parent.IsResolved() && !fixed[orphan.Name.String()] {
			fixes[parent.scope.Key()] = parent.scope
			fixed[orphan.Name.String()] = true
		}
		entity, found := p.Library.FindClass(parent.target)
		if !found {
			p.Logger.Debug("parent.missing", "class", orphan.Name.String(), "parent", parent.target.String())
			continue
		}
		p.Logger.Debug("parent.found", "class", orphan.Name.String(), "parent", entity.Name.String())
		next := orphan.AddParent(entity)
		orphans.Replace(index, next)
		if next.NeedsParent() {
			queue = append(queue, index)
		}
	}

	ret := &Result{Complete: !orphans.NeedsParents(), Unresolved: orphans.Unresolved()}
	for _, fix := range fixes {
		ret.Fixes = append(ret.Fixes, fix)
	}
	info.SortImports(ret.Fixes)
	return ret, nil
}

type parentImport struct {
	// scope is the import making the parent reachable
	scope info.Import
	// target points at the parent class itself
	target info.Import
}

func (p *ParentFinder) parentImport(parent *info.Superclass) (*parentImport, bool, error) {
	if i, ok := parent.Resolved(); ok {
		return &parentImport{scope: i, target: i}, true, nil
	}
	selector := parent.Unresolved()
	best, err := p.Strategy.SelectBest(p.Finder.Find(selector))
	if err != nil {
		return nil, false, err
	}
	scope, ok := best.For(selector)
	if !ok {
		return nil, false, nil
	}
	joined, err := scope.Selector.Join(selector)
	if err != nil {
		return nil, false, nil
	}
	return &parentImport{scope: info.NewImport(scope.Selector, false), target: info.NewImport(joined, false)}, true, nil
}
